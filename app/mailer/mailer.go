package mailer

import (
	"fmt"

	"github.com/wneessen/go-mail"
)

// Mailer delivers a contact-form submission to the site operator.
type Mailer interface {
	Send(name, email, phone, message string) error
}

// SMTPMailer sends through the operator's own mail account: the message is
// authenticated as, addressed from, and delivered to the same mailbox.
type SMTPMailer struct {
	client  *mail.Client
	address string
}

// NewSMTPMailer creates a mailer for the given SMTP account.
func NewSMTPMailer(host string, port int, username, password string) (*SMTPMailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return &SMTPMailer{client: client, address: username}, nil
}

// Send forwards one contact-form submission. Transport failures propagate to
// the caller; nothing is retried or dropped silently.
func (m *SMTPMailer) Send(name, email, phone, message string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.address); err != nil {
		return err
	}
	if err := msg.To(m.address); err != nil {
		return err
	}
	msg.Subject("New contact form message")
	msg.SetBodyString(mail.TypeTextPlain, Body(name, email, phone, message))
	return m.client.DialAndSend(msg)
}

// Body builds the plain-text message forwarded to the operator, one labelled
// field per line.
func Body(name, email, phone, message string) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s\n", name, email, phone, message)
}
