package services

import (
	"fmt"

	"inkwell/app/mailer"
	"inkwell/app/models"
)

// ContactService forwards contact-form submissions to the site operator.
// It is stateless; the "message sent" flag lives only in the response that
// reports it.
type ContactService struct {
	mailer mailer.Mailer
}

// NewContactService creates a new ContactService
func NewContactService(m mailer.Mailer) *ContactService {
	return &ContactService{mailer: m}
}

// Send validates and forwards one submission. A transport failure is the
// caller's problem to report; it is never swallowed.
func (s *ContactService) Send(form *models.ContactForm) error {
	if err := form.Validate(); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	return s.mailer.Send(form.Name, form.Email, form.Phone, form.Message)
}
