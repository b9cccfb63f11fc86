package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RegisterForm carries a registration submission.
type RegisterForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

// LoginForm carries a login submission.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// PostForm carries a new-post or edit-post submission. Body is rich text and
// treated as an opaque blob.
type PostForm struct {
	Title    string `validate:"required,max=250"`
	Subtitle string `validate:"required,max=250"`
	ImageURL string `validate:"required,url"`
	Body     string `validate:"required"`
}

// CommentForm carries a comment submission.
type CommentForm struct {
	Body string `validate:"required"`
}

// ContactForm carries a contact-page submission forwarded by mail.
type ContactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Message string `validate:"required"`
}

func (f *RegisterForm) Validate() error { return validate.Struct(f) }

func (f *LoginForm) Validate() error { return validate.Struct(f) }

func (f *PostForm) Validate() error { return validate.Struct(f) }

func (f *CommentForm) Validate() error { return validate.Struct(f) }

func (f *ContactForm) Validate() error { return validate.Struct(f) }
