package controllers

import (
	"log"
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/services"
)

// ContactController handles the contact page and the about page
type ContactController struct {
	contact  *services.ContactService
	renderer *Renderer
}

// NewContactController creates a new ContactController
func NewContactController(contact *services.ContactService, renderer *Renderer) *ContactController {
	return &ContactController{contact: contact, renderer: renderer}
}

// Form displays the contact form
func (cc *ContactController) Form(w http.ResponseWriter, r *http.Request) {
	cc.renderer.Render(w, r, "contact", viewData{User: middleware.UserFrom(r.Context())})
}

// Submit forwards a contact submission by mail. Success flips the one-shot
// "message sent" flag in the rendered page; a transport failure is a hard
// 500, never a silent drop.
func (cc *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := &models.ContactForm{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Message: r.FormValue("message"),
	}

	err := cc.contact.Send(form)
	switch {
	case err == nil:
		cc.renderer.Render(w, r, "contact", viewData{
			User: middleware.UserFrom(r.Context()),
			Sent: true,
		})
	case isValidationError(err):
		cc.renderer.Flash(w, r, "All fields are required to send a message.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	default:
		log.Printf("failed to send contact message: %v", err)
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
	}
}

// About displays the about page
func (cc *ContactController) About(w http.ResponseWriter, r *http.Request) {
	cc.renderer.Render(w, r, "about", viewData{User: middleware.UserFrom(r.Context())})
}
