package controllers

import (
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	comments *services.CommentService
	renderer *Renderer
}

// NewCommentController creates a new CommentController
func NewCommentController(comments *services.CommentService, renderer *Renderer) *CommentController {
	return &CommentController{comments: comments, renderer: renderer}
}

// Create handles a comment submission on a post page. Anonymous visitors
// are sent to the login page, not silently dropped.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := &models.CommentForm{Body: r.FormValue("body")}

	_, err = cc.comments.AddComment(actor, id, form)
	switch {
	case err == nil:
		http.Redirect(w, r, "/post/"+strconv.Itoa(id), http.StatusSeeOther)
	case err == services.ErrAuthRequired:
		cc.renderer.Flash(w, r, "You need to log in or register to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case err == repositories.ErrNotFound:
		http.NotFound(w, r)
	case isValidationError(err):
		cc.renderer.Flash(w, r, "Comments cannot be empty.")
		http.Redirect(w, r, "/post/"+strconv.Itoa(id), http.StatusSeeOther)
	default:
		http.Error(w, "Failed to add comment", http.StatusInternalServerError)
	}
}
