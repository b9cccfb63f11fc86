package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	posts    *services.PostService
	renderer *Renderer
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService, renderer *Renderer) *PostController {
	return &PostController{posts: posts, renderer: renderer}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.ListPosts()
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}
	pc.renderer.Render(w, r, "index", viewData{
		User:  middleware.UserFrom(r.Context()),
		Posts: posts,
	})
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := pc.posts.GetPost(id)
	if err == repositories.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	pc.renderer.Render(w, r, "post", viewData{
		User: middleware.UserFrom(r.Context()),
		Post: post,
	})
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	if !services.CanManageContent(actor) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	pc.renderer.Render(w, r, "post_form", viewData{User: actor})
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	form, err := parsePostForm(r)
	if err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	_, err = pc.posts.CreatePost(actor, form)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case err == services.ErrForbidden:
		http.Error(w, "Forbidden", http.StatusForbidden)
	case err == repositories.ErrDuplicateTitle:
		pc.renderer.Flash(w, r, "A post with that title already exists.")
		http.Redirect(w, r, "/new-post", http.StatusSeeOther)
	case isValidationError(err):
		pc.renderer.Flash(w, r, "All fields are required and the image must be a valid URL.")
		http.Redirect(w, r, "/new-post", http.StatusSeeOther)
	default:
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
	}
}

// EditForm displays the form for editing an existing post
func (pc *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	if !services.CanManageContent(actor) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, err := pc.posts.GetPost(id)
	if err == repositories.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	pc.renderer.Render(w, r, "post_form", viewData{
		User:    actor,
		Post:    post,
		Editing: true,
	})
}

// Update handles replacing a post's mutable fields
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	form, err := parsePostForm(r)
	if err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	_, err = pc.posts.UpdatePost(actor, id, form)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case err == services.ErrForbidden:
		http.Error(w, "Forbidden", http.StatusForbidden)
	case err == repositories.ErrNotFound:
		http.NotFound(w, r)
	case err == repositories.ErrDuplicateTitle:
		pc.renderer.Flash(w, r, "A different post already uses that title.")
		http.Redirect(w, r, "/edit-post/"+strconv.Itoa(id), http.StatusSeeOther)
	case isValidationError(err):
		pc.renderer.Flash(w, r, "All fields are required and the image must be a valid URL.")
		http.Redirect(w, r, "/edit-post/"+strconv.Itoa(id), http.StatusSeeOther)
	default:
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
	}
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = pc.posts.DeletePost(actor, id)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case err == services.ErrForbidden:
		http.Error(w, "Forbidden", http.StatusForbidden)
	case err == repositories.ErrNotFound:
		http.NotFound(w, r)
	default:
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func parsePostForm(r *http.Request) (*models.PostForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &models.PostForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImageURL: r.FormValue("image_url"),
		Body:     r.FormValue("body"),
	}, nil
}
