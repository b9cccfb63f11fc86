package services

import (
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// DateFormat is the display format stamped on posts at creation.
const DateFormat = "January 2, 2006"

// PostService handles business logic for blog posts
type PostService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	now      func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, comments repositories.CommentRepository) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
		now:      time.Now,
	}
}

// ListPosts retrieves all posts in insertion order
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.posts.List()
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	post.Comments = comments

	return post, nil
}

// CreatePost creates a new post authored by actor. The policy check runs
// first, so non-admins get ErrForbidden regardless of the payload.
func (s *PostService) CreatePost(actor *models.User, form *models.PostForm) (*models.Post, error) {
	if !CanManageContent(actor) {
		return nil, ErrForbidden
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
		Date:     s.now().Format(DateFormat),
		AuthorID: actor.ID,
		Author:   actor.Name,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost replaces the four mutable fields of an existing post. The
// creation date and author are preserved.
func (s *PostService) UpdatePost(actor *models.User, id int, form *models.PostForm) (*models.Post, error) {
	if !CanManageContent(actor) {
		return nil, ErrForbidden
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.Body = form.Body
	post.ImageURL = form.ImageURL

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and, through the store's cascade, its comments.
func (s *PostService) DeletePost(actor *models.User, id int) error {
	if !CanManageContent(actor) {
		return ErrForbidden
	}
	return s.posts.Delete(id)
}
