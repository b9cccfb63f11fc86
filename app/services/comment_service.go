package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// AddComment appends a comment by actor to an existing post. Anonymous
// actors get ErrAuthRequired; an unknown post gets ErrNotFound.
func (s *CommentService) AddComment(actor *models.User, postID int, form *models.CommentForm) (*models.Comment, error) {
	if !CanComment(actor) {
		return nil, ErrAuthRequired
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: actor.ID,
		Author:   actor.Name,
		Body:     form.Body,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves all comments on a post in insertion order.
func (s *CommentService) ListComments(postID int) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(postID)
}
