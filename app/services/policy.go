package services

import (
	"errors"

	"inkwell/app/models"
)

var (
	// ErrForbidden reports an authenticated actor lacking the capability for
	// a management operation.
	ErrForbidden = errors.New("forbidden")
	// ErrAuthRequired reports an anonymous actor attempting an operation
	// that needs a login.
	ErrAuthRequired = errors.New("authentication required")
	// ErrNoSuchUser and ErrWrongPassword are deliberately distinct: the two
	// login failures carry different user-facing messages.
	ErrNoSuchUser    = errors.New("no account with that email")
	ErrWrongPassword = errors.New("wrong password")
)

// CanManageContent reports whether actor may create, edit or delete posts.
// A nil actor is anonymous.
func CanManageContent(actor *models.User) bool {
	return actor != nil && actor.IsAdmin
}

// CanComment reports whether actor may comment. Any logged-in account may.
func CanComment(actor *models.User) bool {
	return actor != nil
}
