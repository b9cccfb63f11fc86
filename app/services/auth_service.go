package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/sessions"
)

// AuthService handles registration, login and logout
type AuthService struct {
	users    repositories.UserRepository
	sessions *sessions.Store
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository, store *sessions.Store) *AuthService {
	return &AuthService{users: users, sessions: store}
}

// Register creates an account and logs it in. The raw password is hashed
// with bcrypt before it goes anywhere near the store; it is never persisted
// or logged. Returns repositories.ErrDuplicateEmail if the email is taken.
func (s *AuthService) Register(form *models.RegisterForm) (*models.User, string, error) {
	if err := form.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid registration: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        form.Email,
		PasswordHash: string(hash),
		Name:         form.Name,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a credential and establishes a session. An unknown
// email reports ErrNoSuchUser; a bad password reports ErrWrongPassword.
func (s *AuthService) Login(form *models.LoginForm) (*models.User, string, error) {
	if err := form.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid login: %w", err)
	}

	user, err := s.users.GetByEmail(form.Email)
	if err == repositories.ErrNotFound {
		return nil, "", ErrNoSuchUser
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := s.sessions.Create(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates the session behind token.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Delete(token)
}

// CurrentActor resolves a session token to its user. An empty or unknown
// token resolves to nil, the anonymous actor.
func (s *AuthService) CurrentActor(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	userID, err := s.sessions.Get(token)
	if err == sessions.ErrNoSession {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if err == repositories.ErrNotFound {
		// Session outlived its user; treat as anonymous.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
