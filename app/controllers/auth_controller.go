package controllers

import (
	"net/http"
	"time"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/sessions"
)

// AuthController handles registration, login and logout
type AuthController struct {
	auth     *services.AuthService
	renderer *Renderer
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService, renderer *Renderer) *AuthController {
	return &AuthController{auth: auth, renderer: renderer}
}

// RegisterForm displays the registration form
func (ac *AuthController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	ac.renderer.Render(w, r, "register", viewData{User: middleware.UserFrom(r.Context())})
}

// Register handles a registration submission and logs the new account in
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := &models.RegisterForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
	}

	_, token, err := ac.auth.Register(form)
	switch {
	case err == nil:
		setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case err == repositories.ErrDuplicateEmail:
		ac.renderer.Flash(w, r, "You've already signed up with that email, log in instead.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case isValidationError(err):
		ac.renderer.Flash(w, r, "A valid email, a password and a name are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	default:
		http.Error(w, "Registration failed", http.StatusInternalServerError)
	}
}

// LoginForm displays the login form
func (ac *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	ac.renderer.Render(w, r, "login", viewData{User: middleware.UserFrom(r.Context())})
}

// Login handles a login submission. The two failure messages are distinct
// on purpose; that specificity is existing product behavior.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := &models.LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	_, token, err := ac.auth.Login(form)
	switch {
	case err == nil:
		setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case err == services.ErrNoSuchUser:
		ac.renderer.Flash(w, r, "That email does not exist, please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case err == services.ErrWrongPassword:
		ac.renderer.Flash(w, r, "Password incorrect, please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case isValidationError(err):
		ac.renderer.Flash(w, r, "A valid email and a password are required.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	default:
		http.Error(w, "Login failed", http.StatusInternalServerError)
	}
}

// Logout invalidates the current session and clears its cookie
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := ac.auth.Logout(cookie.Value); err != nil {
			http.Error(w, "Logout failed", http.StatusInternalServerError)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(sessions.DefaultTTL),
	})
}
