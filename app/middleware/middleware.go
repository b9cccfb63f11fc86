package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"inkwell/app/models"
	"inkwell/app/services"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session_token"

type contextKey int

const userKey contextKey = 0

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic serving %s: %v", r.URL.Path, err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CurrentUser resolves the session cookie to an actor and stores it in the
// request context. Every handler downstream reads the actor from there; no
// handler touches the session store directly.
func CurrentUser(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}
			actor, err := auth.CurrentActor(token)
			if err != nil {
				log.Printf("failed to resolve session: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), actor)))
		})
	}
}

// WithUser returns a context carrying the given actor.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the actor for the request, or nil for anonymous.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
