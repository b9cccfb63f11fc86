package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"inkwell/app/controllers"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/sessions"
)

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) Send(name, email, phone, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

// setupTestApp wires the full application against a throwaway SQLite file,
// an in-memory session store and a fake mailer.
func setupTestApp(t *testing.T) (*mux.Router, *fakeMailer) {
	t.Helper()

	db, err := repositories.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := sessions.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := repositories.NewSQLiteUserRepository(db)
	posts := repositories.NewSQLitePostRepository(db)
	comments := repositories.NewSQLiteCommentRepository(db)
	mail := &fakeMailer{}

	router := Setup(Deps{
		Auth:     services.NewAuthService(users, store),
		Posts:    services.NewPostService(posts, comments),
		Comments: services.NewCommentService(comments, posts),
		Contact:  services.NewContactService(mail),
		Renderer: controllers.NewRenderer(setupTestTemplates(t), "test-secret"),
	})
	return router, mail
}

// setupTestTemplates writes minimal templates so controllers can render
// without the real view files.
func setupTestTemplates(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")
	require.NoError(t, os.MkdirAll(viewsDir, 0o755))

	templates := map[string]string{
		"layout.html":    `{{define "layout"}}<!DOCTYPE html><html><body>{{if .Flash}}<div class="flash">{{.Flash}}</div>{{end}}{{template "content" .}}</body></html>{{end}}`,
		"index.html":     `{{define "content"}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div>{{end}}`,
		"post.html":      `{{define "content"}}<h1>{{.Post.Title}}</h1>{{safe .Post.Body}}<div class="comments">{{range .Post.Comments}}<p>{{.Body}} by {{.Author}}</p>{{end}}</div>{{end}}`,
		"post_form.html": `{{define "content"}}<form method="POST"><input name="title"></form>{{end}}`,
		"register.html":  `{{define "content"}}<form method="POST" action="/register"></form>{{end}}`,
		"login.html":     `{{define "content"}}<form method="POST" action="/login"></form>{{end}}`,
		"contact.html":   `{{define "content"}}{{if .Sent}}Successfully sent your message{{else}}Contact Me{{end}}{{end}}`,
		"about.html":     `{{define "content"}}<h1>About</h1>{{end}}`,
	}
	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(viewsDir, name), []byte(content), 0o644))
	}
	return tmpDir
}

// do performs a request, carrying any cookies along.
func do(router *mux.Router, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its session cookie.
func register(t *testing.T, router *mux.Router, email, password, name string) *http.Cookie {
	t.Helper()
	w := do(router, "POST", "/register", url.Values{
		"email":    {email},
		"password": {password},
		"name":     {name},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	t.Fatal("no session cookie after registration")
	return nil
}
