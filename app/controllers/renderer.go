package controllers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"

	"inkwell/app/models"
)

const flashSession = "inkwell_flash"

// viewData is the data handed to every template.
type viewData struct {
	User    *models.User
	Flash   string
	Posts   []*models.Post
	Post    *models.Post
	Editing bool
	Sent    bool
}

// Renderer renders views and carries flash messages across redirects in a
// signed cookie. The secret key's only job is signing that cookie.
type Renderer struct {
	templates map[string]*template.Template
	flashes   *sessions.CookieStore
}

// NewRenderer loads all templates relative to basePath.
func NewRenderer(basePath, secretKey string) *Renderer {
	return &Renderer{
		templates: loadTemplates(basePath),
		flashes:   sessions.NewCookieStore([]byte(secretKey)),
	}
}

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	pages := []string{"index", "post", "post_form", "register", "login", "contact", "about"}
	funcs := template.FuncMap{
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}
	templates := make(map[string]*template.Template)
	for _, page := range pages {
		templates[page] = template.Must(template.New("layout.html").Funcs(funcs).ParseFiles(
			filepath.Join(basePath, "app/views/layout.html"),
			filepath.Join(basePath, "app/views/"+page+".html"),
		))
	}
	return templates
}

// Render executes the named template, popping any pending flash message into
// the view.
func (re *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data viewData) {
	data.Flash = re.popFlash(w, r)
	re.render(w, name, data)
}

// RenderStatus is Render with an explicit status code.
func (re *Renderer) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data viewData) {
	data.Flash = re.popFlash(w, r)
	w.WriteHeader(status)
	re.render(w, name, data)
}

func (re *Renderer) render(w http.ResponseWriter, name string, data viewData) {
	tmpl, ok := re.templates[name]
	if !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template %s: %v", name, err)
	}
}

// Flash stores a one-shot message shown on the next rendered page.
func (re *Renderer) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := re.flashes.Get(r, flashSession)
	session.AddFlash(msg)
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save flash: %v", err)
	}
}

func (re *Renderer) popFlash(w http.ResponseWriter, r *http.Request) string {
	session, _ := re.flashes.Get(r, flashSession)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	// Saving after Flashes() clears the cookie.
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to clear flash: %v", err)
	}
	msg, _ := flashes[0].(string)
	return msg
}

// isValidationError reports whether err came from form validation rather
// than the store or transport.
func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
