package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/services"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Auth     *services.AuthService
	Posts    *services.PostService
	Comments *services.CommentService
	Contact  *services.ContactService
	Renderer *controllers.Renderer
}

// Setup defines the application's routes and returns a router.
func Setup(deps Deps) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CurrentUser(deps.Auth))

	postController := controllers.NewPostController(deps.Posts, deps.Renderer)
	commentController := controllers.NewCommentController(deps.Comments, deps.Renderer)
	authController := controllers.NewAuthController(deps.Auth, deps.Renderer)
	contactController := controllers.NewContactController(deps.Contact, deps.Renderer)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Posts
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", commentController.Create).Methods("POST")
	router.HandleFunc("/new-post", postController.New).Methods("GET")
	router.HandleFunc("/new-post", postController.Create).Methods("POST")
	router.HandleFunc("/edit-post/{id:[0-9]+}", postController.EditForm).Methods("GET")
	router.HandleFunc("/edit-post/{id:[0-9]+}", postController.Update).Methods("POST")
	router.HandleFunc("/delete/{id:[0-9]+}", postController.Delete).Methods("GET")

	// Accounts
	router.HandleFunc("/register", authController.RegisterForm).Methods("GET")
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.LoginForm).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	// Pages
	router.HandleFunc("/about", contactController.About).Methods("GET")
	router.HandleFunc("/contact", contactController.Form).Methods("GET")
	router.HandleFunc("/contact", contactController.Submit).Methods("POST")

	return router
}
