package serve

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"inkwell/app/controllers"
	"inkwell/app/mailer"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"
	"inkwell/app/sessions"
	"inkwell/config"
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the blog web application",
		Long: `Run the blog web application.

Configuration is read from INKWELL_* environment variables: listen address,
SQLite path, session store directory, flash-cookie secret and the SMTP
account used by the contact form.`,
		RunE: run,
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	if dir := filepath.Dir(cfg.DSN); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	db, err := repositories.Open(cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := sessions.Open(cfg.SessionDir)
	if err != nil {
		return err
	}
	defer store.Close()

	smtp, err := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err != nil {
		return err
	}

	users := repositories.NewSQLiteUserRepository(db)
	posts := repositories.NewSQLitePostRepository(db)
	comments := repositories.NewSQLiteCommentRepository(db)

	router := routes.Setup(routes.Deps{
		Auth:     services.NewAuthService(users, store),
		Posts:    services.NewPostService(posts, comments),
		Comments: services.NewCommentService(comments, posts),
		Contact:  services.NewContactService(smtp),
		Renderer: controllers.NewRenderer("", cfg.SecretKey),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("Starting blog service on %s", cfg.Addr)
	return srv.ListenAndServe()
}
