package initdb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"inkwell/app/repositories"
	"inkwell/config"
)

// NewInitDBCommand creates the initdb subcommand.
func NewInitDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the database schema and exit",
		RunE:  run,
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

	fmt.Printf("Database initialized at %s\n", cfg.DSN)
	return nil
}
