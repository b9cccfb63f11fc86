package main

import (
	"os"

	"github.com/spf13/cobra"

	"inkwell/cmd/initdb"
	"inkwell/cmd/serve"
)

func main() {
	root := &cobra.Command{
		Use:   "inkwell",
		Short: "A tutorial-style blog web application",
	}
	root.AddCommand(serve.NewServeCommand())
	root.AddCommand(initdb.NewInitDBCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
