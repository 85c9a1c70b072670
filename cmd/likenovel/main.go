package main

import (
	"os"

	"github.com/spf13/cobra"

	"likenovel/internal/interfaces/cli/migrate"
	"likenovel/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:           "likenovel",
		Short:         "Web novel platform API server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(server.NewCommand(), migrate.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
