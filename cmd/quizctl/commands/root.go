package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	databaseURL string
	catalogPath string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "quizctl",
		Short:         "Admin utilities for the flag quiz bot",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Pick up DATABASE_URL and friends from .env when present.
			_ = godotenv.Load()
		},
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (default $DATABASE_URL)")
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "assets/data/countries.json", "path to the country catalog JSON")

	root.AddCommand(migrateCmd(), catalogCmd())
	return root.Execute()
}
