package commands

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"flagquiz/internal/infra/postgres"
)

//go:embed schema.sql
var schemaSQL string

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := databaseURL
			if dsn == "" {
				dsn = os.Getenv("DATABASE_URL")
			}
			if dsn == "" {
				return fmt.Errorf("database connection string required (--database-url or $DATABASE_URL)")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
				MaxConns:        2,
				MaxConnLifetime: time.Minute,
			})
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			transactor := postgres.NewTransactor(pool)
			err = transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
				for _, stmt := range splitStatements(schemaSQL) {
					if _, err := tx.Exec(ctx, stmt); err != nil {
						return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Println("Schema applied.")
			return nil
		},
	}
}

// splitStatements breaks the schema into individual statements. Good
// enough for our DDL, which has no semicolons inside literals or
// function bodies.
func splitStatements(sql string) []string {
	var out []string
	for _, stmt := range strings.Split(sql, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
