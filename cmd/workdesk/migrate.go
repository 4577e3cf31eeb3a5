package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version. Safe to
run repeatedly; already-applied migrations are skipped.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	// initStorage migrates as part of opening.
	store, err := initStorage(cmd.Context())
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	fmt.Println(cli.FormatSuccess("database schema is up to date")) //nolint:forbidigo // User-facing output
	return nil
}
