package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application
// expects. A database that cannot reach it is a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS work_items (
					id TEXT PRIMARY KEY,
					kind TEXT NOT NULL,
					name TEXT NOT NULL,
					description TEXT,
					phone TEXT,
					company TEXT,
					status TEXT NOT NULL,
					priority TEXT,
					due DATETIME,
					contract_value REAL DEFAULT 0,
					archived INTEGER DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS payments (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					item_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					amount REAL NOT NULL,
					paid INTEGER DEFAULT 0,
					FOREIGN KEY (item_id) REFERENCES work_items(id) ON DELETE CASCADE
				)`,

				`CREATE TABLE IF NOT EXISTS interactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					item_id TEXT NOT NULL,
					date DATETIME NOT NULL,
					next_follow_up DATETIME,
					notes TEXT,
					FOREIGN KEY (item_id) REFERENCES work_items(id) ON DELETE CASCADE
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add indexes for list and child-row lookups",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_work_items_kind ON work_items(kind)`,
				`CREATE INDEX IF NOT EXISTS idx_work_items_archived ON work_items(archived)`,
				`CREATE INDEX IF NOT EXISTS idx_payments_item ON payments(item_id, position)`,
				`CREATE INDEX IF NOT EXISTS idx_interactions_item ON interactions(item_id, date)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to ExpectedSchemaVersion.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
