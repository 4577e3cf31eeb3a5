package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minhle/workdesk/internal/common"
	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/service"
)

// PersistPayments replaces a project's payment schedule atomically. Schedule
// order is kept via the position column.
func (s *SQLiteStorage) PersistPayments(ctx context.Context, id string, payments []model.Payment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if err := validatePayments(payments); err != nil {
		return err
	}

	return common.WithRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM work_items WHERE id = ?`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check work item: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("work item %s: %w", id, service.ErrNotFound)
		}

		if err := replacePaymentsTx(ctx, tx, id, payments); err != nil {
			return err
		}
		return tx.Commit()
	}, isBusy, mutationRetry)
}

func (s *SQLiteStorage) paymentsFor(ctx context.Context, id string) ([]model.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, paid FROM payments
		WHERE item_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.Amount, &p.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

func replacePaymentsTx(ctx context.Context, tx *sql.Tx, id string, payments []model.Payment) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear payments: %w", err)
	}
	for i, p := range payments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO payments (item_id, position, amount, paid)
			VALUES (?, ?, ?, ?)
		`, id, i, p.Amount, p.Paid); err != nil {
			return fmt.Errorf("failed to insert payment %d: %w", i, err)
		}
	}
	return nil
}
