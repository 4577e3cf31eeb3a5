package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/minhle/workdesk/internal/common"
	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/service"
)

var mutationRetry = common.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     time.Second,
}

// CreateWorkItem inserts a new item (with its payment schedule and
// interaction history, if any) and returns its generated id.
func (s *SQLiteStorage) CreateWorkItem(ctx context.Context, item *model.WorkItem) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateWorkItem(item); err != nil {
		return "", err
	}

	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO work_items (
			id, kind, name, description, phone, company,
			status, priority, due, contract_value, archived, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, item.Kind, item.Name, item.Description, item.Phone, item.Company,
		item.Status, item.Priority, item.Due, item.ContractValue, item.Archived, createdAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert work item: %w", err)
	}

	if err := replacePaymentsTx(ctx, tx, id, item.Payments); err != nil {
		return "", err
	}
	for _, rec := range item.Interactions {
		if err := insertInteraction(ctx, tx, id, rec); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit work item: %w", err)
	}
	return id, nil
}

// GetWorkItem loads a single item with its child rows.
func (s *SQLiteStorage) GetWorkItem(ctx context.Context, id string) (*model.WorkItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, name, description, phone, company,
		       status, priority, due, contract_value, archived, created_at
		FROM work_items WHERE id = ?
	`, id)

	item, err := scanWorkItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work item %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get work item: %w", err)
	}

	if err := s.loadChildren(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// FetchAll returns a snapshot of every item of the given kind, newest
// first, with payment schedules and interaction histories attached.
func (s *SQLiteStorage) FetchAll(ctx context.Context, kind model.Kind) ([]model.WorkItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, name, description, phone, company,
		       status, priority, due, contract_value, archived, created_at
		FROM work_items WHERE kind = ?
		ORDER BY created_at DESC
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query work items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.WorkItem
	for rows.Next() {
		item, scanErr := scanWorkItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan work item: %w", scanErr)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work items: %w", err)
	}

	for i := range items {
		if err := s.loadChildren(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// UpdateWorkItem rewrites an item's scalar fields. Payments and
// interactions are managed through their own operations.
func (s *SQLiteStorage) UpdateWorkItem(ctx context.Context, item *model.WorkItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWorkItem(item); err != nil {
		return err
	}
	if err := validateString(item.ID, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE work_items
		SET name = ?, description = ?, phone = ?, company = ?,
		    status = ?, priority = ?, due = ?, contract_value = ?
		WHERE id = ?
	`, item.Name, item.Description, item.Phone, item.Company,
		item.Status, item.Priority, item.Due, item.ContractValue, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update work item: %w", err)
	}
	return requireRow(res, item.ID)
}

// MutateArchived sets the archived flag on one item.
func (s *SQLiteStorage) MutateArchived(ctx context.Context, id string, archived bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return common.WithRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx,
			`UPDATE work_items SET archived = ? WHERE id = ?`, archived, id)
		if err != nil {
			return fmt.Errorf("failed to update archived flag: %w", err)
		}
		return requireRow(res, id)
	}, isBusy, mutationRetry)
}

// DeleteByID removes one item; child rows go with it via cascade.
func (s *SQLiteStorage) DeleteByID(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return common.WithRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete work item: %w", err)
		}
		return requireRow(res, id)
	}, isBusy, mutationRetry)
}

func (s *SQLiteStorage) loadChildren(ctx context.Context, item *model.WorkItem) error {
	payments, err := s.paymentsFor(ctx, item.ID)
	if err != nil {
		return err
	}
	item.Payments = payments

	interactions, err := s.interactionsFor(ctx, item.ID)
	if err != nil {
		return err
	}
	item.Interactions = interactions
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkItem(row rowScanner) (*model.WorkItem, error) {
	var item model.WorkItem
	var due sql.NullTime
	err := row.Scan(&item.ID, &item.Kind, &item.Name, &item.Description,
		&item.Phone, &item.Company, &item.Status, &item.Priority,
		&due, &item.ContractValue, &item.Archived, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		t := due.Time
		item.Due = &t
	}
	return &item, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work item %s: %w", id, service.ErrNotFound)
	}
	return nil
}
