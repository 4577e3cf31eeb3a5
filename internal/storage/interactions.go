package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/service"
)

// AppendInteraction adds one record to a lead's care history and returns it
// as stored.
func (s *SQLiteStorage) AppendInteraction(ctx context.Context, leadID string, record model.InteractionRecord) (model.InteractionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return model.InteractionRecord{}, err
	}
	if err := validateString(leadID, "leadID"); err != nil {
		return model.InteractionRecord{}, err
	}
	if record.Date.IsZero() {
		return model.InteractionRecord{}, fmt.Errorf("%w: interaction date is required", ErrInvalidItem)
	}

	var kind model.Kind
	err := s.db.QueryRowContext(ctx,
		`SELECT kind FROM work_items WHERE id = ?`, leadID).Scan(&kind)
	if err == sql.ErrNoRows {
		return model.InteractionRecord{}, fmt.Errorf("work item %s: %w", leadID, service.ErrNotFound)
	}
	if err != nil {
		return model.InteractionRecord{}, fmt.Errorf("failed to check work item: %w", err)
	}
	if kind != model.KindLead {
		return model.InteractionRecord{}, &service.BusinessRuleError{Detail: "interactions are only recorded for leads"}
	}

	if err := insertInteraction(ctx, s.db, leadID, record); err != nil {
		return model.InteractionRecord{}, err
	}
	return record, nil
}

func (s *SQLiteStorage) interactionsFor(ctx context.Context, id string) ([]model.InteractionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, next_follow_up, notes FROM interactions
		WHERE item_id = ? ORDER BY date
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.InteractionRecord
	for rows.Next() {
		var rec model.InteractionRecord
		var next sql.NullTime
		if err := rows.Scan(&rec.Date, &next, &rec.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		if next.Valid {
			t := next.Time
			rec.NextFollowUp = &t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interactions: %w", err)
	}
	return records, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertInteraction(ctx context.Context, db execer, id string, rec model.InteractionRecord) error {
	if _, err := db.ExecContext(ctx, `
		INSERT INTO interactions (item_id, date, next_follow_up, notes)
		VALUES (?, ?, ?, ?)
	`, id, rec.Date, rec.NextFollowUp, rec.Notes); err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}
	return nil
}
