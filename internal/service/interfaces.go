// Package service defines the contracts between the core engine and the
// backing store.
package service

import (
	"context"

	"github.com/minhle/workdesk/internal/model"
)

// Store is the per-item mutation and snapshot capability the core is
// written against. Implementations live at the persistence boundary; the
// core never retries their failures.
type Store interface {
	// FetchAll returns a read-only snapshot of every item of a kind.
	FetchAll(ctx context.Context, kind model.Kind) ([]model.WorkItem, error)

	// MutateArchived sets the archived flag on a single item.
	MutateArchived(ctx context.Context, id string, archived bool) error

	// DeleteByID removes a single item.
	DeleteByID(ctx context.Context, id string) error

	// PersistPayments replaces a project's payment schedule.
	PersistPayments(ctx context.Context, id string, payments []model.Payment) error

	// AppendInteraction adds a record to a lead's care history and returns
	// it as stored.
	AppendInteraction(ctx context.Context, leadID string, record model.InteractionRecord) (model.InteractionRecord, error)
}
