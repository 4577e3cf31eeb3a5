// Package bulk applies archive, restore and delete actions to a selected
// id set, tolerating and reporting partial failure. The backing store has
// no cross-item transaction, so the processor never pretends one exists:
// every id is attempted and the outcome recorded per item.
package bulk

import (
	"context"
	"log/slog"

	"github.com/minhle/workdesk/internal/service"
)

// Action is a bulk mutation applied per item.
type Action string

// Supported actions.
const (
	ActionArchive Action = "archive"
	ActionRestore Action = "restore"
	ActionDelete  Action = "delete"
)

// Failure records why one id could not be processed.
type Failure struct {
	ID     string
	Reason service.ReasonCode
	Err    error
}

// Result reports the outcome of a bulk run, per id.
type Result struct {
	Succeeded []string
	Failed    []Failure
}

// Processor runs bulk actions against a store.
type Processor struct {
	store service.Store
}

// New creates a processor backed by the given store.
func New(store service.Store) *Processor {
	return &Processor{store: store}
}

// Run applies the action to every id in order. A failing id never stops the
// run; its error is classified and recorded. There is no cancellation
// midway: callers needing to abandon a run discard the result, since
// already-applied mutations cannot be rolled back.
func (p *Processor) Run(ctx context.Context, action Action, ids []string) Result {
	var result Result
	for _, id := range ids {
		var err error
		switch action {
		case ActionArchive:
			err = p.store.MutateArchived(ctx, id, true)
		case ActionRestore:
			err = p.store.MutateArchived(ctx, id, false)
		case ActionDelete:
			err = p.store.DeleteByID(ctx, id)
		}
		if err != nil {
			reason := service.ClassifyReason(err)
			slog.Warn("bulk action failed for item",
				"action", action,
				"id", id,
				"reason", reason,
				"error", err)
			result.Failed = append(result.Failed, Failure{ID: id, Reason: reason, Err: err})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result
}
