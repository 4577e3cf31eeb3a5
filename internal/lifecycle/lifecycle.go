// Package lifecycle recomputes the status a work item should display,
// regardless of what was last stored for it.
package lifecycle

import (
	"time"

	"github.com/minhle/workdesk/internal/model"
)

// EffectiveStatus returns the item's status after applying time-driven
// overlays. A project whose end date has passed reads as overdue unless it
// is completed; completion is terminal with respect to the overlay, and the
// overlay reverses by itself once the end date is extended. Tasks and leads
// have no automatic demotion and pass their stored status through.
func EffectiveStatus(item *model.WorkItem, now time.Time) model.Status {
	if item.Kind != model.KindProject {
		return item.Status
	}
	if item.Status.Terminal() {
		return item.Status
	}
	if item.Due != nil && item.Due.Before(now) {
		return model.StatusOverdue
	}
	return item.Status
}

// Classify returns a copy of items with each project's status replaced by
// its effective status. Input items are not modified.
func Classify(items []model.WorkItem, now time.Time) []model.WorkItem {
	out := make([]model.WorkItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Status = EffectiveStatus(&out[i], now)
	}
	return out
}
