package query

import (
	"strings"
	"time"

	"github.com/minhle/workdesk/internal/clock"
	"github.com/minhle/workdesk/internal/model"
)

// Matches reports whether a classified item is visible under the filter.
// All facets are AND-combined; an unset facet matches everything.
func Matches(item *model.WorkItem, f FilterState, now time.Time) bool {
	return matchScope(item, f.Scope) &&
		matchSearch(item, f.Search) &&
		matchStatus(item, f.Status) &&
		matchPriority(item, f.Priority) &&
		matchDate(item, f.Date, now)
}

// Filter returns the items visible under the filter, preserving order.
// Items are expected to be classified already.
func Filter(items []model.WorkItem, f FilterState, now time.Time) []model.WorkItem {
	out := make([]model.WorkItem, 0, len(items))
	for i := range items {
		if Matches(&items[i], f, now) {
			out = append(out, items[i])
		}
	}
	return out
}

func matchScope(item *model.WorkItem, scope ArchiveScope) bool {
	switch scope {
	case ScopeArchived:
		return item.Archived
	case ScopeAll:
		return true
	default:
		// Unset scope behaves like the default active view.
		return !item.Archived
	}
}

func matchSearch(item *model.WorkItem, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(item.SearchText(), strings.ToLower(search))
}

func matchStatus(item *model.WorkItem, status model.Status) bool {
	return status == "" || item.Status == status
}

func matchPriority(item *model.WorkItem, priority model.Priority) bool {
	return priority == "" || item.Priority == priority
}

// matchDate evaluates the date facet against the item's relevant date
// (effective follow-up for leads, due date otherwise). Items without a
// relevant date fail closed: they never match today, overdue or a specific
// date.
func matchDate(item *model.WorkItem, facet DateFacet, now time.Time) bool {
	if facet.Kind == DateNone {
		return true
	}
	rel := item.RelevantDate()
	if rel == nil {
		return false
	}
	switch facet.Kind {
	case DateToday:
		return clock.SameDay(*rel, now)
	case DateOverdue:
		return clock.DayBefore(*rel, now) && !item.Status.Terminal()
	case DateOn:
		return clock.SameDay(*rel, facet.On)
	default:
		return false
	}
}
