package query

import (
	"time"

	"github.com/minhle/workdesk/internal/model"
)

// Stat is one named counter backing a statistic widget.
type Stat struct {
	Widget Widget
	Count  int
}

// Aggregate computes the widget counters for a kind over a collection that
// has already been classified and archive-scoped, but not otherwise
// filtered: counts reflect what clearing every non-archive facet would
// show. Each counter applies only its own widget's facet, not the combined
// filter chain, and is recomputed from scratch on every call.
func Aggregate(items []model.WorkItem, kind model.Kind, now time.Time) []Stat {
	widgets := WidgetsFor(kind)
	stats := make([]Stat, 0, len(widgets))
	for _, w := range widgets {
		patch := widgetFacets[w]
		n := 0
		for i := range items {
			if matchesPatch(&items[i], patch, now) {
				n++
			}
		}
		stats = append(stats, Stat{Widget: w, Count: n})
	}
	return stats
}

func matchesPatch(item *model.WorkItem, patch facetPatch, now time.Time) bool {
	return matchStatus(item, patch.Status) &&
		matchPriority(item, patch.Priority) &&
		matchDate(item, patch.Date, now)
}
