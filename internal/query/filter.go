// Package query implements the faceted filter, widget-toggle, statistics and
// pagination pipeline shared by the lead, project and task screens.
package query

import (
	"time"

	"github.com/minhle/workdesk/internal/model"
)

// ArchiveScope selects which side of the archive an evaluation sees.
type ArchiveScope string

// Archive scopes.
const (
	ScopeActive   ArchiveScope = "active"
	ScopeArchived ArchiveScope = "archived"
	ScopeAll      ArchiveScope = "all"
)

// DateFacetKind names the date-relative facet in effect.
type DateFacetKind string

// Date facet kinds. DateNone matches everything.
const (
	DateNone    DateFacetKind = ""
	DateToday   DateFacetKind = "today"
	DateOverdue DateFacetKind = "overdue"
	DateOn      DateFacetKind = "on"
)

// DateFacet is a date constraint against an item's relevant date. On is
// only meaningful for DateOn.
type DateFacet struct {
	On   time.Time
	Kind DateFacetKind
}

// FilterState is a snapshot of every active facet plus pagination. It is a
// plain value owned by the caller; the engine reads it and never holds on
// to it. Zero-valued facets match everything.
type FilterState struct {
	Search   string
	Status   model.Status
	Priority model.Priority
	Date     DateFacet
	Scope    ArchiveScope
	Page     int
	PageSize int
}

// NewFilterState returns the default view: active records, no facets,
// first page.
func NewFilterState(pageSize int) FilterState {
	return FilterState{Scope: ScopeActive, PageSize: pageSize}
}

// ClearFacets drops the widget-origin facets (status, priority, date) while
// preserving search, archive scope and pagination.
func (f FilterState) ClearFacets() FilterState {
	f.Status = ""
	f.Priority = ""
	f.Date = DateFacet{}
	return f
}
