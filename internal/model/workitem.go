// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"
	"time"
)

// Kind identifies which flavor of business record a WorkItem is.
type Kind string

// Work item kinds.
const (
	KindLead    Kind = "lead"
	KindProject Kind = "project"
	KindTask    Kind = "task"
)

// WorkItem is the generalized record type covering leads, projects and tasks.
// Kind-specific fields are zero-valued for kinds that do not use them.
type WorkItem struct {
	CreatedAt     time.Time
	Due           *time.Time // project end date, task deadline; nil for leads
	ID            string
	Name          string
	Description   string
	Phone         string
	Company       string
	Kind          Kind
	Status        Status
	Priority      Priority
	Payments      []Payment
	Interactions  []InteractionRecord
	ContractValue float64
	Archived      bool
}

// SearchText returns the lowercase haystack used for substring search:
// name, description, phone and company joined together.
func (w *WorkItem) SearchText() string {
	parts := []string{w.Name, w.Description, w.Phone, w.Company}
	return strings.ToLower(strings.Join(parts, " "))
}

// RelevantDate returns the date used by date facets: the effective
// follow-up date for leads, the due date for projects and tasks.
// Returns nil when the item has no such date.
func (w *WorkItem) RelevantDate() *time.Time {
	if w.Kind == KindLead {
		return w.EffectiveFollowUp()
	}
	return w.Due
}

// EffectiveFollowUp returns the next-follow-up date carried by the lead's
// most recent interaction, or nil if the lead has no interaction history
// or the most recent interaction scheduled no follow-up.
func (w *WorkItem) EffectiveFollowUp() *time.Time {
	var latest *InteractionRecord
	for i := range w.Interactions {
		rec := &w.Interactions[i]
		if latest == nil || rec.Date.After(latest.Date) {
			latest = rec
		}
	}
	if latest == nil {
		return nil
	}
	return latest.NextFollowUp
}
