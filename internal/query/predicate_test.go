package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/workdesk/internal/model"
)

var queryNow = time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func TestMatches_ArchiveScope(t *testing.T) {
	active := model.WorkItem{Kind: model.KindTask, Name: "a"}
	archived := model.WorkItem{Kind: model.KindTask, Name: "b", Archived: true}

	tests := []struct {
		name         string
		scope        ArchiveScope
		wantActive   bool
		wantArchived bool
	}{
		{name: "active scope", scope: ScopeActive, wantActive: true, wantArchived: false},
		{name: "archived scope", scope: ScopeArchived, wantActive: false, wantArchived: true},
		{name: "all scope", scope: ScopeAll, wantActive: true, wantArchived: true},
		{name: "zero scope defaults to active", scope: "", wantActive: true, wantArchived: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FilterState{Scope: tt.scope}
			assert.Equal(t, tt.wantActive, Matches(&active, f, queryNow))
			assert.Equal(t, tt.wantArchived, Matches(&archived, f, queryNow))
		})
	}
}

func TestMatches_Search(t *testing.T) {
	item := model.WorkItem{
		Kind:        model.KindLead,
		Name:        "Nguyen Van A",
		Description: "Interested in branding package",
		Phone:       "0901234567",
		Company:     "ABC Corporation",
	}

	f := FilterState{Scope: ScopeAll}
	tests := []struct {
		search string
		want   bool
	}{
		{search: "", want: true},
		{search: "nguyen", want: true},
		{search: "BRANDING", want: true},
		{search: "0901", want: true},
		{search: "abc corp", want: true},
		{search: "xyz", want: false},
	}

	for _, tt := range tests {
		t.Run("search="+tt.search, func(t *testing.T) {
			f.Search = tt.search
			assert.Equal(t, tt.want, Matches(&item, f, queryNow))
		})
	}
}

func TestMatches_EnumFacets(t *testing.T) {
	item := model.WorkItem{
		Kind:     model.KindTask,
		Name:     "write report",
		Status:   model.StatusTodo,
		Priority: model.PriorityUrgent,
	}

	f := FilterState{Scope: ScopeAll, Status: model.StatusTodo, Priority: model.PriorityUrgent}
	assert.True(t, Matches(&item, f, queryNow))

	f.Status = model.StatusTaskInProgress
	assert.False(t, Matches(&item, f, queryNow))

	f.Status = ""
	f.Priority = model.PriorityNormal
	assert.False(t, Matches(&item, f, queryNow))
}

func TestMatches_DateFacets(t *testing.T) {
	today := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		item model.WorkItem
		date DateFacet
		want bool
	}{
		{
			name: "due today matches today facet",
			item: model.WorkItem{Kind: model.KindTask, Due: &today},
			date: DateFacet{Kind: DateToday},
			want: true,
		},
		{
			name: "due tomorrow does not match today facet",
			item: model.WorkItem{Kind: model.KindTask, Due: &tomorrow},
			date: DateFacet{Kind: DateToday},
			want: false,
		},
		{
			name: "past deadline matches overdue facet",
			item: model.WorkItem{Kind: model.KindTask, Status: model.StatusTodo, Due: &yesterday},
			date: DateFacet{Kind: DateOverdue},
			want: true,
		},
		{
			name: "completed item never matches overdue",
			item: model.WorkItem{Kind: model.KindTask, Status: model.StatusCompleted, Due: &yesterday},
			date: DateFacet{Kind: DateOverdue},
			want: false,
		},
		{
			name: "earlier today is not overdue at day granularity",
			item: model.WorkItem{Kind: model.KindTask, Status: model.StatusTodo, Due: timePtr(time.Date(2024, 1, 20, 1, 0, 0, 0, time.UTC))},
			date: DateFacet{Kind: DateOverdue},
			want: false,
		},
		{
			name: "specific date matches by calendar day",
			item: model.WorkItem{Kind: model.KindTask, Due: &yesterday},
			date: DateFacet{Kind: DateOn, On: time.Date(2024, 1, 19, 23, 0, 0, 0, time.UTC)},
			want: true,
		},
		{
			name: "specific date mismatch",
			item: model.WorkItem{Kind: model.KindTask, Due: &yesterday},
			date: DateFacet{Kind: DateOn, On: today},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FilterState{Scope: ScopeAll, Date: tt.date}
			assert.Equal(t, tt.want, Matches(&tt.item, f, queryNow))
		})
	}
}

// An item with no relevant date fails closed: it never matches today,
// overdue or any specific date.
func TestMatches_NoRelevantDateFailsClosed(t *testing.T) {
	task := model.WorkItem{Kind: model.KindTask, Status: model.StatusTodo}
	leadNoHistory := model.WorkItem{Kind: model.KindLead, Status: model.StatusWorking}

	facets := []DateFacet{
		{Kind: DateToday},
		{Kind: DateOverdue},
		{Kind: DateOn, On: queryNow},
		{Kind: DateOn, On: queryNow.AddDate(-1, 0, 0)},
	}

	for _, facet := range facets {
		f := FilterState{Scope: ScopeAll, Date: facet}
		assert.False(t, Matches(&task, f, queryNow), "facet %s", facet.Kind)
		assert.False(t, Matches(&leadNoHistory, f, queryNow), "facet %s", facet.Kind)
	}
}

// Lead date facets evaluate the effective follow-up date: the next-follow-up
// of the most recent interaction, even when an older interaction scheduled a
// different one.
func TestMatches_LeadFollowUpDate(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	lead := model.WorkItem{
		Kind:   model.KindLead,
		Name:   "lead",
		Status: model.StatusWorking,
		Interactions: []model.InteractionRecord{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan10},
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan20},
		},
	}

	f := FilterState{Scope: ScopeAll, Date: DateFacet{Kind: DateToday}}
	assert.True(t, Matches(&lead, f, queryNow), "follow-up from the later interaction is today")

	f.Date = DateFacet{Kind: DateOverdue}
	assert.False(t, Matches(&lead, f, queryNow), "the superseded earlier follow-up does not count")
}

func TestFilter_CombinesAllFacetsAndPreservesOrder(t *testing.T) {
	yesterday := queryNow.AddDate(0, 0, -1)
	items := []model.WorkItem{
		{ID: "1", Kind: model.KindTask, Name: "urgent report", Status: model.StatusTodo, Priority: model.PriorityUrgent, Due: &yesterday},
		{ID: "2", Kind: model.KindTask, Name: "urgent cleanup", Status: model.StatusTodo, Priority: model.PriorityUrgent, Due: &yesterday, Archived: true},
		{ID: "3", Kind: model.KindTask, Name: "calm report", Status: model.StatusTodo, Priority: model.PriorityNormal, Due: &yesterday},
		{ID: "4", Kind: model.KindTask, Name: "urgent report two", Status: model.StatusTodo, Priority: model.PriorityUrgent, Due: &yesterday},
	}

	f := FilterState{
		Scope:    ScopeActive,
		Search:   "report",
		Priority: model.PriorityUrgent,
		Date:     DateFacet{Kind: DateOverdue},
	}

	got := Filter(items, f, queryNow)
	ids := make([]string, len(got))
	for i := range got {
		ids[i] = got[i].ID
	}
	assert.Equal(t, []string{"1", "4"}, ids)
}
