package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSearchText(t *testing.T) {
	item := WorkItem{
		Name:        "Website Redesign",
		Description: "New landing PAGE",
		Phone:       "0901234567",
		Company:     "ABC Corporation",
	}

	text := item.SearchText()
	assert.Contains(t, text, "website redesign")
	assert.Contains(t, text, "new landing page")
	assert.Contains(t, text, "0901234567")
	assert.Contains(t, text, "abc corporation")
}

func TestEffectiveFollowUp(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		interactions []InteractionRecord
		want         *time.Time
	}{
		{
			name: "follow-up of the most recent interaction wins",
			interactions: []InteractionRecord{
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan10},
				{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan20},
			},
			want: &jan20,
		},
		{
			name: "order in the slice does not matter",
			interactions: []InteractionRecord{
				{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan20},
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan10},
			},
			want: &jan20,
		},
		{
			name:         "no history means no follow-up",
			interactions: nil,
			want:         nil,
		},
		{
			name: "most recent interaction without follow-up wins over older one with",
			interactions: []InteractionRecord{
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NextFollowUp: &jan10},
				{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := WorkItem{Kind: KindLead, Interactions: tt.interactions}
			assert.Equal(t, tt.want, lead.EffectiveFollowUp())
		})
	}
}

func TestRelevantDate(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	followUp := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	task := WorkItem{Kind: KindTask, Due: &due}
	assert.Equal(t, &due, task.RelevantDate())

	lead := WorkItem{
		Kind: KindLead,
		// Leads use the follow-up date, never Due.
		Due: timePtr(due),
		Interactions: []InteractionRecord{
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NextFollowUp: &followUp},
		},
	}
	assert.Equal(t, &followUp, lead.RelevantDate())
}

func TestStatusesFor(t *testing.T) {
	assert.Contains(t, StatusesFor(KindProject), StatusOverdue)
	assert.Contains(t, StatusesFor(KindTask), StatusTaskInProgress)
	assert.Contains(t, StatusesFor(KindLead), StatusSilent)
	assert.Nil(t, StatusesFor(Kind("bogus")))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.False(t, StatusOverdue.Terminal())
	assert.False(t, StatusTodo.Terminal())
}
