package query

import "github.com/minhle/workdesk/internal/model"

// Widget identifies a clickable statistic card. Each widget corresponds to
// exactly one facet setting; widgets are mutually exclusive with each other
// but independent of search and archive scope.
type Widget string

// Widgets, grouped by the screens that show them.
const (
	// Shared.
	WidgetTotal Widget = "total"

	// Tasks.
	WidgetUrgent     Widget = "urgent"
	WidgetTodo       Widget = "todo"
	WidgetInProgress Widget = "in_progress"
	WidgetDueToday   Widget = "due_today"
	WidgetOverdue    Widget = "overdue"

	// Projects.
	WidgetPlanning      Widget = "planning"
	WidgetProjectActive Widget = "project_active"
	WidgetCompleted     Widget = "completed"

	// Leads.
	WidgetPotential Widget = "potential"
	WidgetThinking  Widget = "thinking"
	WidgetWorking   Widget = "working"
	WidgetSilent    Widget = "silent"
	WidgetRejected  Widget = "rejected"
)

// facetPatch is the facet setting a widget stands for. The zero patch
// (WidgetTotal) stands for "no widget facet".
type facetPatch struct {
	Status   model.Status
	Priority model.Priority
	Date     DateFacet
}

var widgetFacets = map[Widget]facetPatch{
	WidgetTotal:         {},
	WidgetUrgent:        {Priority: model.PriorityUrgent},
	WidgetTodo:          {Status: model.StatusTodo},
	WidgetInProgress:    {Status: model.StatusTaskInProgress},
	WidgetDueToday:      {Date: DateFacet{Kind: DateToday}},
	WidgetOverdue:       {Date: DateFacet{Kind: DateOverdue}},
	WidgetPlanning:      {Status: model.StatusPlanning},
	WidgetProjectActive: {Status: model.StatusInProgress},
	WidgetCompleted:     {Status: model.StatusCompleted},
	WidgetPotential:     {Priority: model.PriorityHigh},
	WidgetThinking:      {Status: model.StatusThinking},
	WidgetWorking:       {Status: model.StatusWorking},
	WidgetSilent:        {Status: model.StatusSilent},
	WidgetRejected:      {Status: model.StatusRejected},
}

// WidgetsFor returns the widgets shown for a kind, in display order.
func WidgetsFor(kind model.Kind) []Widget {
	switch kind {
	case model.KindTask:
		return []Widget{WidgetTotal, WidgetUrgent, WidgetTodo, WidgetInProgress, WidgetDueToday, WidgetOverdue}
	case model.KindProject:
		return []Widget{WidgetTotal, WidgetPlanning, WidgetProjectActive, WidgetCompleted, WidgetOverdue}
	case model.KindLead:
		return []Widget{WidgetTotal, WidgetPotential, WidgetThinking, WidgetWorking, WidgetSilent, WidgetRejected}
	default:
		return nil
	}
}

// ApplyWidget toggles a widget against the filter. Clicking a widget clears
// every widget-origin facet and sets the widget's own; clicking the widget
// whose facet is already the active one just clears. Search and archive
// scope are never touched.
func ApplyWidget(f FilterState, w Widget) FilterState {
	patch, ok := widgetFacets[w]
	if !ok {
		return f
	}
	active := f.Status == patch.Status &&
		f.Priority == patch.Priority &&
		f.Date.Kind == patch.Date.Kind
	f = f.ClearFacets()
	if active {
		return f
	}
	f.Status = patch.Status
	f.Priority = patch.Priority
	f.Date = patch.Date
	return f
}
