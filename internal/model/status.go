package model

// Status is a stored lifecycle status. Each kind uses its own subset of
// the constants below; the zero value means "unset" in filter contexts.
type Status string

// Project statuses. StatusOverdue may also appear as a stored status when a
// stale value was persisted; the lifecycle classifier recomputes it.
const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// Task statuses. Tasks share StatusCompleted with projects but use an
// underscored in-progress value, matching the stored representation.
const (
	StatusTodo           Status = "todo"
	StatusTaskInProgress Status = "in_progress"
)

// Lead care statuses.
const (
	StatusNew      Status = "new"
	StatusThinking Status = "thinking"
	StatusWorking  Status = "working"
	StatusSilent   Status = "silent"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status is terminal with respect to the
// overdue overlay and the overdue date facet.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// Priority covers both task urgency and lead potential.
type Priority string

// Priority and potential levels.
const (
	PriorityUrgent Priority = "urgent"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityLow    Priority = "low"
)

// StatusesFor returns the stored statuses a kind may carry, in display order.
func StatusesFor(kind Kind) []Status {
	switch kind {
	case KindProject:
		return []Status{StatusPlanning, StatusInProgress, StatusCompleted, StatusOverdue}
	case KindTask:
		return []Status{StatusTodo, StatusTaskInProgress, StatusCompleted}
	case KindLead:
		return []Status{StatusNew, StatusThinking, StatusWorking, StatusSilent, StatusRejected}
	default:
		return nil
	}
}
