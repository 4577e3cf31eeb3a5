package model

import "time"

// Payment is one installment in a project's payment schedule. Order within
// the schedule is significant for display but not for aggregation.
type Payment struct {
	Amount float64
	Paid   bool
}

// InteractionRecord is one entry in a lead's care history. NextFollowUp is
// nil when the interaction scheduled no follow-up.
type InteractionRecord struct {
	Date         time.Time
	NextFollowUp *time.Time
	Notes        string
}
