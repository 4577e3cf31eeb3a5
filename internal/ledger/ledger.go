// Package ledger derives the financial view of a project: payment totals,
// outstanding debt and overdue-day counts.
package ledger

import (
	"errors"
	"time"

	"github.com/minhle/workdesk/internal/clock"
	"github.com/minhle/workdesk/internal/model"
)

// ErrIndexOutOfRange is returned when a payment index does not exist in the
// schedule. This is a programmer error on the caller's side.
var ErrIndexOutOfRange = errors.New("payment index out of range")

// TotalPaid sums the amounts of all paid installments.
func TotalPaid(payments []model.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Paid {
			total += p.Amount
		}
	}
	return total
}

// Debt returns the contract value minus everything paid so far. It is not
// clamped at zero: overpaid schedules yield a negative debt.
func Debt(contractValue float64, payments []model.Payment) float64 {
	return contractValue - TotalPaid(payments)
}

// OverdueDays returns how many whole calendar days the item has been
// overdue: zero unless the stored status is overdue and an end date is set.
// An end date on the same calendar day as now counts as zero days.
func OverdueDays(now time.Time, endDate *time.Time, status model.Status) int {
	if status != model.StatusOverdue || endDate == nil {
		return 0
	}
	return clock.DaysBetween(*endDate, now)
}

// Totals holds the summed financial view across a project collection, shown
// next to the count widgets.
type Totals struct {
	ContractValue float64
	Debt          float64
}

// Sum aggregates contract value and outstanding debt over the collection.
// Non-project items contribute nothing.
func Sum(items []model.WorkItem) Totals {
	var t Totals
	for i := range items {
		if items[i].Kind != model.KindProject {
			continue
		}
		t.ContractValue += items[i].ContractValue
		t.Debt += Debt(items[i].ContractValue, items[i].Payments)
	}
	return t
}

// TogglePayment flips the paid flag at index and returns the new schedule.
// The input slice is never modified, so callers performing an optimistic
// update can keep it as the rollback snapshot while persistence is in
// flight. Returns ErrIndexOutOfRange for an invalid index.
func TogglePayment(payments []model.Payment, index int) ([]model.Payment, error) {
	if index < 0 || index >= len(payments) {
		return nil, ErrIndexOutOfRange
	}
	next := make([]model.Payment, len(payments))
	copy(next, payments)
	next[index].Paid = !next[index].Paid
	return next, nil
}
