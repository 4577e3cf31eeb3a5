// Package clock supplies "now" as an injectable value so that date-relative
// logic (today, overdue, day counts) is reproducible in tests.
package clock

import (
	"math"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// FixedClock always reports the same instant.
type FixedClock struct {
	t time.Time
}

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) FixedClock { return FixedClock{t: t} }

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time { return c.t }

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayBefore reports whether a's calendar day is strictly before b's.
func DayBefore(a, b time.Time) bool {
	return StartOfDay(a).Before(StartOfDay(b))
}

// DaysBetween returns the number of whole calendar days from earlier to
// later. Same calendar day yields 0; a negative span also yields 0.
func DaysBetween(earlier, later time.Time) int {
	// Rounding absorbs the off-by-an-hour midnights around DST transitions.
	days := int(math.Round(StartOfDay(later).Sub(StartOfDay(earlier)).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
