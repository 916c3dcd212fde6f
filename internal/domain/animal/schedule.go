package animal

import "time"

// AddMonths adds n calendar months to t. The day of month is kept when the
// target month has it and clamped to the month's last day otherwise, so
// Jan 31 + 1 month is Feb 28 (Feb 29 in leap years).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}

// GenerationEnabled reports whether periodic forms are produced for a.
func (a Animal) GenerationEnabled() bool {
	return a.FormGenerationPeriod > 0
}

// NextFormDue is LastFormSentDate plus the generation period. The second
// result is false when there is no anchor yet.
func (a Animal) NextFormDue() (time.Time, bool) {
	if a.LastFormSentDate == nil {
		return time.Time{}, false
	}
	return AddMonths(*a.LastFormSentDate, a.FormGenerationPeriod), true
}

// IsFormDue applies the generation rule at now. Animals without an anchor
// are due immediately.
func (a Animal) IsFormDue(now time.Time) bool {
	if !a.GenerationEnabled() {
		return false
	}
	next, ok := a.NextFormDue()
	if !ok {
		return true
	}
	return !now.Before(next)
}
