// Package period computes reporting period boundaries in the business
// timezone. The business operates on a fixed UTC-3 offset; all "today"
// and "current month" boundaries are derived from it regardless of the
// host timezone.
package period

import "time"

// BusinessTimezone is the fixed offset the business keeps its books in.
var BusinessTimezone = time.FixedZone("UTC-3", -3*60*60)

// Range is a half-open-free inclusive time interval [From, To].
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Day returns the calendar day containing now, in the business timezone.
func Day(now time.Time) Range {
	local := now.In(BusinessTimezone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, BusinessTimezone)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return Range{From: start, To: end}
}

// MonthToDate returns the range from the first of the current month
// through now, in the business timezone.
func MonthToDate(now time.Time) Range {
	local := now.In(BusinessTimezone)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, BusinessTimezone)
	return Range{From: start, To: local}
}

// Now returns the current instant in the business timezone.
func Now() time.Time {
	return time.Now().In(BusinessTimezone)
}
