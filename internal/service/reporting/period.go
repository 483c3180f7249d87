package reporting

import "time"

// Month identifies one calendar-month aggregation bucket.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the bucket containing the given instant.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Key returns a sortable month ordinal. Consecutive months differ by exactly
// one, so sorting by Key is chronological regardless of label locale.
func (m Month) Key() int {
	return m.Year*12 + int(m.Month) - 1
}

// Label renders the human-readable bucket name, e.g. "Mar 2024".
func (m Month) Label() string {
	return m.Start().Format("Jan 2006")
}

// Start returns the first day of the month at midnight UTC, the
// representative instant used for point-in-time evaluations.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// MonthsBetween returns the ordered bucket sequence from the month containing
// start through the month containing end, inclusive on both sides. The result
// is empty when start is after end.
func MonthsBetween(start, end time.Time) []Month {
	if start.After(end) {
		return nil
	}

	last := MonthOf(end)
	months := make([]Month, 0, last.Key()-MonthOf(start).Key()+1)
	for m := MonthOf(start); m.Key() <= last.Key(); m = m.Next() {
		months = append(months, m)
	}
	return months
}
