package domain

import "time"

// DateRange is an inclusive closed interval of local calendar dates.
// Immutable once resolved; From is never after To.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Label renders the range for the appended row: a single date when
// From equals To, otherwise "from..to".
func (r DateRange) Label() string {
	if r.From.Equal(r.To) {
		return r.From.Format(time.DateOnly)
	}
	return r.From.Format(time.DateOnly) + ".." + r.To.Format(time.DateOnly)
}

// Days returns the number of calendar days covered, inclusive. Dates are
// normalized to UTC first so DST transitions cannot skew the count.
func (r DateRange) Days() int {
	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}
