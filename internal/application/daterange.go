package application

import (
	"fmt"
	"time"

	"ordersync/internal/domain"
)

// ResolveRange turns the optional --from-date/--to-date strings into a
// validated DateRange. Both empty means {today, today}; only a from-date
// means a single-day range. A to-date without a from-date is rejected.
func ResolveRange(fromDate, toDate string) (domain.DateRange, error) {
	return resolveRange(fromDate, toDate, time.Now())
}

func resolveRange(fromDate, toDate string, today time.Time) (domain.DateRange, error) {
	if fromDate == "" && toDate == "" {
		d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		return domain.DateRange{From: d, To: d}, nil
	}

	if fromDate == "" {
		return domain.DateRange{}, &ValidationError{
			Field:   "from-date",
			Message: "from-date is required when to-date is set",
		}
	}

	from, err := parseDate("from-date", fromDate)
	if err != nil {
		return domain.DateRange{}, err
	}

	if toDate == "" {
		return domain.DateRange{From: from, To: from}, nil
	}

	to, err := parseDate("to-date", toDate)
	if err != nil {
		return domain.DateRange{}, err
	}

	if to.Before(from) {
		return domain.DateRange{}, &ValidationError{
			Field:   "to-date",
			Message: fmt.Sprintf("must not be before from-date (%s > %s)", fromDate, toDate),
		}
	}

	return domain.DateRange{From: from, To: to}, nil
}

func parseDate(field, value string) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("not a valid date (expected YYYY-MM-DD): %q", value),
		}
	}
	return d, nil
}
