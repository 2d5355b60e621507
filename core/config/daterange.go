package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

// ErrInvalidDateRange is wrapped for malformed or inverted --from/--to values.
var ErrInvalidDateRange = errors.New("invalid date range")

// inputLayout reads MM/DD/YYYY with or without zero padding.
const inputLayout = "1/2/2006"

// DateRange is an inclusive filter on MM/DD/YYYY dates. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses the --from and --to values. Either may be empty.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	var err error
	if r.From, err = parseBound("from", from); err != nil {
		return DateRange{}, err
	}
	if r.To, err = parseBound("to", to); err != nil {
		return DateRange{}, err
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return DateRange{}, NewConfigError("from date is after to date",
			fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, from, to))
	}
	return r, nil
}

func parseBound(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(inputLayout, value)
	if err != nil {
		return time.Time{}, NewConfigError(fmt.Sprintf("invalid %s date %q, expected MM/DD/YYYY", name, value),
			fmt.Errorf("%w: %v", ErrInvalidDateRange, err))
	}
	return t, nil
}

// Active reports whether any bound is set.
func (r DateRange) Active() bool {
	return !r.From.IsZero() || !r.To.IsZero()
}

// Keep reports whether an item dated date passes the filter. Dates that are
// N/A or not MM/DD/YYYY are kept; usable is false for those.
func (r DateRange) Keep(date string) (keep, usable bool) {
	if !r.Active() {
		return true, true
	}
	if normalize.IsNA(date) {
		return true, false
	}
	t, err := time.Parse(inputLayout, date)
	if err != nil {
		return true, false
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false, true
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false, true
	}
	return true, true
}
