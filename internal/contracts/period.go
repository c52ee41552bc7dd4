package contracts

import (
	"fmt"
	"time"
)

// Keys of the two comparison periods inside per-aspect result maps
const (
	Period1 = "period_1"
	Period2 = "period_2"
)

const dateLayout = "2006-01-02"

// PeriodWindow is an inclusive calendar date range. Exactly two windows
// are supplied per analysis request; the core only requires each to be
// independently well-formed, not disjoint.
type PeriodWindow struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// Validate checks both dates parse and start does not follow end
func (p PeriodWindow) Validate() error {
	from, err := time.Parse(dateLayout, p.DateFrom)
	if err != nil {
		return fmt.Errorf("invalid date_from %q: expected YYYY-MM-DD", p.DateFrom)
	}

	to, err := time.Parse(dateLayout, p.DateTo)
	if err != nil {
		return fmt.Errorf("invalid date_to %q: expected YYYY-MM-DD", p.DateTo)
	}

	if from.After(to) {
		return fmt.Errorf("date_from %s is after date_to %s", p.DateFrom, p.DateTo)
	}

	return nil
}

// Label renders the window for narration and logs
func (p PeriodWindow) Label() string {
	return fmt.Sprintf("%s - %s", p.DateFrom, p.DateTo)
}
