package model

import (
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// ActivityRecord holds the usage intervals of a single aircraft, keyed by
// calendar date. Records are loaded once at startup and never mutated.
type ActivityRecord struct {
	Tail types.TailNumber          `json:"tail"`
	Days map[types.Date][]Interval `json:"days"`
}

// IntervalsOn returns the ordered intervals recorded for the given date.
// A date with no activity returns nil.
func (r *ActivityRecord) IntervalsOn(date types.Date) []Interval {
	if r == nil || r.Days == nil {
		return nil
	}
	return r.Days[date]
}

// Dates returns the number of dates with recorded activity
func (r *ActivityRecord) Dates() int {
	if r == nil {
		return 0
	}
	return len(r.Days)
}
