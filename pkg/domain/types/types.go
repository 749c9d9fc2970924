package types

import (
	"time"
)

// DateLayout is the ISO calendar date layout used for all date keys
const DateLayout = "2006-01-02"

// TailNumber represents an aircraft registration identifier
type TailNumber string

// String returns the string representation
func (t TailNumber) String() string {
	return string(t)
}

// Date represents a calendar date as an ISO YYYY-MM-DD string
type Date string

// String returns the string representation
func (d Date) String() string {
	return string(d)
}

// NewDate creates a Date from a time.Time, dropping the time of day
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Time returns the date as a time.Time at midnight UTC.
// Malformed dates yield the zero time.
func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

// AddDays returns the date shifted by n calendar days
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}
