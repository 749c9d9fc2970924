package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// FlightCategory represents a METAR ceiling/visibility classification
type FlightCategory string

const (
	CategoryLIFR FlightCategory = "LIFR"
	CategoryIFR  FlightCategory = "IFR"
	CategoryMVFR FlightCategory = "MVFR"
	CategoryVFR  FlightCategory = "VFR"
)

// AllFlightCategories returns the closed set of categories, most restrictive first
func AllFlightCategories() []FlightCategory {
	return []FlightCategory{CategoryLIFR, CategoryIFR, CategoryMVFR, CategoryVFR}
}

// String returns the string representation
func (c FlightCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one of the closed set
func (c FlightCategory) IsValid() bool {
	switch c {
	case CategoryLIFR, CategoryIFR, CategoryMVFR, CategoryVFR:
		return true
	default:
		return false
	}
}

// Rank returns the restriction order of the category. LIFR is the most
// restrictive (0), VFR the least (3). Unknown categories return -1.
func (c FlightCategory) Rank() int {
	switch c {
	case CategoryLIFR:
		return 0
	case CategoryIFR:
		return 1
	case CategoryMVFR:
		return 2
	case CategoryVFR:
		return 3
	default:
		return -1
	}
}

// ParseFlightCategory converts a source string into a FlightCategory
func ParseFlightCategory(s string) (FlightCategory, error) {
	c := FlightCategory(s)
	if !c.IsValid() {
		return "", goerr.New("unknown flight category", goerr.V("category", s))
	}
	return c, nil
}
