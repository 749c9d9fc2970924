package model

import (
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// FilterState is the presentation-owned visibility snapshot consumed by the
// overlay engine. The engine reads it per evaluation and never mutates it.
// A tail or category absent from its map is treated as switched off.
type FilterState struct {
	Tails      map[types.TailNumber]bool     `json:"tails"`
	Categories map[types.FlightCategory]bool `json:"categories"`

	ShowCategories  bool `json:"show_categories"`
	ShowTemperature bool `json:"show_temperature"`

	PxPerHour float64 `json:"px_per_hour"`
}

// DefaultFilter returns a filter with every tail and category enabled, both
// layers visible, at the configured default scale
func DefaultFilter(cfg *OverlayConfig, tails []types.TailNumber) FilterState {
	f := FilterState{
		Tails:           make(map[types.TailNumber]bool, len(tails)),
		Categories:      make(map[types.FlightCategory]bool, 4),
		ShowCategories:  true,
		ShowTemperature: true,
		PxPerHour:       cfg.PxPerHour,
	}
	for _, tail := range tails {
		f.Tails[tail] = true
	}
	for _, cat := range types.AllFlightCategories() {
		f.Categories[cat] = true
	}
	return f
}

// TailVisible reports whether the tail is switched on
func (f FilterState) TailVisible(tail types.TailNumber) bool {
	return f.Tails[tail]
}

// CategoryEnabled reports whether the category is included
func (f FilterState) CategoryEnabled(cat types.FlightCategory) bool {
	return f.Categories[cat]
}

// EnabledCategories returns the included categories in restriction order
func (f FilterState) EnabledCategories() []types.FlightCategory {
	var enabled []types.FlightCategory
	for _, cat := range types.AllFlightCategories() {
		if f.Categories[cat] {
			enabled = append(enabled, cat)
		}
	}
	return enabled
}
