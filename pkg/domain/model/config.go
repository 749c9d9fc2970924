package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// TemperatureBand maps a temperature ceiling to a display color. A nil MaxC
// marks the open-ended warmest band, which must be the last entry.
type TemperatureBand struct {
	MaxC  *float64 `yaml:"max_c" json:"max_c"`
	Color string   `yaml:"color" json:"color"`
}

// OverlayConfig is the explicit engine configuration: the observed date
// range, color assignments, the temperature band table and the default
// render scale. It is loaded once at startup and treated as immutable.
type OverlayConfig struct {
	RangeStart types.Date `yaml:"range_start"`
	RangeEnd   types.Date `yaml:"range_end"`

	PxPerHour float64 `yaml:"px_per_hour"`

	TailColors       map[types.TailNumber]string     `yaml:"tail_colors"`
	FallbackColor    string                          `yaml:"fallback_color"`
	CategoryColors   map[types.FlightCategory]string `yaml:"category_colors"`
	TemperatureBands []TemperatureBand               `yaml:"temperature_bands"`
}

// DefaultTemperatureBands returns the standard six-breakpoint band table
func DefaultTemperatureBands() []TemperatureBand {
	ceil := func(v float64) *float64 { return &v }
	return []TemperatureBand{
		{MaxC: ceil(-30), Color: "#08306b"},
		{MaxC: ceil(-10), Color: "#2171b5"},
		{MaxC: ceil(0), Color: "#6baed6"},
		{MaxC: ceil(10), Color: "#c6dbef"},
		{MaxC: ceil(20), Color: "#fdd49e"},
		{MaxC: ceil(30), Color: "#fc8d59"},
		{MaxC: nil, Color: "#d7301f"},
	}
}

// Validate validates the configuration
func (c *OverlayConfig) Validate() error {
	if _, err := time.Parse(types.DateLayout, c.RangeStart.String()); err != nil {
		return goerr.Wrap(err, "invalid range start date", goerr.V("date", c.RangeStart))
	}
	if _, err := time.Parse(types.DateLayout, c.RangeEnd.String()); err != nil {
		return goerr.Wrap(err, "invalid range end date", goerr.V("date", c.RangeEnd))
	}
	if c.RangeStart.Time().After(c.RangeEnd.Time()) {
		return goerr.New("range start is after range end",
			goerr.V("start", c.RangeStart), goerr.V("end", c.RangeEnd))
	}
	if c.PxPerHour <= 0 {
		return goerr.New("pixels per hour must be positive", goerr.V("px_per_hour", c.PxPerHour))
	}

	for cat := range c.CategoryColors {
		if !cat.IsValid() {
			return goerr.New("unknown flight category in color table", goerr.V("category", cat))
		}
	}
	for _, cat := range types.AllFlightCategories() {
		if c.CategoryColors[cat] == "" {
			return goerr.New("missing color for flight category", goerr.V("category", cat))
		}
	}

	if len(c.TemperatureBands) < 2 {
		return goerr.New("at least two temperature bands are required",
			goerr.V("bands", len(c.TemperatureBands)))
	}
	for i, band := range c.TemperatureBands {
		if band.Color == "" {
			return goerr.New("temperature band color is required", goerr.V("index", i))
		}
		last := i == len(c.TemperatureBands)-1
		if last {
			if band.MaxC != nil {
				return goerr.New("last temperature band must be open-ended")
			}
			continue
		}
		if band.MaxC == nil {
			return goerr.New("only the last temperature band may be open-ended",
				goerr.V("index", i))
		}
		if i > 0 && *band.MaxC <= *c.TemperatureBands[i-1].MaxC {
			return goerr.New("temperature breakpoints must be strictly increasing",
				goerr.V("index", i), goerr.V("max_c", *band.MaxC))
		}
	}

	return nil
}

// Range returns the configured date range bounds
func (c *OverlayConfig) Range() (time.Time, time.Time) {
	return c.RangeStart.Time(), c.RangeEnd.Time()
}

// TailColor returns the configured color for a tail number, falling back to
// the fallback color for unassigned aircraft
func (c *OverlayConfig) TailColor(tail types.TailNumber) string {
	if color, ok := c.TailColors[tail]; ok {
		return color
	}
	return c.FallbackColor
}

// CategoryColor returns the configured color for a flight category
func (c *OverlayConfig) CategoryColor(cat types.FlightCategory) string {
	return c.CategoryColors[cat]
}

// TemperatureBandIndex maps a temperature to its band: the first band whose
// ceiling is at or above the value, else the open-ended warmest band.
func (c *OverlayConfig) TemperatureBandIndex(tempC float64) int {
	for i, band := range c.TemperatureBands {
		if band.MaxC != nil && tempC <= *band.MaxC {
			return i
		}
	}
	return len(c.TemperatureBands) - 1
}

// TemperatureColor returns the band color for a temperature
func (c *OverlayConfig) TemperatureColor(tempC float64) string {
	return c.TemperatureBands[c.TemperatureBandIndex(tempC)].Color
}
