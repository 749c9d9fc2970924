package model

import (
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// ActivitySegment is a renderable aircraft usage block on a day column
type ActivitySegment struct {
	Tail            types.TailNumber `json:"tail"`
	Start           ClockCode        `json:"start"`
	End             ClockCode        `json:"end"`
	OffsetPx        float64          `json:"offset_px"`
	WidthPx         float64          `json:"width_px"`
	Color           string           `json:"color"`
	CrossesMidnight bool             `json:"crosses_midnight"`
}

// WeatherSegment is a renderable one-hour flight category block
type WeatherSegment struct {
	Hour     int                  `json:"hour"`
	Category types.FlightCategory `json:"category"`
	OffsetPx float64              `json:"offset_px"`
	WidthPx  float64              `json:"width_px"`
	Color    string               `json:"color"`
}

// TemperatureSegment is a renderable one-hour temperature band block
type TemperatureSegment struct {
	Hour     int     `json:"hour"`
	TempC    float64 `json:"temp_c"`
	Band     int     `json:"band"`
	OffsetPx float64 `json:"offset_px"`
	WidthPx  float64 `json:"width_px"`
	Color    string  `json:"color"`
}

// DayOverlay is the full set of renderable segments for one day column
type DayOverlay struct {
	Date        types.Date           `json:"date"`
	Activities  []ActivitySegment    `json:"activities"`
	Weather     []WeatherSegment     `json:"weather"`
	Temperature []TemperatureSegment `json:"temperature"`
}
