package model

import (
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// WeatherRecord is a single hourly METAR-style observation. ObservedAt is a
// local timestamp string (YYYY-MM-DDTHH:MM); minutes are ignored when the
// record is bucketed into the join index. Temperature is nil when the
// station did not report one.
type WeatherRecord struct {
	ObservedAt  string               `json:"time"`
	Category    types.FlightCategory `json:"flight_category"`
	Temperature *float64             `json:"temp_c"`
}

// Bucket derives the (date, hour) join key from the local timestamp.
// Returns ok=false when the timestamp is too short to carry a date and hour.
func (r WeatherRecord) Bucket() (types.Date, int, bool) {
	if len(r.ObservedAt) < 13 {
		return "", 0, false
	}
	date := types.Date(r.ObservedAt[:10])
	hour := int(r.ObservedAt[11]-'0')*10 + int(r.ObservedAt[12]-'0')
	if hour < 0 || hour > 23 {
		return "", 0, false
	}
	return date, hour, true
}
