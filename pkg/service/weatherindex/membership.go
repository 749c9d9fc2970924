package weatherindex

import (
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// MatchesCategory reports whether any hour touched by the interval has an
// indexed observation in the target category. The interval is anchored to
// date; hours past 23 roll into the following calendar date. This bridges
// the minute-resolution activity data against the hour-resolution weather
// buckets.
func (x *Index) MatchesCategory(date types.Date, iv model.Interval, target types.FlightCategory) bool {
	found := false
	x.scanHours(date, iv, func(record model.WeatherRecord) bool {
		if record.Category == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// MatchesAny reports whether any enabled category co-occurs with the
// interval. An empty enabled set never matches.
func (x *Index) MatchesAny(date types.Date, iv model.Interval, enabled map[types.FlightCategory]bool) bool {
	found := false
	x.scanHours(date, iv, func(record model.WeatherRecord) bool {
		if enabled[record.Category] {
			found = true
			return false
		}
		return true
	})
	return found
}

// scanHours walks every hour bucket touched by the half-open minute bounds
// [startMin, endMin) of the interval, rolling into the next calendar date
// once the hour passes 23, and calls fn for each indexed observation until
// fn returns false. A trailing partial hour counts as touched.
func (x *Index) scanHours(date types.Date, iv model.Interval, fn func(model.WeatherRecord) bool) {
	startMin, endMin := iv.MinuteBounds()
	next := date.AddDays(1)

	for hour := startMin / 60; hour <= (endMin-1)/60; hour++ {
		lookupDate := date
		h := hour
		if h > 23 {
			lookupDate = next
			h -= 24
		}
		if record, ok := x.Lookup(lookupDate, h); ok {
			if !fn(record) {
				return
			}
		}
	}
}
