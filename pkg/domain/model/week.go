package model

import (
	"time"

	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// WeekSpan is exactly seven contiguous calendar dates, Monday through Sunday
type WeekSpan struct {
	Days [7]types.Date `json:"days"`
}

// Monday returns the first date of the week
func (w WeekSpan) Monday() types.Date {
	return w.Days[0]
}

// Sunday returns the last date of the week
func (w WeekSpan) Sunday() types.Date {
	return w.Days[6]
}

// Contains reports whether the date falls inside the week
func (w WeekSpan) Contains(d types.Date) bool {
	for _, day := range w.Days {
		if day == d {
			return true
		}
	}
	return false
}

// BuildWeeks produces the ordered sequence of week spans covering the range
// from start to end. The first week is back-filled to the Monday on or
// before start; the final week is always fully materialized even when its
// tail runs past end. A start after end yields an empty sequence.
func BuildWeeks(start, end time.Time) []WeekSpan {
	start = midnight(start)
	end = midnight(end)
	if start.After(end) {
		return nil
	}

	// Monday on or before start; Go weekdays are Sunday=0
	offset := (int(start.Weekday()) + 6) % 7
	cursor := start.AddDate(0, 0, -offset)

	var weeks []WeekSpan
	for !cursor.After(end) {
		var w WeekSpan
		for i := 0; i < 7; i++ {
			w.Days[i] = types.NewDate(cursor.AddDate(0, 0, i))
		}
		weeks = append(weeks, w)
		cursor = cursor.AddDate(0, 0, 7)
	}
	return weeks
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
