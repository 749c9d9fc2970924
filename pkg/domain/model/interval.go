package model

// ClockCode is a 4-digit 24-hour clock string (HHMM), e.g. "0930" or "2345".
// Codes are trusted from upstream data and are not validated here.
type ClockCode string

// String returns the string representation
func (c ClockCode) String() string {
	return string(c)
}

// Hours returns the code as a fractional hour of day
func (c ClockCode) Hours() float64 {
	return float64(c.MinuteOfDay()) / 60.0
}

// MinuteOfDay returns the code as minutes since midnight
func (c ClockCode) MinuteOfDay() int {
	if len(c) < 4 {
		return 0
	}
	return digits(c[0:2])*60 + digits(c[2:4])
}

func digits(s ClockCode) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// Interval is a contiguous span of aircraft usage on a single calendar day,
// anchored to that day even when it continues past midnight.
type Interval struct {
	Start ClockCode `json:"start"`
	End   ClockCode `json:"end"`
}

// NewInterval creates an interval from start and end clock codes
func NewInterval(start, end ClockCode) Interval {
	return Interval{Start: start, End: end}
}

// Hours returns the half-open fractional-hour bounds [start, end) of the
// interval. When the end clock value is at or before the start the interval
// wraps into the next day and the end is shifted by 24 hours, so the result
// lies in [0, 48). An interval with equal endpoints is read as a full 24h
// wrap rather than an empty span.
func (iv Interval) Hours() (float64, float64) {
	start := iv.Start.Hours()
	end := iv.End.Hours()
	if end <= start {
		end += 24
	}
	return start, end
}

// MinuteBounds returns the half-open minute-of-day bounds [start, end),
// applying the same cross-midnight rule as Hours with a 1440 minute shift.
func (iv Interval) MinuteBounds() (int, int) {
	start := iv.Start.MinuteOfDay()
	end := iv.End.MinuteOfDay()
	if end <= start {
		end += 1440
	}
	return start, end
}

// CrossesMidnight reports whether the interval continues into the next day
func (iv Interval) CrossesMidnight() bool {
	return iv.End.Hours() <= iv.Start.Hours()
}

// OffsetPx returns the pixel offset of the interval at the given
// pixels-per-hour scale
func (iv Interval) OffsetPx(scale float64) float64 {
	start, _ := iv.Hours()
	return start * scale
}

// WidthPx returns the pixel width of the interval at the given
// pixels-per-hour scale. Width is always positive.
func (iv Interval) WidthPx(scale float64) float64 {
	start, end := iv.Hours()
	return (end - start) * scale
}
