package schedule

import (
	"fmt"
	"sort"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes from midnight.
// Valid values are 0 through 1439.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" 24-hour clock string.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	hour, okHour := parseTwoDigits(value[:2])
	minute, okMinute := parseTwoDigits(value[3:])
	if !okHour || !okMinute || hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	return TimeOfDay(hour*60 + minute), nil
}

func parseTwoDigits(value string) (int, bool) {
	if value[0] < '0' || value[0] > '9' || value[1] < '0' || value[1] > '9' {
		return 0, false
	}
	return int(value[0]-'0')*10 + int(value[1]-'0'), true
}

// IsValid returns true when the time falls within a single day.
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

// String renders the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MarshalJSON renders the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, data)
	}
	parsed, err := ParseTimeOfDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Interval is a half-open [Start, End) span of minutes within one day.
// A valid interval has Start < End; overnight spans are not supported.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewInterval builds an interval, rejecting zero or negative durations and
// out-of-day endpoints.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !start.IsValid() || !end.IsValid() {
		return Interval{}, fmt.Errorf("%w: %s-%s out of day range", ErrInvalidInterval, start, end)
	}
	if end <= start {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval parses "HH:MM" start and end clock strings into an interval.
func ParseInterval(start, end string) (Interval, error) {
	startTime, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	endTime, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(startTime, endTime)
}

// Minutes returns the interval's duration in minutes.
func (iv Interval) Minutes() int {
	return int(iv.End - iv.Start)
}

// Overlaps reports whether two half-open intervals share any point.
// Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// OverlapMinutes returns the length of the shared span, or 0.
func (iv Interval) OverlapMinutes(other Interval) int {
	start := iv.Start
	if other.Start > start {
		start = other.Start
	}
	end := iv.End
	if other.End < end {
		end = other.End
	}
	if end <= start {
		return 0
	}
	return int(end - start)
}

// Contains reports whether the time falls inside the half-open interval.
func (iv Interval) Contains(t TimeOfDay) bool {
	return t >= iv.Start && t < iv.End
}

// String renders the interval as "HH:MM-HH:MM".
func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// mergeIntervals collapses a set of intervals into non-overlapping spans,
// sorted by start. Adjacent intervals are joined.
func mergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// subtractIntervals returns the gaps left in base after removing busy spans.
// Busy spans must already be merged and sorted.
func subtractIntervals(base Interval, busy []Interval) []Interval {
	var gaps []Interval
	cursor := base.Start
	for _, iv := range busy {
		if iv.End <= base.Start || iv.Start >= base.End {
			continue
		}
		start := iv.Start
		if start < base.Start {
			start = base.Start
		}
		if start > cursor {
			gaps = append(gaps, Interval{Start: cursor, End: start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if cursor < base.End {
		gaps = append(gaps, Interval{Start: cursor, End: base.End})
	}
	return gaps
}

// clipIntervals restricts merged spans to the bounds of base.
func clipIntervals(base Interval, spans []Interval) []Interval {
	var clipped []Interval
	for _, iv := range spans {
		if !base.Overlaps(iv) {
			continue
		}
		start := iv.Start
		if start < base.Start {
			start = base.Start
		}
		end := iv.End
		if end > base.End {
			end = base.End
		}
		clipped = append(clipped, Interval{Start: start, End: end})
	}
	return clipped
}
