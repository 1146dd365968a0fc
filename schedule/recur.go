package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"dayplan/internal/ids"
)

// Frequency selects how a recurrence pattern steps between occurrences.
type Frequency string

const (
	// FrequencyDaily repeats every Interval days.
	FrequencyDaily Frequency = "daily"

	// FrequencyWeekly repeats every Interval weeks, optionally on a set
	// of weekdays within each week.
	FrequencyWeekly Frequency = "weekly"

	// FrequencyMonthly repeats every Interval months, optionally on a
	// fixed day of the month.
	FrequencyMonthly Frequency = "monthly"

	// FrequencyCustom delegates stepping to an application-supplied
	// function. This is an extension point, not a generic rule language.
	FrequencyCustom Frequency = "custom"
)

// ValidFrequencies returns all valid frequency values.
func ValidFrequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom}
}

// IsValid returns true if the frequency is a known valid value.
func (f Frequency) IsValid() bool {
	for _, valid := range ValidFrequencies() {
		if f == valid {
			return true
		}
	}
	return false
}

// Pattern describes how a schedule item repeats.
type Pattern struct {
	// Frequency selects the stepping rule.
	Frequency Frequency `json:"frequency"`

	// Interval is the step count between periods; must be positive.
	Interval int `json:"interval"`

	// EndDate, when set, is the last day an occurrence may land on.
	EndDate *time.Time `json:"end_date,omitempty"`

	// Count, when positive, caps the total number of occurrences.
	Count int `json:"count,omitempty"`

	// DaysOfWeek restricts weekly patterns to matching weekdays.
	DaysOfWeek []time.Weekday `json:"days_of_week,omitempty"`

	// DayOfMonth restricts monthly patterns to a fixed day.
	DayOfMonth int `json:"day_of_month,omitempty"`

	// Exceptions suppresses occurrences on the listed days.
	Exceptions []time.Time `json:"exceptions,omitempty"`

	// Step is the custom stepping function; required when Frequency is
	// custom, ignored otherwise. Not serializable.
	Step func(time.Time) time.Time `json:"-"`
}

// maxPatternOccurrences caps expansion so a malformed unbounded pattern
// cannot blow up a bounded-range request.
const maxPatternOccurrences = 1000

// ExpandPattern materializes the concrete dated occurrences of a pattern
// within [from, to], both bounds inclusive by calendar day. Each occurrence
// copies the anchor item with a new day and a deterministic derived ID; the
// copies do not carry the recurrence so they expand only once.
func ExpandPattern(p Pattern, anchor ScheduleItem, from, to time.Time) ([]ScheduleItem, error) {
	if err := ValidatePattern(&p); err != nil {
		return nil, err
	}
	fromDay := DateOnly(from)
	toDay := DateOnly(to)
	if toDay.Before(fromDay) {
		return nil, fmt.Errorf("%w: range end %s before start %s",
			ErrInvalidRecurrencePattern, toDay.Format("2006-01-02"), fromDay.Format("2006-01-02"))
	}

	var days []time.Time
	var err error
	if p.Frequency == FrequencyCustom {
		days = expandCustom(p, DateOnly(anchor.Day), fromDay, toDay)
	} else {
		days, err = expandRule(p, DateOnly(anchor.Day), fromDay, toDay)
		if err != nil {
			return nil, err
		}
	}

	excluded := make(map[time.Time]bool, len(p.Exceptions))
	for _, ex := range p.Exceptions {
		excluded[DateOnly(ex)] = true
	}

	occurrences := make([]ScheduleItem, 0, len(days))
	for _, day := range days {
		if excluded[day] {
			continue
		}
		item := anchor
		item.Day = day
		item.ID = ids.Occurrence(anchor.ID, day)
		item.Recurrence = nil
		occurrences = append(occurrences, item)
	}
	return occurrences, nil
}

func expandRule(p Pattern, anchor, from, to time.Time) ([]time.Time, error) {
	opt := rrule.ROption{
		Interval: p.Interval,
		Dtstart:  anchor,
	}
	switch p.Frequency {
	case FrequencyDaily:
		opt.Freq = rrule.DAILY
	case FrequencyWeekly:
		opt.Freq = rrule.WEEKLY
		for _, wd := range p.DaysOfWeek {
			opt.Byweekday = append(opt.Byweekday, rruleWeekday(wd))
		}
	case FrequencyMonthly:
		opt.Freq = rrule.MONTHLY
		if p.DayOfMonth > 0 {
			opt.Bymonthday = []int{p.DayOfMonth}
		}
	}
	if p.Count > 0 {
		opt.Count = p.Count
	}
	if p.EndDate != nil {
		opt.Until = DateOnly(*p.EndDate)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrencePattern, err)
	}

	days := rule.Between(from, to, true)
	if len(days) > maxPatternOccurrences {
		days = days[:maxPatternOccurrences]
	}
	return days, nil
}

func expandCustom(p Pattern, anchor, from, to time.Time) []time.Time {
	var days []time.Time
	count := 0
	for day := anchor; !day.After(to); day = DateOnly(p.Step(day)) {
		count++
		if count > maxPatternOccurrences {
			break
		}
		if p.Count > 0 && count > p.Count {
			break
		}
		if p.EndDate != nil && day.After(DateOnly(*p.EndDate)) {
			break
		}
		if !day.Before(from) {
			days = append(days, day)
		}
	}
	return days
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
