// Package schedulefile decodes TOML day files into schedule values.
//
// A day file carries the working hours, breaks, and items for one day,
// using "HH:MM" clock strings and "YYYY-MM-DD" dates. Decoding reuses the
// engine's own parsing and validation; the engine API itself stays free of
// file handling.
package schedulefile

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"dayplan/internal/ids"
	"dayplan/schedule"
)

// File is the TOML shape of a day file.
type File struct {
	Date  string     `toml:"date"`
	Hours HoursBlock `toml:"hours"`
	Items []ItemRow  `toml:"items"`
}

// HoursBlock is the working-hours section.
type HoursBlock struct {
	Start  string     `toml:"start"`
	End    string     `toml:"end"`
	Breaks []BreakRow `toml:"breaks"`
}

// BreakRow is one break entry.
type BreakRow struct {
	Kind  string `toml:"kind"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// ItemRow is one schedule item entry.
type ItemRow struct {
	ID               string         `toml:"id"`
	Title            string         `toml:"title"`
	Type             string         `toml:"type"`
	Status           string         `toml:"status"`
	Priority         string         `toml:"priority"`
	Start            string         `toml:"start"`
	End              string         `toml:"end"`
	Locked           bool           `toml:"locked"`
	EstimatedMinutes int            `toml:"estimated-minutes"`
	ActualMinutes    int            `toml:"actual-minutes"`
	CompletionRate   int            `toml:"completion-rate"`
	Due              string         `toml:"due"`
	Recurrence       *RecurrenceRow `toml:"recurrence"`
}

// RecurrenceRow is the recurrence section of an item.
type RecurrenceRow struct {
	Frequency  string   `toml:"frequency"`
	Interval   int      `toml:"interval"`
	Count      int      `toml:"count"`
	EndDate    string   `toml:"end-date"`
	DaysOfWeek []string `toml:"days-of-week"`
	DayOfMonth int      `toml:"day-of-month"`
	Exceptions []string `toml:"exceptions"`
}

// Load reads and decodes a day file, returning a validated schedule in
// canonical item order.
func Load(path string) (schedule.DailySchedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schedule.DailySchedule{}, fmt.Errorf("read schedule file %s: %w", path, err)
	}

	var file File
	if _, err := toml.Decode(string(data), &file); err != nil {
		return schedule.DailySchedule{}, fmt.Errorf("parse schedule file %s: %w", path, err)
	}

	day, err := Decode(file)
	if err != nil {
		return schedule.DailySchedule{}, fmt.Errorf("schedule file %s: %w", path, err)
	}
	return day, nil
}

// Decode converts a parsed file into a validated DailySchedule.
func Decode(file File) (schedule.DailySchedule, error) {
	date, err := parseDate(file.Date)
	if err != nil {
		return schedule.DailySchedule{}, err
	}

	hours, err := decodeHours(file.Hours)
	if err != nil {
		return schedule.DailySchedule{}, err
	}

	day := schedule.DailySchedule{Date: date, Hours: hours}
	for i, row := range file.Items {
		item, err := decodeItem(row, date, i)
		if err != nil {
			return schedule.DailySchedule{}, err
		}
		day.Items = append(day.Items, item)
	}

	day = day.Normalize()
	if err := schedule.ValidateSchedule(&day); err != nil {
		return schedule.DailySchedule{}, err
	}
	return day, nil
}

func decodeHours(block HoursBlock) (schedule.WorkingHours, error) {
	interval, err := schedule.ParseInterval(block.Start, block.End)
	if err != nil {
		return schedule.WorkingHours{}, fmt.Errorf("working hours: %w", err)
	}
	hours := schedule.WorkingHours{Interval: interval}
	for _, row := range block.Breaks {
		breakInterval, err := schedule.ParseInterval(row.Start, row.End)
		if err != nil {
			return schedule.WorkingHours{}, fmt.Errorf("break %s-%s: %w", row.Start, row.End, err)
		}
		kind := schedule.BreakKind(row.Kind)
		if row.Kind == "" {
			kind = schedule.BreakOther
		}
		hours.Breaks = append(hours.Breaks, schedule.BreakTime{Kind: kind, Interval: breakInterval})
	}
	return hours, nil
}

func decodeItem(row ItemRow, date time.Time, index int) (schedule.ScheduleItem, error) {
	interval, err := schedule.ParseInterval(row.Start, row.End)
	if err != nil {
		return schedule.ScheduleItem{}, fmt.Errorf("item %q: %w", row.Title, err)
	}

	item := schedule.ScheduleItem{
		ID:               row.ID,
		Title:            row.Title,
		Day:              date,
		Type:             schedule.ItemType(row.Type),
		Status:           schedule.Status(row.Status),
		Priority:         schedule.Priority(row.Priority),
		Interval:         interval,
		Locked:           row.Locked,
		EstimatedMinutes: row.EstimatedMinutes,
		ActualMinutes:    row.ActualMinutes,
		CompletionRate:   row.CompletionRate,
		// File order stands in for creation order when sorting ties.
		CreatedAt: date.Add(time.Duration(index) * time.Second),
	}
	if item.ID == "" {
		item.ID = ids.Generate(fmt.Sprintf("%s#%d", row.Title, index), ids.DefaultLength)
	}
	if item.Type == "" {
		item.Type = schedule.TypeTask
	}
	if item.Status == "" {
		item.Status = schedule.StatusPlanned
	}
	if item.Priority == "" {
		item.Priority = schedule.PriorityMedium
	}
	if row.Due != "" {
		due, err := parseDate(row.Due)
		if err != nil {
			return schedule.ScheduleItem{}, fmt.Errorf("item %q due date: %w", row.Title, err)
		}
		item.DueDate = &due
	}
	if row.Recurrence != nil {
		pattern, err := decodeRecurrence(*row.Recurrence)
		if err != nil {
			return schedule.ScheduleItem{}, fmt.Errorf("item %q: %w", row.Title, err)
		}
		item.Recurrence = &pattern
	}
	return item, nil
}

func decodeRecurrence(row RecurrenceRow) (schedule.Pattern, error) {
	pattern := schedule.Pattern{
		Frequency:  schedule.Frequency(row.Frequency),
		Interval:   row.Interval,
		Count:      row.Count,
		DayOfMonth: row.DayOfMonth,
	}
	if pattern.Interval == 0 {
		pattern.Interval = 1
	}
	if row.EndDate != "" {
		end, err := parseDate(row.EndDate)
		if err != nil {
			return schedule.Pattern{}, fmt.Errorf("recurrence end date: %w", err)
		}
		pattern.EndDate = &end
	}
	for _, name := range row.DaysOfWeek {
		weekday, err := parseWeekday(name)
		if err != nil {
			return schedule.Pattern{}, err
		}
		pattern.DaysOfWeek = append(pattern.DaysOfWeek, weekday)
	}
	for _, value := range row.Exceptions {
		day, err := parseDate(value)
		if err != nil {
			return schedule.Pattern{}, fmt.Errorf("recurrence exception: %w", err)
		}
		pattern.Exceptions = append(pattern.Exceptions, day)
	}
	return pattern, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch name {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid weekday %q", name)
	}
}
