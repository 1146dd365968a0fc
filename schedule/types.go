// Package schedule implements a pure conflict, statistics, and suggestion
// engine for a single day's time-boxed schedule.
//
// The engine owns no storage and performs no I/O: callers pass in a
// DailySchedule value and receive conflicts, statistics, or placement
// suggestions back. Every entry point is a synchronous function over its
// inputs, safe for concurrent use.
//
// The public API mirrors the operations a schedule application needs:
//   - DetectConflicts for overlap/overbooked/deadline detection
//   - ComputeStatistics for utilization and completion figures
//   - GenerateSuggestions for ranked free-slot placement
//   - ExpandPattern for materializing recurring items
package schedule

import (
	"sort"
	"time"
)

// ItemType represents the category of a schedule item.
type ItemType string

const (
	// TypeTask is a scheduled unit of work (default).
	TypeTask ItemType = "task"

	// TypeSubtask is a scheduled piece of a larger task.
	TypeSubtask ItemType = "subtask"

	// TypeMeeting is a meeting or call.
	TypeMeeting ItemType = "meeting"

	// TypeBreak is a rest block scheduled as an item.
	TypeBreak ItemType = "break"

	// TypePersonal is non-work personal time.
	TypePersonal ItemType = "personal"

	// TypeBlocked is time reserved against interruptions.
	TypeBlocked ItemType = "blocked"

	// TypeFocus is deep-work focus time.
	TypeFocus ItemType = "focus"

	// TypeReview is review or retrospective time.
	TypeReview ItemType = "review"
)

// ValidItemTypes returns all valid item type values.
func ValidItemTypes() []ItemType {
	return []ItemType{TypeTask, TypeSubtask, TypeMeeting, TypeBreak, TypePersonal, TypeBlocked, TypeFocus, TypeReview}
}

// IsValid returns true if the item type is a known valid value.
func (t ItemType) IsValid() bool {
	for _, valid := range ValidItemTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// CountsAsTask returns true for item types that count toward task totals.
func (t ItemType) CountsAsTask() bool {
	return t == TypeTask || t == TypeSubtask
}

// IsProductive returns true for item types that count toward productive time.
func (t ItemType) IsProductive() bool {
	switch t {
	case TypeTask, TypeSubtask, TypeFocus, TypeReview:
		return true
	default:
		return false
	}
}

// Status represents the lifecycle state of a schedule item.
type Status string

const (
	// StatusPlanned indicates the item is scheduled but not started.
	StatusPlanned Status = "planned"

	// StatusInProgress indicates the item is being worked on.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates the item is done.
	StatusCompleted Status = "completed"

	// StatusPostponed indicates the item was pushed to another day.
	StatusPostponed Status = "postponed"

	// StatusCancelled indicates the item was abandoned.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPlanned, StatusInProgress, StatusCompleted, StatusPostponed, StatusCancelled}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance of a schedule item.
type Priority string

const (
	// PriorityCritical is the highest importance level.
	PriorityCritical Priority = "critical"

	// PriorityUrgent is work that cannot slip.
	PriorityUrgent Priority = "urgent"

	// PriorityHigh is important work.
	PriorityHigh Priority = "high"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityLow is work that can wait.
	PriorityLow Priority = "low"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityCritical, PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority; lower ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	default:
		return 5
	}
}

// IsUrgent returns true for priorities that escalate conflict severity.
func (p Priority) IsUrgent() bool {
	return p == PriorityCritical || p == PriorityUrgent
}

// BreakKind tags a working-hours break interval.
type BreakKind string

const (
	// BreakLunch is the midday meal break.
	BreakLunch BreakKind = "lunch"

	// BreakShort is a short rest break.
	BreakShort BreakKind = "short"

	// BreakOther is any other scheduled break.
	BreakOther BreakKind = "other"
)

// ValidBreakKinds returns all valid break kind values.
func ValidBreakKinds() []BreakKind {
	return []BreakKind{BreakLunch, BreakShort, BreakOther}
}

// IsValid returns true if the break kind is a known valid value.
func (k BreakKind) IsValid() bool {
	for _, valid := range ValidBreakKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// BreakTime is a sub-interval of the working day excluded from available
// capacity. Breaks are not conflicts.
type BreakTime struct {
	Kind     BreakKind `json:"kind"`
	Interval Interval  `json:"interval"`
}

// WorkingHours bounds the productive day.
type WorkingHours struct {
	Interval Interval    `json:"interval"`
	Breaks   []BreakTime `json:"breaks,omitempty"`
}

// NominalMinutes returns the length of the working span, breaks included.
func (h WorkingHours) NominalMinutes() int {
	return h.Interval.Minutes()
}

// AvailableMinutes returns the working span minus break time. Breaks are
// merged and clipped to the working interval before subtraction.
func (h WorkingHours) AvailableMinutes() int {
	breaks := make([]Interval, 0, len(h.Breaks))
	for _, b := range h.Breaks {
		breaks = append(breaks, b.Interval)
	}
	available := h.NominalMinutes()
	for _, clipped := range clipIntervals(h.Interval, mergeIntervals(breaks)) {
		available -= clipped.Minutes()
	}
	return available
}

// ScheduleItem is a single time-boxed entry in a day's schedule.
type ScheduleItem struct {
	// ID uniquely identifies the item.
	ID string `json:"id"`

	// Title is the human-readable name.
	Title string `json:"title"`

	// Day is the calendar day the item is placed on.
	Day time.Time `json:"day"`

	// Type categorizes the item.
	Type ItemType `json:"type"`

	// Status is the lifecycle state.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Interval is the scheduled time box.
	Interval Interval `json:"interval"`

	// Locked items are never moved by suggestion logic. They remain
	// editable by direct user action.
	Locked bool `json:"locked,omitempty"`

	// Recurrence, when set, describes how the item repeats.
	Recurrence *Pattern `json:"recurrence,omitempty"`

	// EstimatedMinutes is the planned effort, if known.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`

	// ActualMinutes is the recorded effort, if known.
	ActualMinutes int `json:"actual_minutes,omitempty"`

	// CompletionRate is the progress percentage, 0-100.
	CompletionRate int `json:"completion_rate,omitempty"`

	// DueDate, when set, is the day the work must be finished by.
	DueDate *time.Time `json:"due_date,omitempty"`

	// CreatedAt breaks start-time ties when ordering items.
	CreatedAt time.Time `json:"created_at"`
}

// DailySchedule is one day's working hours plus its schedule items.
//
// Items are kept sorted by start time (ties broken by creation time, then
// ID); the sweep algorithms in this package depend on that ordering. Use
// Normalize after constructing or mutating a schedule by hand.
type DailySchedule struct {
	Date  time.Time      `json:"date"`
	Hours WorkingHours   `json:"hours"`
	Items []ScheduleItem `json:"items"`
}

// Normalize returns a copy of the schedule with items in canonical order.
// The receiver is not modified.
func (s DailySchedule) Normalize() DailySchedule {
	items := make([]ScheduleItem, len(s.Items))
	copy(items, s.Items)
	sortItems(items)
	s.Items = items
	return s
}

func sortItems(items []ScheduleItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Interval.Start != items[j].Interval.Start {
			return items[i].Interval.Start < items[j].Interval.Start
		}
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

// DateOnly truncates a time to midnight UTC. Schedule days and due dates
// compare by calendar day, never by clock time.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
