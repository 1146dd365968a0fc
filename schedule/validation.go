package schedule

import (
	"errors"
	"fmt"

	"dayplan/internal/validation"
)

var (
	// ErrInvalidTimeFormat is returned when a clock string is not HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidInterval is returned when an interval has zero or negative duration.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidRecurrencePattern is returned when a recurrence pattern cannot be expanded.
	ErrInvalidRecurrencePattern = errors.New("invalid recurrence pattern")

	// ErrEmptyItemID is returned when a schedule item has no ID.
	ErrEmptyItemID = errors.New("item ID cannot be empty")

	// ErrInvalidItemType is returned when an item type is unknown.
	ErrInvalidItemType = errors.New("invalid item type")

	// ErrInvalidStatus is returned when a status is unknown.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when a priority is unknown.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidBreakKind is returned when a break kind is unknown.
	ErrInvalidBreakKind = errors.New("invalid break kind")

	// ErrInvalidCompletionRate is returned when a completion rate is outside 0-100.
	ErrInvalidCompletionRate = errors.New("completion rate must be between 0 and 100")
)

// ValidateItem checks a schedule item's fields. All failures are caller
// errors; the engine never repairs input.
func ValidateItem(item *ScheduleItem) error {
	if item.ID == "" {
		return ErrEmptyItemID
	}
	if !item.Type.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidItemType, item.Type, validation.FormatValidValues(ValidItemTypes()))
	}
	if !item.Status.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatus, item.Status, validation.FormatValidValues(ValidStatuses()))
	}
	if !item.Priority.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPriority, item.Priority, validation.FormatValidValues(ValidPriorities()))
	}
	if _, err := NewInterval(item.Interval.Start, item.Interval.End); err != nil {
		return err
	}
	if item.CompletionRate < 0 || item.CompletionRate > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidCompletionRate, item.CompletionRate)
	}
	return nil
}

// ValidateWorkingHours checks the working interval and its breaks.
func ValidateWorkingHours(h *WorkingHours) error {
	if _, err := NewInterval(h.Interval.Start, h.Interval.End); err != nil {
		return err
	}
	for _, b := range h.Breaks {
		if !b.Kind.IsValid() {
			return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidBreakKind, b.Kind, validation.FormatValidValues(ValidBreakKinds()))
		}
		if _, err := NewInterval(b.Interval.Start, b.Interval.End); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSchedule checks a whole day: working hours plus every item.
// The first malformed item fails the call; the caller decides whether to
// skip, fix, or abort.
func ValidateSchedule(s *DailySchedule) error {
	if err := ValidateWorkingHours(&s.Hours); err != nil {
		return err
	}
	for i := range s.Items {
		if err := ValidateItem(&s.Items[i]); err != nil {
			return fmt.Errorf("item %q: %w", s.Items[i].ID, err)
		}
	}
	return nil
}

// ValidatePattern checks a recurrence pattern without expanding it.
func ValidatePattern(p *Pattern) error {
	if !p.Frequency.IsValid() {
		return fmt.Errorf("%w: unknown frequency %q (valid: %s)", ErrInvalidRecurrencePattern, p.Frequency, validation.FormatValidValues(ValidFrequencies()))
	}
	if p.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidRecurrencePattern, p.Interval)
	}
	if p.Frequency == FrequencyCustom && p.Step == nil {
		return fmt.Errorf("%w: custom frequency requires a step function", ErrInvalidRecurrencePattern)
	}
	if p.Count < 0 {
		return fmt.Errorf("%w: occurrence count cannot be negative, got %d", ErrInvalidRecurrencePattern, p.Count)
	}
	return nil
}
