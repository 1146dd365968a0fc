package schedule

import (
	"errors"
	"fmt"
)

// Op is the kind of a staged mutation.
type Op string

const (
	// OpPut inserts or replaces an item by ID.
	OpPut Op = "put"

	// OpRemove deletes an item by ID.
	OpRemove Op = "remove"
)

// Command is one tentative schedule mutation, tagged with a correlation ID
// so it can be reverted or confirmed when the authoritative result returns.
type Command struct {
	CorrelationID string
	Op            Op
	Item          ScheduleItem
}

var (
	// ErrEmptyCorrelationID is returned when a command has no correlation ID.
	ErrEmptyCorrelationID = errors.New("command correlation ID cannot be empty")

	// ErrDuplicateCorrelationID is returned when a correlation ID is staged twice.
	ErrDuplicateCorrelationID = errors.New("correlation ID already staged")

	// ErrUnknownCorrelationID is returned when reverting an ID that was never staged.
	ErrUnknownCorrelationID = errors.New("unknown correlation ID")

	// ErrInvalidOp is returned for an unknown command op.
	ErrInvalidOp = errors.New("invalid command op")
)

// Draft models optimistic schedule mutation as an explicit command/result
// pair: stage tentative changes, revert the ones the authoritative backend
// rejects, then commit to get the resulting schedule plus its conflicts.
// A Draft holds plain values and shares no state with its inputs.
type Draft struct {
	base   DailySchedule
	staged []Command
	opts   DetectorOptions
}

// BeginDraft snapshots a schedule for tentative mutation.
func BeginDraft(s DailySchedule, opts DetectorOptions) *Draft {
	return &Draft{base: s.Normalize(), opts: opts}
}

// Stage records a tentative mutation. Put commands validate the item before
// staging; failures leave the draft unchanged.
func (d *Draft) Stage(cmd Command) error {
	if cmd.CorrelationID == "" {
		return ErrEmptyCorrelationID
	}
	for _, staged := range d.staged {
		if staged.CorrelationID == cmd.CorrelationID {
			return fmt.Errorf("%w: %q", ErrDuplicateCorrelationID, cmd.CorrelationID)
		}
	}
	switch cmd.Op {
	case OpPut:
		if err := ValidateItem(&cmd.Item); err != nil {
			return err
		}
	case OpRemove:
		if cmd.Item.ID == "" {
			return ErrEmptyItemID
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOp, cmd.Op)
	}
	d.staged = append(d.staged, cmd)
	return nil
}

// Revert atomically discards the staged command with the given correlation
// ID, as when the authoritative result comes back a failure.
func (d *Draft) Revert(correlationID string) error {
	for i, staged := range d.staged {
		if staged.CorrelationID == correlationID {
			d.staged = append(d.staged[:i], d.staged[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCorrelationID, correlationID)
}

// Schedule returns the tentative schedule with all staged commands applied,
// in canonical item order.
func (d *Draft) Schedule() DailySchedule {
	result := d.base
	items := make([]ScheduleItem, len(d.base.Items))
	copy(items, d.base.Items)

	for _, cmd := range d.staged {
		kept := items[:0]
		for _, item := range items {
			if item.ID != cmd.Item.ID {
				kept = append(kept, item)
			}
		}
		items = kept
		if cmd.Op == OpPut {
			items = append(items, cmd.Item)
		}
	}

	sortItems(items)
	result.Items = items
	return result
}

// Commit finalizes the draft, returning the resulting schedule and its
// freshly detected conflicts. The caller replaces its copy of the schedule
// with the returned value.
func (d *Draft) Commit() (DailySchedule, []Conflict) {
	result := d.Schedule()
	return result, DetectConflicts(result, d.opts)
}
