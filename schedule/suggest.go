package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// SlotAvailability tags how snugly a candidate slot fits the request.
type SlotAvailability string

const (
	// AvailabilityExact means the slot length equals the requested duration.
	AvailabilityExact SlotAvailability = "exact"

	// AvailabilityOpen means the slot leaves slack after the request.
	AvailabilityOpen SlotAvailability = "open"
)

// TimeSlot is a candidate free interval on a specific day.
type TimeSlot struct {
	Date         time.Time        `json:"date"`
	Interval     Interval         `json:"interval"`
	Availability SlotAvailability `json:"availability"`
}

// Candidate describes an unscheduled item looking for a placement.
type Candidate struct {
	// ItemID identifies the item the suggestion targets, if it exists yet.
	ItemID string

	// DurationMinutes is the required slot length.
	DurationMinutes int

	// Priority feeds the urgency score.
	Priority Priority

	// DueDate, when set, boosts slots on earlier days.
	DueDate *time.Time
}

// Suggestion is one ranked placement proposal.
type Suggestion struct {
	// ItemID is the candidate item the slot is proposed for.
	ItemID string `json:"item_id,omitempty"`

	// Slot is the proposed free interval.
	Slot TimeSlot `json:"slot"`

	// Confidence is the normalized score in [0, 1].
	Confidence float64 `json:"confidence"`

	// Factors names the contributors to the score.
	Factors []string `json:"factors"`
}

// SuggestOptions tunes slot scoring. Zero values select the defaults; the
// three weights are normalized before use.
type SuggestOptions struct {
	// MaxSuggestions caps the returned list.
	MaxSuggestions int

	// FitWeight scores how tightly the request fills the slot.
	FitWeight float64

	// UrgencyWeight scores priority and due-date pressure.
	UrgencyWeight float64

	// ProximityWeight scores earlier days over later ones.
	ProximityWeight float64
}

const defaultMaxSuggestions = 5

func (o SuggestOptions) withDefaults() SuggestOptions {
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = defaultMaxSuggestions
	}
	if o.FitWeight <= 0 && o.UrgencyWeight <= 0 && o.ProximityWeight <= 0 {
		o.FitWeight, o.UrgencyWeight, o.ProximityWeight = 0.5, 0.3, 0.2
	}
	total := o.FitWeight + o.UrgencyWeight + o.ProximityWeight
	o.FitWeight /= total
	o.UrgencyWeight /= total
	o.ProximityWeight /= total
	return o
}

// FreeSlots returns the free sub-intervals of a day: the working interval
// minus the union of all item intervals and breaks. Because every existing
// item is subtracted, no returned slot can touch a locked item or fall
// outside working hours.
func FreeSlots(s DailySchedule) []Interval {
	busy := make([]Interval, 0, len(s.Items)+len(s.Hours.Breaks))
	for _, item := range s.Items {
		busy = append(busy, item.Interval)
	}
	for _, b := range s.Hours.Breaks {
		busy = append(busy, b.Interval)
	}
	return subtractIntervals(s.Hours.Interval, mergeIntervals(busy))
}

// GenerateSuggestions finds and ranks free slots for a candidate item
// across one or more days. Days are considered in date order; earlier days
// score higher. An empty result means no slot of sufficient length exists,
// which is a valid outcome rather than an error.
func GenerateSuggestions(c Candidate, days []DailySchedule, opts SuggestOptions) ([]Suggestion, error) {
	if c.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: candidate duration must be positive, got %d", ErrInvalidInterval, c.DurationMinutes)
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if !c.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, c.Priority)
	}
	opts = opts.withDefaults()

	ordered := make([]DailySchedule, len(days))
	copy(ordered, days)
	sort.SliceStable(ordered, func(i, j int) bool {
		return DateOnly(ordered[i].Date).Before(DateOnly(ordered[j].Date))
	})

	var suggestions []Suggestion
	for dayIndex, day := range ordered {
		for _, slot := range FreeSlots(day) {
			if slot.Minutes() < c.DurationMinutes {
				continue
			}
			suggestions = append(suggestions, scoreSlot(c, day, slot, dayIndex, opts))
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		if !suggestions[i].Slot.Date.Equal(suggestions[j].Slot.Date) {
			return suggestions[i].Slot.Date.Before(suggestions[j].Slot.Date)
		}
		return suggestions[i].Slot.Interval.Start < suggestions[j].Slot.Interval.Start
	})

	if len(suggestions) > opts.MaxSuggestions {
		suggestions = suggestions[:opts.MaxSuggestions]
	}
	return suggestions, nil
}

func scoreSlot(c Candidate, day DailySchedule, slot Interval, dayIndex int, opts SuggestOptions) Suggestion {
	var factors []string

	fit := float64(c.DurationMinutes) / float64(slot.Minutes())
	availability := AvailabilityOpen
	if slot.Minutes() == c.DurationMinutes {
		availability = AvailabilityExact
		factors = append(factors, "exact duration fit")
	} else {
		factors = append(factors, fmt.Sprintf("duration fit %d%%", int(math.Round(fit*100))))
	}

	urgency := priorityUrgency(c.Priority)
	factors = append(factors, string(c.Priority)+" priority")
	if c.DueDate != nil {
		daysUntilDue := int(DateOnly(*c.DueDate).Sub(DateOnly(day.Date)).Hours() / 24)
		dueBoost := 0.0
		switch {
		case daysUntilDue <= 0:
			dueBoost = 1
			factors = append(factors, "due today or overdue")
		default:
			dueBoost = 1 / float64(1+daysUntilDue)
			factors = append(factors, fmt.Sprintf("due in %dd", daysUntilDue))
		}
		urgency = 0.6*urgency + 0.4*dueBoost
	}

	proximity := 1 / float64(1+dayIndex)
	if dayIndex == 0 {
		factors = append(factors, "earliest candidate day")
	}

	score := opts.FitWeight*fit + opts.UrgencyWeight*urgency + opts.ProximityWeight*proximity
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Suggestion{
		ItemID: c.ItemID,
		Slot: TimeSlot{
			Date:         DateOnly(day.Date),
			Interval:     slot,
			Availability: availability,
		},
		Confidence: math.Round(score*100) / 100,
		Factors:    factors,
	}
}

func priorityUrgency(p Priority) float64 {
	switch p {
	case PriorityCritical:
		return 1.0
	case PriorityUrgent:
		return 0.9
	case PriorityHigh:
		return 0.7
	case PriorityMedium:
		return 0.5
	case PriorityLow:
		return 0.3
	default:
		return 0.5
	}
}
