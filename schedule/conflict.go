package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ConflictType classifies a detected scheduling problem.
type ConflictType string

const (
	// ConflictOverlap is two items sharing time.
	ConflictOverlap ConflictType = "overlap"

	// ConflictOverbooked is three or more items open at the same instant.
	ConflictOverbooked ConflictType = "overbooked"

	// ConflictDeadline is an item scheduled after its due date has passed.
	ConflictDeadline ConflictType = "deadline"
)

// Severity grades how serious a conflict is.
type Severity string

const (
	// SeverityLow is a minor conflict.
	SeverityLow Severity = "low"

	// SeverityMedium is a conflict worth fixing.
	SeverityMedium Severity = "medium"

	// SeverityHigh is a conflict that needs attention now.
	SeverityHigh Severity = "high"
)

// Rank returns the sort rank for a severity; higher severities rank lower.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Conflict is one detected scheduling problem.
type Conflict struct {
	// Type classifies the conflict.
	Type ConflictType `json:"type"`

	// ItemIDs are the items involved. Overlap conflicts reference exactly
	// two; overbooked conflicts reference the whole concurrent cluster.
	ItemIDs []string `json:"item_ids"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Severity grades the conflict.
	Severity Severity `json:"severity"`
}

// DetectorOptions tunes severity classification. The thresholds are
// product-level knobs, not invariants; zero values select the defaults.
type DetectorOptions struct {
	// HighOverlapRatio escalates an overlap to high severity when the
	// shared span exceeds this fraction of the shorter item.
	HighOverlapRatio float64

	// OverbookedThreshold is the number of concurrently open items that
	// collapses pairwise overlaps into one overbooked conflict.
	OverbookedThreshold int
}

const (
	defaultHighOverlapRatio    = 0.5
	defaultOverbookedThreshold = 3
)

func (o DetectorOptions) withDefaults() DetectorOptions {
	if o.HighOverlapRatio <= 0 {
		o.HighOverlapRatio = defaultHighOverlapRatio
	}
	if o.OverbookedThreshold <= 0 {
		o.OverbookedThreshold = defaultOverbookedThreshold
	}
	return o
}

// DetectConflicts finds overlapping and over-booked items in a schedule,
// then appends deadline violations. The input is not modified.
//
// The sweep walks items in start order keeping the set of currently open
// intervals. Pairs of overlapping items produce overlap conflicts; when the
// number of concurrently open items reaches the overbooked threshold the
// whole cluster collapses into a single overbooked conflict, which
// supersedes the pairwise reports for that cluster. Output order is
// detection order, so repeated runs over an unchanged schedule return an
// identical list.
func DetectConflicts(s DailySchedule, opts DetectorOptions) []Conflict {
	opts = opts.withDefaults()
	items := s.Normalize().Items

	type pairHit struct {
		a, b int // indices into items
	}
	type clusterHit struct {
		members map[int]bool
	}
	type detection struct {
		pair    *pairHit
		cluster *clusterHit
	}

	var detections []detection
	var clusters []*clusterHit
	var open []int // indices of items whose interval is still open, end-sorted

	for i := range items {
		start := items[i].Interval.Start

		kept := open[:0]
		for _, j := range open {
			if items[j].Interval.End > start {
				kept = append(kept, j)
			}
		}
		open = kept

		if len(open)+1 >= opts.OverbookedThreshold {
			// Concurrent cluster: extend the active cluster when it shares a
			// member, otherwise start a new one.
			var active *clusterHit
			for _, c := range clusters {
				for _, j := range open {
					if c.members[j] {
						active = c
						break
					}
				}
				if active != nil {
					break
				}
			}
			if active == nil {
				active = &clusterHit{members: map[int]bool{}}
				clusters = append(clusters, active)
				detections = append(detections, detection{cluster: active})
			}
			for _, j := range open {
				active.members[j] = true
			}
			active.members[i] = true
		} else {
			for _, j := range open {
				detections = append(detections, detection{pair: &pairHit{a: j, b: i}})
			}
		}

		open = append(open, i)
		sort.Slice(open, func(a, b int) bool {
			if items[open[a]].Interval.End != items[open[b]].Interval.End {
				return items[open[a]].Interval.End < items[open[b]].Interval.End
			}
			return open[a] < open[b]
		})
	}

	var conflicts []Conflict
	for _, d := range detections {
		switch {
		case d.cluster != nil:
			conflicts = append(conflicts, clusterConflict(items, d.cluster.members, opts))
		case d.pair != nil:
			// Pairwise overlaps inside an overbooked cluster are superseded.
			superseded := false
			for _, c := range clusters {
				if c.members[d.pair.a] && c.members[d.pair.b] {
					superseded = true
					break
				}
			}
			if !superseded {
				conflicts = append(conflicts, overlapConflict(items[d.pair.a], items[d.pair.b], opts))
			}
		}
	}

	conflicts = append(conflicts, deadlineConflicts(s.Date, items)...)
	return conflicts
}

func overlapConflict(a, b ScheduleItem, opts DetectorOptions) Conflict {
	overlap := a.Interval.OverlapMinutes(b.Interval)
	return Conflict{
		Type:    ConflictOverlap,
		ItemIDs: []string{a.ID, b.ID},
		Message: fmt.Sprintf("%q (%s) overlaps %q (%s) by %dm",
			b.Title, b.Interval, a.Title, a.Interval, overlap),
		Severity: overlapSeverity(a, b, opts),
	}
}

func overlapSeverity(a, b ScheduleItem, opts DetectorOptions) Severity {
	overlap := a.Interval.OverlapMinutes(b.Interval)
	shorter := a.Interval.Minutes()
	if b.Interval.Minutes() < shorter {
		shorter = b.Interval.Minutes()
	}
	if a.Priority.IsUrgent() || b.Priority.IsUrgent() {
		return SeverityHigh
	}
	if shorter > 0 && float64(overlap) > opts.HighOverlapRatio*float64(shorter) {
		return SeverityHigh
	}
	if a.Priority == PriorityHigh || b.Priority == PriorityHigh {
		return SeverityMedium
	}
	return SeverityLow
}

func clusterConflict(items []ScheduleItem, members map[int]bool, opts DetectorOptions) Conflict {
	idx := make([]int, 0, len(members))
	for j := range members {
		idx = append(idx, j)
	}
	sort.Ints(idx)

	ids := make([]string, 0, len(idx))
	window := items[idx[0]].Interval
	severity := SeverityMedium // three concurrent items is never minor
	for _, j := range idx {
		ids = append(ids, items[j].ID)
		if items[j].Interval.Start < window.Start {
			window.Start = items[j].Interval.Start
		}
		if items[j].Interval.End > window.End {
			window.End = items[j].Interval.End
		}
		if items[j].Priority.IsUrgent() {
			severity = SeverityHigh
		}
	}
	if severity != SeverityHigh {
		for i := 0; i < len(idx); i++ {
			for j := i + 1; j < len(idx); j++ {
				a, b := items[idx[i]], items[idx[j]]
				if a.Interval.Overlaps(b.Interval) && overlapSeverity(a, b, opts) == SeverityHigh {
					severity = SeverityHigh
				}
			}
		}
	}

	return Conflict{
		Type:     ConflictOverbooked,
		ItemIDs:  ids,
		Message:  fmt.Sprintf("%d items booked concurrently between %s and %s: %s", len(ids), window.Start, window.End, strings.Join(ids, ", ")),
		Severity: severity,
	}
}

func deadlineConflicts(day time.Time, items []ScheduleItem) []Conflict {
	scheduleDay := DateOnly(day)
	var conflicts []Conflict
	for _, item := range items {
		if !item.Type.CountsAsTask() || item.DueDate == nil || item.Status == StatusCompleted {
			continue
		}
		due := DateOnly(*item.DueDate)
		if !due.Before(scheduleDay) {
			continue
		}
		severity := SeverityLow
		if item.Priority.IsUrgent() {
			severity = SeverityHigh
		} else if item.Priority == PriorityHigh {
			severity = SeverityMedium
		}
		conflicts = append(conflicts, Conflict{
			Type:    ConflictDeadline,
			ItemIDs: []string{item.ID},
			Message: fmt.Sprintf("%q is scheduled on %s but was due %s",
				item.Title, scheduleDay.Format("2006-01-02"), due.Format("2006-01-02")),
			Severity: severity,
		})
	}
	return conflicts
}
