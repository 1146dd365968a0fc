package schedule

import (
	"reflect"
	"testing"
	"time"
)

func testDay(items ...ScheduleItem) DailySchedule {
	return DailySchedule{
		Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Hours: WorkingHours{
			Interval: Interval{Start: 540, End: 1080}, // 09:00-18:00
		},
		Items: items,
	}
}

func testItem(id string, start, end TimeOfDay, priority Priority) ScheduleItem {
	return ScheduleItem{
		ID:       id,
		Title:    id,
		Day:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Type:     TypeTask,
		Status:   StatusPlanned,
		Priority: priority,
		Interval: Interval{Start: start, End: end},
	}
}

func TestDetectConflicts_NoConflicts(t *testing.T) {
	day := testDay(
		testItem("a", 540, 600, PriorityMedium),
		testItem("b", 600, 660, PriorityMedium), // touches a, no overlap
		testItem("c", 720, 780, PriorityMedium),
	)

	conflicts := DetectConflicts(day, DetectorOptions{})
	if len(conflicts) != 0 {
		t.Fatalf("DetectConflicts = %v, want none", conflicts)
	}
}

func TestDetectConflicts_PairwiseOverlap(t *testing.T) {
	// A 09:00-10:00 high, B 09:30-10:30 medium: 30m overlap of 60m items is
	// exactly the threshold, so the high priority drives severity medium.
	day := testDay(
		testItem("a", 540, 600, PriorityHigh),
		testItem("b", 570, 630, PriorityMedium),
	)

	conflicts := DetectConflicts(day, DetectorOptions{})
	if len(conflicts) != 1 {
		t.Fatalf("DetectConflicts returned %d conflicts, want 1", len(conflicts))
	}

	conflict := conflicts[0]
	if conflict.Type != ConflictOverlap {
		t.Errorf("Type = %q, want overlap", conflict.Type)
	}
	if !reflect.DeepEqual(conflict.ItemIDs, []string{"a", "b"}) {
		t.Errorf("ItemIDs = %v, want [a b]", conflict.ItemIDs)
	}
	if conflict.Severity != SeverityMedium {
		t.Errorf("Severity = %q, want medium", conflict.Severity)
	}
}

func TestDetectConflicts_SeverityRules(t *testing.T) {
	tests := []struct {
		name string
		a, b ScheduleItem
		want Severity
	}{
		{
			name: "urgent priority escalates",
			a:    testItem("a", 540, 600, PriorityUrgent),
			b:    testItem("b", 590, 650, PriorityLow),
			want: SeverityHigh,
		},
		{
			name: "critical priority escalates",
			a:    testItem("a", 540, 600, PriorityCritical),
			b:    testItem("b", 590, 650, PriorityLow),
			want: SeverityHigh,
		},
		{
			name: "majority overlap escalates",
			a:    testItem("a", 540, 600, PriorityLow),
			b:    testItem("b", 550, 610, PriorityLow), // 50m of 60m
			want: SeverityHigh,
		},
		{
			name: "high priority without majority overlap",
			a:    testItem("a", 540, 600, PriorityHigh),
			b:    testItem("b", 590, 650, PriorityLow), // 10m of 60m
			want: SeverityMedium,
		},
		{
			name: "small overlap between calm items",
			a:    testItem("a", 540, 600, PriorityLow),
			b:    testItem("b", 590, 650, PriorityMedium),
			want: SeverityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := DetectConflicts(testDay(tt.a, tt.b), DetectorOptions{})
			if len(conflicts) != 1 {
				t.Fatalf("got %d conflicts, want 1", len(conflicts))
			}
			if conflicts[0].Severity != tt.want {
				t.Errorf("Severity = %q, want %q", conflicts[0].Severity, tt.want)
			}
		})
	}
}

func TestDetectConflicts_Overbooked(t *testing.T) {
	// Three items open at 09:40: the cluster replaces pairwise reports.
	day := testDay(
		testItem("a", 540, 600, PriorityMedium),
		testItem("b", 570, 630, PriorityMedium),
		testItem("c", 580, 640, PriorityMedium),
	)

	conflicts := DetectConflicts(day, DetectorOptions{})
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1 overbooked cluster: %v", len(conflicts), conflicts)
	}

	conflict := conflicts[0]
	if conflict.Type != ConflictOverbooked {
		t.Fatalf("Type = %q, want overbooked", conflict.Type)
	}
	if !reflect.DeepEqual(conflict.ItemIDs, []string{"a", "b", "c"}) {
		t.Errorf("ItemIDs = %v, want [a b c]", conflict.ItemIDs)
	}
	if conflict.Severity.Rank() > SeverityMedium.Rank() {
		t.Errorf("Severity = %q, want at least medium", conflict.Severity)
	}
}

func TestDetectConflicts_OverbookedPlusSeparateOverlap(t *testing.T) {
	// A cluster in the morning and an unrelated pair in the afternoon.
	day := testDay(
		testItem("a", 540, 600, PriorityMedium),
		testItem("b", 570, 630, PriorityMedium),
		testItem("c", 580, 640, PriorityMedium),
		testItem("d", 900, 960, PriorityMedium),
		testItem("e", 950, 1010, PriorityLow),
	)

	conflicts := DetectConflicts(day, DetectorOptions{})
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2: %v", len(conflicts), conflicts)
	}
	if conflicts[0].Type != ConflictOverbooked {
		t.Errorf("conflicts[0].Type = %q, want overbooked", conflicts[0].Type)
	}
	if conflicts[1].Type != ConflictOverlap {
		t.Errorf("conflicts[1].Type = %q, want overlap", conflicts[1].Type)
	}
	if !reflect.DeepEqual(conflicts[1].ItemIDs, []string{"d", "e"}) {
		t.Errorf("conflicts[1].ItemIDs = %v, want [d e]", conflicts[1].ItemIDs)
	}
}

func TestDetectConflicts_Deadline(t *testing.T) {
	due := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	late := testItem("late", 540, 600, PriorityHigh)
	late.DueDate = &due

	finished := testItem("finished", 660, 720, PriorityHigh)
	finished.DueDate = &due
	finished.Status = StatusCompleted

	meeting := testItem("meeting", 780, 840, PriorityHigh)
	meeting.Type = TypeMeeting
	meeting.DueDate = &due

	conflicts := DetectConflicts(testDay(late, finished, meeting), DetectorOptions{})
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1 deadline conflict: %v", len(conflicts), conflicts)
	}
	conflict := conflicts[0]
	if conflict.Type != ConflictDeadline {
		t.Errorf("Type = %q, want deadline", conflict.Type)
	}
	if !reflect.DeepEqual(conflict.ItemIDs, []string{"late"}) {
		t.Errorf("ItemIDs = %v, want [late]", conflict.ItemIDs)
	}
	if conflict.Severity != SeverityMedium {
		t.Errorf("Severity = %q, want medium for high priority", conflict.Severity)
	}
}

func TestDetectConflicts_DeadlineAfterSweep(t *testing.T) {
	due := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	late := testItem("late", 540, 600, PriorityLow)
	late.DueDate = &due

	day := testDay(
		late,
		testItem("d", 900, 960, PriorityMedium),
		testItem("e", 950, 1010, PriorityLow),
	)

	conflicts := DetectConflicts(day, DetectorOptions{})
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2: %v", len(conflicts), conflicts)
	}
	if conflicts[0].Type != ConflictOverlap || conflicts[1].Type != ConflictDeadline {
		t.Errorf("order = [%s %s], want sweep conflicts before deadline checks",
			conflicts[0].Type, conflicts[1].Type)
	}
}

func TestDetectConflicts_Idempotent(t *testing.T) {
	due := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	late := testItem("late", 700, 760, PriorityUrgent)
	late.DueDate = &due

	day := testDay(
		testItem("a", 540, 600, PriorityMedium),
		testItem("b", 570, 630, PriorityMedium),
		testItem("c", 580, 640, PriorityMedium),
		late,
		testItem("d", 900, 960, PriorityMedium),
		testItem("e", 950, 1010, PriorityLow),
	)

	first := DetectConflicts(day, DetectorOptions{})
	second := DetectConflicts(day, DetectorOptions{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("detector is not idempotent:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestDetectConflicts_InputNotMutated(t *testing.T) {
	day := testDay(
		testItem("b", 570, 630, PriorityMedium),
		testItem("a", 540, 600, PriorityMedium),
	)

	DetectConflicts(day, DetectorOptions{})
	if day.Items[0].ID != "b" {
		t.Error("DetectConflicts reordered the caller's items")
	}
}

func TestDetectConflicts_ConfigurableThresholds(t *testing.T) {
	// With the ratio dropped to 0.2, a 30m/60m overlap becomes high even
	// without urgent priorities.
	day := testDay(
		testItem("a", 540, 600, PriorityLow),
		testItem("b", 570, 630, PriorityLow),
	)

	conflicts := DetectConflicts(day, DetectorOptions{HighOverlapRatio: 0.2})
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	if conflicts[0].Severity != SeverityHigh {
		t.Errorf("Severity = %q, want high with lowered threshold", conflicts[0].Severity)
	}
}
