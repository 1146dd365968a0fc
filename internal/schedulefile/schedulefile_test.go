package schedulefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dayplan/schedule"
)

const sampleDay = `
date = "2026-08-31"

[hours]
start = "09:00"
end = "18:00"

[[hours.breaks]]
kind = "lunch"
start = "12:00"
end = "13:00"

[[items]]
id = "standup"
title = "Team standup"
type = "meeting"
start = "09:00"
end = "09:15"
locked = true

[[items]]
title = "Write report"
status = "in_progress"
priority = "high"
start = "09:30"
end = "11:00"
estimated-minutes = 90
completion-rate = 40
due = "2026-09-02"
`

func writeDayFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	day, err := Load(writeDayFile(t, sampleDay))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if !day.Date.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", day.Date)
	}
	if day.Hours.Interval != (schedule.Interval{Start: 540, End: 1080}) {
		t.Errorf("Hours = %v", day.Hours.Interval)
	}
	if len(day.Hours.Breaks) != 1 || day.Hours.Breaks[0].Kind != schedule.BreakLunch {
		t.Errorf("Breaks = %v", day.Hours.Breaks)
	}
	if len(day.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(day.Items))
	}

	standup := day.Items[0]
	if standup.ID != "standup" || standup.Type != schedule.TypeMeeting || !standup.Locked {
		t.Errorf("standup decoded as %+v", standup)
	}
	// Explicit defaults: status planned, priority medium.
	if standup.Status != schedule.StatusPlanned || standup.Priority != schedule.PriorityMedium {
		t.Errorf("standup defaults = %s/%s", standup.Status, standup.Priority)
	}

	report := day.Items[1]
	if report.ID == "" {
		t.Error("item without an ID was not assigned one")
	}
	if report.Type != schedule.TypeTask {
		t.Errorf("report type = %s, want default task", report.Type)
	}
	if report.Status != schedule.StatusInProgress || report.Priority != schedule.PriorityHigh {
		t.Errorf("report decoded as %s/%s", report.Status, report.Priority)
	}
	if report.DueDate == nil || !report.DueDate.Equal(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("report due = %v", report.DueDate)
	}
	if report.EstimatedMinutes != 90 || report.CompletionRate != 40 {
		t.Errorf("report numbers = %d/%d", report.EstimatedMinutes, report.CompletionRate)
	}
}

func TestLoad_FileOrderBreaksTies(t *testing.T) {
	day, err := Load(writeDayFile(t, `
date = "2026-08-31"

[hours]
start = "09:00"
end = "18:00"

[[items]]
id = "first"
title = "First"
start = "10:00"
end = "11:00"

[[items]]
id = "second"
title = "Second"
start = "10:00"
end = "11:00"
`))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if day.Items[0].ID != "first" || day.Items[1].ID != "second" {
		t.Errorf("equal-start items sorted as %s, %s; want file order",
			day.Items[0].ID, day.Items[1].ID)
	}
}

func TestDecode_Recurrence(t *testing.T) {
	day, err := Load(writeDayFile(t, `
date = "2026-08-31"

[hours]
start = "09:00"
end = "18:00"

[[items]]
id = "sync"
title = "Weekly sync"
type = "meeting"
start = "14:00"
end = "15:00"

[items.recurrence]
frequency = "weekly"
days-of-week = ["monday", "wednesday"]
exceptions = ["2026-09-02"]
end-date = "2026-09-30"
`))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	pattern := day.Items[0].Recurrence
	if pattern == nil {
		t.Fatal("recurrence not decoded")
	}
	if pattern.Frequency != schedule.FrequencyWeekly {
		t.Errorf("Frequency = %s", pattern.Frequency)
	}
	if pattern.Interval != 1 {
		t.Errorf("Interval = %d, want default 1", pattern.Interval)
	}
	wantDays := []time.Weekday{time.Monday, time.Wednesday}
	if len(pattern.DaysOfWeek) != len(wantDays) {
		t.Fatalf("DaysOfWeek = %v", pattern.DaysOfWeek)
	}
	for i := range wantDays {
		if pattern.DaysOfWeek[i] != wantDays[i] {
			t.Errorf("DaysOfWeek[%d] = %v, want %v", i, pattern.DaysOfWeek[i], wantDays[i])
		}
	}
	if len(pattern.Exceptions) != 1 {
		t.Fatalf("Exceptions = %v", pattern.Exceptions)
	}
	if pattern.EndDate == nil || !pattern.EndDate.Equal(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v", pattern.EndDate)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name: "bad clock string",
			content: `
date = "2026-08-31"
[hours]
start = "9am"
end = "18:00"
`,
			wantErr: schedule.ErrInvalidTimeFormat,
		},
		{
			name: "inverted item interval",
			content: `
date = "2026-08-31"
[hours]
start = "09:00"
end = "18:00"
[[items]]
title = "Backwards"
start = "11:00"
end = "10:00"
`,
			wantErr: schedule.ErrInvalidInterval,
		},
		{
			name: "unknown priority",
			content: `
date = "2026-08-31"
[hours]
start = "09:00"
end = "18:00"
[[items]]
title = "Odd"
priority = "whenever"
start = "10:00"
end = "11:00"
`,
			wantErr: schedule.ErrInvalidPriority,
		},
		{
			name: "bad date",
			content: `
date = "31/08/2026"
[hours]
start = "09:00"
end = "18:00"
`,
			wantMsg: "invalid date",
		},
		{
			name: "bad weekday",
			content: `
date = "2026-08-31"
[hours]
start = "09:00"
end = "18:00"
[[items]]
title = "Sync"
start = "10:00"
end = "11:00"
[items.recurrence]
frequency = "weekly"
days-of-week = ["moonday"]
`,
			wantMsg: "invalid weekday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDayFile(t, tt.content))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}
