package schedule

import "dayplan/internal/validation"

// Statistics summarizes one day's schedule. Rate fields stay as floats for
// chained computation; use the Rounded accessors for display.
type Statistics struct {
	// TotalTasks counts task and subtask items.
	TotalTasks int `json:"total_tasks"`

	// CompletedTasks counts tasks with completed status.
	CompletedTasks int `json:"completed_tasks"`

	// TotalHours is the summed duration of every item.
	TotalHours float64 `json:"total_hours"`

	// ProductiveHours is the summed duration of task, subtask, focus, and
	// review items.
	ProductiveHours float64 `json:"productive_hours"`

	// BreakHours is the summed duration of working-hours breaks.
	BreakHours float64 `json:"break_hours"`

	// MeetingMinutes is the summed duration of meeting items.
	MeetingMinutes int `json:"meeting_minutes"`

	// FocusMinutes is the summed duration of focus items.
	FocusMinutes int `json:"focus_minutes"`

	// UtilizationRate is productive minutes over available working
	// minutes, as a percentage clamped to [0, 100].
	UtilizationRate float64 `json:"utilization_rate"`

	// CompletionRate is completed tasks over total tasks, as a
	// percentage. Zero when there are no tasks.
	CompletionRate float64 `json:"completion_rate"`

	// OvertimeHours is scheduled time beyond the nominal working span.
	OvertimeHours float64 `json:"overtime_hours"`
}

// RoundedUtilization returns the utilization rate as a whole percentage.
func (st Statistics) RoundedUtilization() int {
	return validation.RoundPercent(st.UtilizationRate)
}

// RoundedCompletion returns the completion rate as a whole percentage.
func (st Statistics) RoundedCompletion() int {
	return validation.RoundPercent(st.CompletionRate)
}

// ComputeStatistics aggregates utilization, completion, and time-category
// totals for a schedule. The input is not modified.
func ComputeStatistics(s DailySchedule) Statistics {
	var st Statistics

	totalMinutes := 0
	productiveMinutes := 0
	for _, item := range s.Items {
		minutes := item.Interval.Minutes()
		totalMinutes += minutes
		if item.Type.IsProductive() {
			productiveMinutes += minutes
		}
		if item.Type.CountsAsTask() {
			st.TotalTasks++
			if item.Status == StatusCompleted {
				st.CompletedTasks++
			}
		}
		switch item.Type {
		case TypeMeeting:
			st.MeetingMinutes += minutes
		case TypeFocus:
			st.FocusMinutes += minutes
		}
	}

	breakMinutes := 0
	for _, b := range s.Hours.Breaks {
		breakMinutes += b.Interval.Minutes()
	}

	st.TotalHours = float64(totalMinutes) / 60
	st.ProductiveHours = float64(productiveMinutes) / 60
	st.BreakHours = float64(breakMinutes) / 60

	if available := s.Hours.AvailableMinutes(); available > 0 {
		st.UtilizationRate = validation.ClampPercent(float64(productiveMinutes) / float64(available) * 100)
	}
	if st.TotalTasks > 0 {
		st.CompletionRate = validation.ClampPercent(float64(st.CompletedTasks) / float64(st.TotalTasks) * 100)
	}
	if nominal := float64(s.Hours.NominalMinutes()) / 60; st.TotalHours > nominal {
		st.OvertimeHours = st.TotalHours - nominal
	}

	return st
}
