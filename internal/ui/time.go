package ui

import "fmt"

// FormatMinutes renders a minute count like "90m" or "1h30m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

// FormatHours renders fractional hours like "2.5h", trimming whole values
// to "2h".
func FormatHours(hours float64) string {
	if hours < 0 {
		hours = 0
	}
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}
