package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"dayplan/schedule"
)

var (
	severityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	severityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	severityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headingStyle        = lipgloss.NewStyle().Bold(true)
	lockedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// StyleSeverity colors a severity label when the terminal supports it.
func StyleSeverity(severity schedule.Severity) string {
	if !ansiEnabled() {
		return string(severity)
	}
	switch severity {
	case schedule.SeverityHigh:
		return severityHighStyle.Render(string(severity))
	case schedule.SeverityMedium:
		return severityMediumStyle.Render(string(severity))
	default:
		return severityLowStyle.Render(string(severity))
	}
}

// StyleHeading renders a bold section heading when the terminal supports it.
func StyleHeading(value string) string {
	if !ansiEnabled() {
		return value
	}
	return headingStyle.Render(value)
}

// StyleLocked marks a locked item indicator.
func StyleLocked(value string) string {
	if !ansiEnabled() {
		return value
	}
	return lockedStyle.Render(value)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
