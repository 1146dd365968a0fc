package ui

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	out := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a1", "standup"},
			{"b22", "lunch"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	// Columns align on the widest cell.
	if idx := strings.Index(lines[0], "TITLE"); idx != strings.Index(lines[1], "standup") {
		t.Errorf("header and row columns misaligned:\n%s", out)
	}
}

func TestFormatTable_ANSIWidths(t *testing.T) {
	styled := "\x1b[31mhigh\x1b[0m"
	out := FormatTable(
		[]string{"SEVERITY", "MESSAGE"},
		[][]string{
			{styled, "overlap"},
			{"medium", "deadline"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Widths are measured with escapes stripped, so both MESSAGE cells
	// start at the same visible column.
	stripped := strings.ReplaceAll(strings.ReplaceAll(lines[1], "\x1b[31m", ""), "\x1b[0m", "")
	if strings.Index(stripped, "overlap") != strings.Index(lines[2], "deadline") {
		t.Errorf("styled cell broke alignment:\n%s", out)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"KEY", "VALUE"}, 2)
	builder.AddRow("tasks", "3")
	builder.AddRow("completed", "1")

	out := builder.String()
	if !strings.Contains(out, "KEY") || !strings.Contains(out, "completed") {
		t.Errorf("builder output missing content:\n%s", out)
	}
}
