package main

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"dayplan/internal/markdown"
	"dayplan/internal/schedulefile"
	"dayplan/schedule"
)

var reportCmd = &cobra.Command{
	Use:   "report <schedule-file>",
	Short: "Render a markdown summary of a day's schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var (
	reportPlain bool
	reportWidth int
)

func init() {
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "print raw markdown without terminal styling")
	reportCmd.Flags().IntVar(&reportWidth, "width", 80, "render width in columns")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	day, err := schedulefile.Load(args[0])
	if err != nil {
		return err
	}

	stats := schedule.ComputeStatistics(day)
	conflicts := schedule.DetectConflicts(day, cfg.DetectorOptions())
	doc := buildReport(day, stats, conflicts, reportWidth)

	if reportPlain {
		cmd.Println(doc)
		return nil
	}
	cmd.Println(markdown.Render(reportWidth, doc))
	return nil
}

func buildReport(day schedule.DailySchedule, stats schedule.Statistics, conflicts []schedule.Conflict, width int) string {
	var doc strings.Builder

	fmt.Fprintf(&doc, "# Schedule for %s\n\n", day.Date.Format("2006-01-02"))
	fmt.Fprintf(&doc, "Working hours %s with %d break(s).\n\n", day.Hours.Interval, len(day.Hours.Breaks))

	doc.WriteString("## Items\n\n")
	if len(day.Items) == 0 {
		doc.WriteString("Nothing scheduled.\n\n")
	}
	for _, item := range day.Items {
		locked := ""
		if item.Locked {
			locked = " (locked)"
		}
		fmt.Fprintf(&doc, "- %s %s [%s/%s]%s\n", item.Interval, item.Title, item.Type, item.Status, locked)
	}
	if len(day.Items) > 0 {
		doc.WriteString("\n")
	}

	doc.WriteString("## Statistics\n\n")
	fmt.Fprintf(&doc, "- Tasks completed: %d of %d (%d%%)\n", stats.CompletedTasks, stats.TotalTasks, stats.RoundedCompletion())
	fmt.Fprintf(&doc, "- Scheduled: %.1fh, productive %.1fh, breaks %.1fh\n", stats.TotalHours, stats.ProductiveHours, stats.BreakHours)
	fmt.Fprintf(&doc, "- Utilization: %d%%\n", stats.RoundedUtilization())
	if stats.OvertimeHours > 0 {
		fmt.Fprintf(&doc, "- Overtime: %.1fh\n", stats.OvertimeHours)
	}
	doc.WriteString("\n")

	doc.WriteString("## Conflicts\n\n")
	if len(conflicts) == 0 {
		doc.WriteString("No conflicts found.\n")
	}
	for _, conflict := range conflicts {
		message := wordwrap.String(conflict.Message, width-6)
		message = strings.ReplaceAll(message, "\n", "\n  ")
		fmt.Fprintf(&doc, "- **%s** %s: %s\n", conflict.Severity, conflict.Type, message)
	}

	free := schedule.FreeSlots(day)
	if len(free) > 0 {
		doc.WriteString("\n## Free slots\n\n")
		for _, slot := range free {
			fmt.Fprintf(&doc, "- %s (%dm)\n", slot, slot.Minutes())
		}
	}

	return doc.String()
}
