package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dayplan/internal/schedulefile"
	"dayplan/internal/ui"
	"dayplan/schedule"
)

var statsCmd = &cobra.Command{
	Use:   "stats <schedule-file>",
	Short: "Compute utilization and completion statistics for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print statistics as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	day, err := schedulefile.Load(args[0])
	if err != nil {
		return err
	}

	stats := schedule.ComputeStatistics(day)
	if statsJSON {
		return printJSON(cmd, stats)
	}

	cmd.Println(ui.StyleHeading(day.Date.Format("2006-01-02")))
	table := ui.NewTableBuilder([]string{"", ""}, 9)
	table.AddRow("Tasks", fmt.Sprintf("%d/%d completed", stats.CompletedTasks, stats.TotalTasks))
	table.AddRow("Scheduled", ui.FormatHours(stats.TotalHours))
	table.AddRow("Productive", ui.FormatHours(stats.ProductiveHours))
	table.AddRow("Breaks", ui.FormatHours(stats.BreakHours))
	table.AddRow("Meetings", ui.FormatMinutes(stats.MeetingMinutes))
	table.AddRow("Focus", ui.FormatMinutes(stats.FocusMinutes))
	table.AddRow("Utilization", fmt.Sprintf("%d%%", stats.RoundedUtilization()))
	table.AddRow("Completion", fmt.Sprintf("%d%%", stats.RoundedCompletion()))
	if stats.OvertimeHours > 0 {
		table.AddRow("Overtime", ui.FormatHours(stats.OvertimeHours))
	}
	cmd.Print(table.String())
	return nil
}
