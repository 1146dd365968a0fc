package main

import (
	"strings"

	"github.com/spf13/cobra"

	"dayplan/internal/config"
	"dayplan/internal/ui"
	"dayplan/schedule"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts <schedule-file>...",
	Short: "Detect overlapping, over-booked, and past-deadline items",
	Long: `Detect conflicts in a day's schedule.

Overlapping items are reported pairwise; three or more items booked at the
same instant collapse into a single overbooked conflict. Tasks scheduled
after their due date are reported as deadline conflicts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConflicts,
}

var conflictsJSON bool

func init() {
	conflictsCmd.Flags().BoolVar(&conflictsJSON, "json", false, "print conflicts as JSON")
}

func runConflicts(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	days, err := loadSchedules(args)
	if err != nil {
		return err
	}

	conflicts := detectAll(days, cfg)
	if conflictsJSON {
		return printJSON(cmd, conflicts)
	}

	if len(conflicts) == 0 {
		cmd.Println("No conflicts found.")
		return nil
	}

	table := ui.NewTableBuilder([]string{"SEVERITY", "TYPE", "ITEMS", "MESSAGE"}, len(conflicts))
	for _, conflict := range conflicts {
		table.AddRow(
			ui.StyleSeverity(conflict.Severity),
			string(conflict.Type),
			strings.Join(conflict.ItemIDs, ","),
			conflict.Message,
		)
	}
	cmd.Print(table.String())
	return nil
}

func detectAll(days []schedule.DailySchedule, cfg *config.Config) []schedule.Conflict {
	conflicts := []schedule.Conflict{}
	for _, day := range days {
		conflicts = append(conflicts, schedule.DetectConflicts(day, cfg.DetectorOptions())...)
	}
	return conflicts
}
