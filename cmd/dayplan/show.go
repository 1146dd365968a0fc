package main

import (
	"github.com/spf13/cobra"

	"dayplan/internal/schedulefile"
	"dayplan/internal/ui"
	"dayplan/schedule"
)

var showCmd = &cobra.Command{
	Use:   "show <schedule-file>",
	Short: "List a day's items in time order",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the schedule as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	day, err := schedulefile.Load(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		return printJSON(cmd, day)
	}

	cmd.Println(ui.StyleHeading(day.Date.Format("2006-01-02")))
	if len(day.Items) == 0 {
		cmd.Println("Nothing scheduled.")
		return nil
	}

	table := ui.NewTableBuilder([]string{"TIME", "LENGTH", "TITLE", "TYPE", "STATUS", "PRIORITY"}, len(day.Items))
	for _, item := range day.Items {
		title := item.Title
		if item.Locked {
			title += " " + ui.StyleLocked("[locked]")
		}
		table.AddRow(
			item.Interval.String(),
			ui.FormatMinutes(item.Interval.Minutes()),
			title,
			string(item.Type),
			string(item.Status),
			string(item.Priority),
		)
	}
	cmd.Print(table.String())

	if recurring := countRecurring(day); recurring > 0 {
		cmd.Printf("%d recurring item(s); use expand to materialize occurrences.\n", recurring)
	}
	return nil
}

func countRecurring(day schedule.DailySchedule) int {
	count := 0
	for _, item := range day.Items {
		if item.Recurrence != nil {
			count++
		}
	}
	return count
}
