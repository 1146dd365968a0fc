package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dayplan/internal/schedulefile"
	"dayplan/internal/ui"
	"dayplan/schedule"
)

var expandCmd = &cobra.Command{
	Use:   "expand <schedule-file>",
	Short: "Materialize occurrences of a recurring item",
	Long: `Expand a recurring item into concrete dated occurrences.

The item's recurrence pattern is stepped through the requested date range,
skipping exception dates. Occurrence IDs are derived deterministically from
the anchor item and date, so re-running the expansion is stable.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

var (
	expandItemID string
	expandFrom   string
	expandTo     string
	expandJSON   bool
)

func init() {
	expandCmd.Flags().StringVar(&expandItemID, "item", "", "ID of the recurring item to expand")
	expandCmd.Flags().StringVar(&expandFrom, "from", "", "range start (YYYY-MM-DD), default the schedule date")
	expandCmd.Flags().StringVar(&expandTo, "to", "", "range end (YYYY-MM-DD), inclusive")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "print occurrences as JSON")
	expandCmd.MarkFlagRequired("item")
	expandCmd.MarkFlagRequired("to")
}

func runExpand(cmd *cobra.Command, args []string) error {
	day, err := schedulefile.Load(args[0])
	if err != nil {
		return err
	}

	var anchor *schedule.ScheduleItem
	for i := range day.Items {
		if day.Items[i].ID == expandItemID {
			anchor = &day.Items[i]
			break
		}
	}
	if anchor == nil {
		return fmt.Errorf("item %q not found in %s", expandItemID, args[0])
	}
	if anchor.Recurrence == nil {
		return fmt.Errorf("item %q has no recurrence pattern", expandItemID)
	}

	from := day.Date
	if expandFrom != "" {
		from, err = parseDateFlag("from", expandFrom)
		if err != nil {
			return err
		}
	}
	to, err := parseDateFlag("to", expandTo)
	if err != nil {
		return err
	}

	occurrences, err := schedule.ExpandPattern(*anchor.Recurrence, *anchor, from, to)
	if err != nil {
		return err
	}

	if expandJSON {
		return printJSON(cmd, occurrences)
	}

	if len(occurrences) == 0 {
		cmd.Println("No occurrences in range.")
		return nil
	}

	table := ui.NewTableBuilder([]string{"DATE", "ID", "TITLE", "TIME"}, len(occurrences))
	for _, occurrence := range occurrences {
		table.AddRow(
			occurrence.Day.Format("2006-01-02"),
			occurrence.ID,
			occurrence.Title,
			occurrence.Interval.String(),
		)
	}
	cmd.Print(table.String())
	return nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, value)
	}
	return parsed, nil
}
