package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dayplan/internal/ui"
	"dayplan/schedule"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <schedule-file>...",
	Short: "Find ranked free slots for an unscheduled item",
	Long: `Find and rank free time slots for an item of the given duration.

Slots are searched across the supplied day files in date order: earlier days
score higher, as do tighter duration fits and higher priorities. An item due
soon boosts slots further. No matching slot is not an error; the search just
comes back empty.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

var (
	suggestMinutes  int
	suggestPriority string
	suggestDue      string
	suggestItemID   string
	suggestJSON     bool
)

func init() {
	suggestCmd.Flags().IntVar(&suggestMinutes, "minutes", 0, "required duration in minutes")
	suggestCmd.Flags().StringVar(&suggestPriority, "priority", "medium", "item priority (critical|urgent|high|medium|low)")
	suggestCmd.Flags().StringVar(&suggestDue, "due", "", "due date (YYYY-MM-DD)")
	suggestCmd.Flags().StringVar(&suggestItemID, "item", "", "ID of the item the suggestion targets")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "print suggestions as JSON")
	addScheduleFlagAliases(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	days, err := loadSchedules(args)
	if err != nil {
		return err
	}

	candidate := schedule.Candidate{
		ItemID:          suggestItemID,
		DurationMinutes: suggestMinutes,
		Priority:        schedule.Priority(suggestPriority),
	}
	if suggestDue != "" {
		due, err := time.ParseInLocation("2006-01-02", suggestDue, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", suggestDue)
		}
		candidate.DueDate = &due
	}

	suggestions, err := schedule.GenerateSuggestions(candidate, days, cfg.SuggestOptions())
	if err != nil {
		return err
	}

	if suggestJSON {
		if suggestions == nil {
			suggestions = []schedule.Suggestion{}
		}
		return printJSON(cmd, suggestions)
	}

	if len(suggestions) == 0 {
		cmd.Println("No slot long enough on any candidate day.")
		return nil
	}

	table := ui.NewTableBuilder([]string{"DATE", "SLOT", "LENGTH", "FIT", "CONFIDENCE", "FACTORS"}, len(suggestions))
	for _, suggestion := range suggestions {
		table.AddRow(
			suggestion.Slot.Date.Format("2006-01-02"),
			suggestion.Slot.Interval.String(),
			ui.FormatMinutes(suggestion.Slot.Interval.Minutes()),
			string(suggestion.Slot.Availability),
			fmt.Sprintf("%.2f", suggestion.Confidence),
			strings.Join(suggestion.Factors, "; "),
		)
	}
	cmd.Print(table.String())
	return nil
}
