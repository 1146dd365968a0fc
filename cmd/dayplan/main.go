// Package main implements the dayplan CLI tool.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayplan/internal/config"
	"dayplan/internal/schedulefile"
	"dayplan/schedule"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Dayplan - daily schedule conflicts, statistics, and placement suggestions",
}

func init() {
	rootCmd.AddCommand(showCmd, conflictsCmd, statsCmd, suggestCmd, expandCmd, reportCmd, versionCmd)
}

// loadEngineConfig reads dayplan.toml settings from the working directory
// and the global config file.
func loadEngineConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.Load(cwd)
}

// loadSchedules decodes one day file per argument.
func loadSchedules(paths []string) ([]schedule.DailySchedule, error) {
	days := make([]schedule.DailySchedule, 0, len(paths))
	for _, path := range paths {
		day, err := schedulefile.Load(path)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// printJSON writes an indented JSON document to stdout.
func printJSON(cmd *cobra.Command, value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
