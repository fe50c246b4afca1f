package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildCmd builds a test set without entering the TUI, printing the
// partial-success report. Useful for scripting and for inspecting what
// the builder produces for the current syllabus and plugin set.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a test set and print the build report",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		set, report, err := e.builder.BuildTestSet(cmd.Context(), e.cfg.ProfileID)
		if err != nil {
			return err
		}

		fmt.Printf("test set #%d (seed %d): %d/%d questions\n",
			set.ID, set.Seed, report.Built, report.Requested)
		for _, q := range set.OrderedQuestions() {
			fmt.Printf("  [%s] %s  (%s, %d options)\n", q.Type, q.Pivot.Value, q.Plugin, len(q.Options))
		}
		for _, skip := range report.Skipped {
			fmt.Printf("  skipped %s: %v\n", skip.Item.Pivot, skip.Reason)
		}
		return nil
	},
}
