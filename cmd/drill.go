package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayasuda/kanjidrill/internal/session"
)

// drillCmd runs one drill session inline on stdin/stdout, for terminals
// (or scripts) where the full-screen TUI is unwanted.
var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Build a test set and run it inline without the TUI",
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
		return session.RunConsole(cmd.Context(), e.store.Sets(), set, report,
			e.cfg.ProfileID, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
