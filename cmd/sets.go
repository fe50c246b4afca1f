package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List stored test sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sets, err := e.store.Sets().List(cmd.Context(), e.cfg.ProfileID)
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			fmt.Println("No test sets stored yet.")
			return nil
		}

		fmt.Printf("%-6s %-18s %-12s %-10s %s\n", "SET", "DATE", "SEED", "QUESTIONS", "RESPONSES")
		for _, set := range sets {
			fmt.Printf("#%-5d %-18s %-12d %-10d %d\n",
				set.ID,
				set.CreatedAt.Format("2006-01-02 15:04"),
				set.Seed,
				len(set.Questions),
				len(set.Responses))
		}
		return nil
	},
}
