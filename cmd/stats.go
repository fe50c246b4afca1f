package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show coverage and accuracy for past test sets",
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
			fmt.Println("No drills taken yet.")
			return nil
		}

		fmt.Printf("%-6s %-18s %-9s %-9s %s\n", "SET", "DATE", "ANSWERED", "CORRECT", "QUESTIONS")
		for _, set := range sets {
			date := set.CreatedAt.Format("2006-01-02 15:04")
			coverage, err := set.Coverage()
			if err != nil {
				fmt.Printf("#%-5d %-18s %-9s %-9s %d\n", set.ID, date, "—", "—", 0)
				continue
			}
			accuracy, _ := set.Accuracy()
			fmt.Printf("#%-5d %-18s %-9s %-9s %d\n",
				set.ID, date,
				fmt.Sprintf("%.0f%%", coverage*100),
				fmt.Sprintf("%.0f%%", accuracy*100),
				len(set.Questions))
		}
		return nil
	},
}
