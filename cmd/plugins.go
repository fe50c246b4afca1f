package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the loaded question plugins and their capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		for _, f := range e.registry.Factories() {
			caps := ""
			if f.SupportsKanji() {
				caps += "kanji"
			}
			if f.SupportsWords() {
				if caps != "" {
					caps += ", "
				}
				caps += "words"
			}
			fmt.Printf("%-10s %-14s %s\n", f.Name(), "("+caps+")", f.Description())
		}
		return nil
	},
}
