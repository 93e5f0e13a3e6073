package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decafteam/decafc/internal/fixtures"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the fixture programs available to 'decafc check'",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fixtures.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
