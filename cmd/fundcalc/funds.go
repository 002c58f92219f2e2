package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfsim/fund-calculator/internal/navfeed"
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Browse the fund list",
}

var fundsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search funds by scheme name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		client := navfeed.NewClient()
		matches, err := client.SearchFunds(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No funds matched.")
			return nil
		}
		for _, f := range matches {
			fmt.Printf("%8d  %s\n", f.SchemeCode, f.SchemeName)
		}
		return nil
	},
}

func init() {
	fundsCmd.AddCommand(fundsSearchCmd)
	rootCmd.AddCommand(fundsCmd)
}
