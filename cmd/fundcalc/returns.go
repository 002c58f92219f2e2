package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mfsim/fund-calculator/internal/calculation"
	"github.com/mfsim/fund-calculator/internal/domain"
)

var returnsSchemeCode int

var returnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Show trailing returns for a fund",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		fund, series, err := fetchSeries(cmd.Context(), returnsSchemeCode, logger)
		if err != nil {
			return err
		}

		report := &domain.Report{
			Fund:            fund,
			Scenario:        domain.Scenario{SchemeCode: returnsSchemeCode},
			GeneratedAt:     time.Now(),
			TrailingReturns: calculation.AllTrailingReturns(series, time.Now()),
		}
		return renderReport(report)
	},
}

func init() {
	returnsCmd.Flags().IntVar(&returnsSchemeCode, "scheme", 0, "scheme code of the fund")
	returnsCmd.MarkFlagRequired("scheme")
	rootCmd.AddCommand(returnsCmd)
}
