package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfsim/fund-calculator/internal/calculation"
	"github.com/mfsim/fund-calculator/internal/config"
	"github.com/mfsim/fund-calculator/internal/domain"
)

var (
	simulateConfigFile string
	lumpsumConfigFile  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a monthly SIP against a fund's NAV history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistorical(cmd, simulateConfigFile, domain.ModeSIP)
	},
}

var lumpsumCmd = &cobra.Command{
	Use:   "lumpsum",
	Short: "Replay a one-time purchase against a fund's NAV history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistorical(cmd, lumpsumConfigFile, domain.ModeLumpSum)
	},
}

func runHistorical(cmd *cobra.Command, configFile, mode string) error {
	logger := newLogger()
	defer logger.Sync()

	parser := config.NewInputParser()
	scenario, err := parser.LoadFromFile(configFile)
	if err != nil {
		return err
	}
	if scenario.Mode != mode {
		return fmt.Errorf("scenario mode %q does not match command (want %q)", scenario.Mode, mode)
	}

	fund, series, err := fetchSeries(cmd.Context(), scenario.SchemeCode, logger)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	report, err := engine.RunScenario(cmd.Context(), series, scenario, time.Now())
	if err != nil {
		return err
	}
	report.Fund = fund
	return renderReport(report)
}

func init() {
	simulateCmd.Flags().StringVar(&simulateConfigFile, "config", "scenario.yaml", "scenario YAML file")
	lumpsumCmd.Flags().StringVar(&lumpsumConfigFile, "config", "scenario.yaml", "scenario YAML file")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(lumpsumCmd)
}
