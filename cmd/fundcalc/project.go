package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfsim/fund-calculator/internal/calculation"
	"github.com/mfsim/fund-calculator/internal/config"
	"github.com/mfsim/fund-calculator/internal/domain"
)

var projectConfigFile string

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a hypothetical future investment outcome",
	Long: `project computes the future value of a SIP, step-up SIP or lump sum
using the expected annual return from the scenario file. No NAV history is
required unless a scheme code is given, in which case trailing returns are
included in the report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(projectConfigFile)
		if err != nil {
			return err
		}
		if scenario.IsHistorical() {
			return fmt.Errorf("scenario mode %q is historical; use simulate or lumpsum", scenario.Mode)
		}

		series := domain.NewValuationSeries(nil)
		var fund *domain.Fund
		if scenario.SchemeCode > 0 {
			fund, series, err = fetchSeries(cmd.Context(), scenario.SchemeCode, logger)
			if err != nil {
				return err
			}
		}

		engine := calculation.NewCalculationEngine()
		engine.SetLogger(logger)
		report, err := engine.RunScenario(cmd.Context(), series, scenario, time.Now())
		if err != nil {
			return err
		}
		report.Fund = fund
		return renderReport(report)
	},
}

func init() {
	projectCmd.Flags().StringVar(&projectConfigFile, "config", "scenario.yaml", "scenario YAML file")
	rootCmd.AddCommand(projectCmd)
}
