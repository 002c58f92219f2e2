package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mfsim/fund-calculator/internal/domain"
	"github.com/mfsim/fund-calculator/internal/navfeed"
	"github.com/mfsim/fund-calculator/internal/output"
)

var (
	formatFlag  string
	outputFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fundcalc",
	Short: "Mutual fund SIP and lump sum investment calculator",
	Long: `fundcalc simulates historical mutual fund investments against real NAV
history and projects hypothetical future outcomes for SIP, step-up SIP and
lump sum strategies.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "console", "output format: console, json or csv")
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", "", "write the report to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the CLI logger. The engine accepts any Sugared-style
// logger, so zap plugs straight into its Logger interface.
func newLogger() *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if verboseFlag {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// fetchSeries pulls a scheme's metadata and NAV history and builds the
// valuation series.
func fetchSeries(ctx context.Context, schemeCode int, logger *zap.SugaredLogger) (*domain.Fund, *domain.ValuationSeries, error) {
	client := navfeed.NewClient()
	details, err := client.FundDetails(ctx, schemeCode)
	if err != nil {
		return nil, nil, err
	}
	series, skipped := navfeed.BuildSeries(details.Data)
	if skipped > 0 {
		logger.Warnf("skipped %d malformed NAV records for scheme %d", skipped, schemeCode)
	}
	logger.Debugf("loaded %d NAV records for scheme %d", series.Len(), schemeCode)
	return details.Fund(), series, nil
}

// renderReport formats the report and writes it to stdout or --output.
func renderReport(report *domain.Report) error {
	formatter, err := output.GetFormatterByName(formatFlag)
	if err != nil {
		return err
	}
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, data, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", outputFlag)
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
