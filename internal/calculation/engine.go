package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// CalculationEngine orchestrates scenario runs: it validates the scenario
// against the series, builds the contribution schedule, runs the
// appropriate simulator or projection and assembles the report.
//
// The engine holds no mutable state between runs; every entry point is a
// pure function of its inputs, so it is safe to reuse across funds and
// datasets.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario executes one scenario against the fund's valuation series and
// returns the full report. Historical modes require a non-empty series
// (lump sum) or degrade to zero totals (SIP); projection modes ignore the
// series except for the trailing-return section.
func (ce *CalculationEngine) RunScenario(ctx context.Context, series *domain.ValuationSeries, scenario *domain.Scenario, asOf time.Time) (*domain.Report, error) {
	report := &domain.Report{
		Scenario:    *scenario,
		GeneratedAt: asOf,
	}

	currentNAV := decimal.Zero
	if latest, ok := series.Latest(); ok {
		currentNAV = latest.Value
	}

	switch scenario.Mode {
	case domain.ModeSIP:
		if err := ce.checkStartDate(series, scenario.StartDate, asOf); err != nil {
			return nil, err
		}
		events := GenerateSchedule(scenario.StartDate, asOf, scenario.MonthlyAmount, scenario.StepUpPercent)
		ce.Logger.Debugf("generated %d contribution events from %s", len(events), scenario.StartDate.Format("2006-01-02"))
		result := SimulateSIP(series, events, currentNAV, asOf)
		report.Simulation = &result

	case domain.ModeLumpSum:
		if err := ce.checkStartDate(series, scenario.StartDate, asOf); err != nil {
			return nil, err
		}
		result, err := SimulateLumpSum(series, scenario.StartDate, scenario.LumpSumAmount, currentNAV, asOf)
		if err != nil {
			return nil, fmt.Errorf("lump sum simulation: %w", err)
		}
		report.Simulation = &result

	case domain.ModeProjectSIP:
		var result domain.ProjectionResult
		if scenario.StepUpPercent.IsPositive() {
			result = ProjectStepUpSIP(scenario.MonthlyAmount, scenario.Years, scenario.ExpectedAnnualReturn, scenario.StepUpPercent)
		} else {
			result = ProjectSIP(scenario.MonthlyAmount, scenario.Years, scenario.ExpectedAnnualReturn)
		}
		report.Projection = &result

	case domain.ModeProjectLumpSum:
		result := ProjectLumpSum(scenario.LumpSumAmount, scenario.Years, scenario.ExpectedAnnualReturn)
		report.Projection = &result

	default:
		return nil, fmt.Errorf("unknown scenario mode %q", scenario.Mode)
	}

	report.TrailingReturns = AllTrailingReturns(series, asOf)
	return report, nil
}

// checkStartDate rejects historical start dates that fall outside the
// months the series actually covers.
func (ce *CalculationEngine) checkStartDate(series *domain.ValuationSeries, start, asOf time.Time) error {
	if start.IsZero() {
		return fmt.Errorf("start date is required for historical modes")
	}
	if start.After(asOf) {
		return fmt.Errorf("start date %s is in the future", start.Format("2006-01-02"))
	}
	earliest, ok := series.Earliest()
	if !ok {
		// SIP mode tolerates an empty series; the simulator decides.
		return nil
	}
	latest, _ := series.Latest()
	if start.Before(time.Date(earliest.Date.Year(), earliest.Date.Month(), 1, 0, 0, 0, 0, time.UTC)) ||
		start.After(latest.Date) {
		return fmt.Errorf("start date %s is outside the fund's valuation history (%s to %s)",
			start.Format("2006-01-02"), earliest.Date.Format("2006-01-02"), latest.Date.Format("2006-01-02"))
	}
	return nil
}
