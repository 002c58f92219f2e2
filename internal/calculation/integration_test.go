package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// End-to-end engine runs over a synthetic NAV history.

func engineSeries() *domain.ValuationSeries {
	var records []domain.ValuationRecord
	nav := decimal.NewFromInt(100)
	for i := 0; i < 48; i++ {
		d := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		records = append(records, domain.ValuationRecord{Date: d, Value: nav})
		nav = nav.Add(decimal.NewFromInt(1))
	}
	return domain.NewValuationSeries(records)
}

func TestEngineRunSIPScenario(t *testing.T) {
	engine := NewCalculationEngine()
	series := engineSeries()
	asOf := time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC)

	scenario := &domain.Scenario{
		Mode:          domain.ModeSIP,
		MonthlyAmount: decimal.NewFromInt(1000),
		StartDate:     time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	report, err := engine.RunScenario(context.Background(), series, scenario, asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Simulation == nil {
		t.Fatalf("expected a simulation result")
	}
	if report.Projection != nil {
		t.Fatalf("SIP mode must not produce a projection")
	}
	if len(report.TrailingReturns) == 0 {
		t.Fatalf("expected trailing returns alongside the simulation")
	}

	sim := report.Simulation
	// 48 contributions of 1000 into a rising NAV.
	if !sim.TotalInvested.Equal(decimal.NewFromInt(48000)) {
		t.Fatalf("expected 48000 invested, got %s", sim.TotalInvested)
	}
	if !sim.IsProfit {
		t.Fatalf("rising NAV must be profitable")
	}
	if len(sim.YearlyBreakdown) != 4 {
		t.Fatalf("expected 4 year slices, got %d", len(sim.YearlyBreakdown))
	}
}

func TestEngineRejectsStartOutsideSeries(t *testing.T) {
	engine := NewCalculationEngine()
	series := engineSeries()
	asOf := time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC)

	scenario := &domain.Scenario{
		Mode:          domain.ModeSIP,
		MonthlyAmount: decimal.NewFromInt(1000),
		StartDate:     time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	if _, err := engine.RunScenario(context.Background(), series, scenario, asOf); err == nil {
		t.Fatalf("expected start date outside series to be rejected")
	}
}

func TestEngineRejectsUnknownMode(t *testing.T) {
	engine := NewCalculationEngine()
	scenario := &domain.Scenario{Mode: "xirr"}

	_, err := engine.RunScenario(context.Background(), domain.NewValuationSeries(nil), scenario, time.Now())
	if err == nil {
		t.Fatalf("expected unknown mode to be rejected")
	}
}

func TestEngineProjectionModes(t *testing.T) {
	engine := NewCalculationEngine()
	empty := domain.NewValuationSeries(nil)

	scenario := &domain.Scenario{
		Mode:                 domain.ModeProjectSIP,
		MonthlyAmount:        decimal.NewFromInt(5000),
		Years:                10,
		ExpectedAnnualReturn: decimal.NewFromInt(12),
	}
	report, err := engine.RunScenario(context.Background(), empty, scenario, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Projection == nil || report.Simulation != nil {
		t.Fatalf("projection mode must produce only a projection")
	}

	// Step-up routes through the iterative projection.
	scenario.StepUpPercent = decimal.NewFromInt(10)
	stepped, err := engine.RunScenario(context.Background(), empty, scenario, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stepped.Projection.TotalInvested.GreaterThan(report.Projection.TotalInvested) {
		t.Fatalf("step-up must invest more than the flat SIP")
	}

	lump := &domain.Scenario{
		Mode:                 domain.ModeProjectLumpSum,
		LumpSumAmount:        decimal.NewFromInt(100000),
		Years:                5,
		ExpectedAnnualReturn: decimal.NewFromInt(10),
	}
	lumpReport, err := engine.RunScenario(context.Background(), empty, lump, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lumpReport.Projection.FutureValue.GreaterThan(lump.LumpSumAmount) {
		t.Fatalf("positive rate must grow the lump sum")
	}
}

func TestEngineLumpSumEmptySeriesSurfacesError(t *testing.T) {
	engine := NewCalculationEngine()
	scenario := &domain.Scenario{
		Mode:          domain.ModeLumpSum,
		LumpSumAmount: decimal.NewFromInt(100000),
		StartDate:     time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := engine.RunScenario(context.Background(), domain.NewValuationSeries(nil), scenario,
		time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatalf("lump sum against an empty series must fail, not zero-fill")
	}
}
