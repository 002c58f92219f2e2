package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionEvent is a single scheduled purchase: an amount to invest on
// a given date.
type ContributionEvent struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// YearSlice aggregates one calendar year of an investment simulation.
// Cumulative fields carry forward across slices in year order.
type YearSlice struct {
	Year                    int             `json:"year"`
	InvestedThisYear        decimal.Decimal `json:"invested_this_year"`
	CumulativeInvested      decimal.Decimal `json:"cumulative_invested"`
	UnitsThisYear           decimal.Decimal `json:"units_this_year"`
	CumulativeUnits         decimal.Decimal `json:"cumulative_units"`
	ValueAtYearEnd          decimal.Decimal `json:"value_at_year_end"`
	ReturnsAtYearEnd        decimal.Decimal `json:"returns_at_year_end"`
	ReturnsPercentAtYearEnd decimal.Decimal `json:"returns_percent_at_year_end"`
	ValuationUsedForYearEnd decimal.Decimal `json:"valuation_used_for_year_end"`
}

// SimulationResult is the outcome of a historical what-if simulation.
type SimulationResult struct {
	TotalInvested     decimal.Decimal `json:"total_invested"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	TotalUnits        decimal.Decimal `json:"total_units"`
	Returns           decimal.Decimal `json:"returns"`
	ReturnsPercentage decimal.Decimal `json:"returns_percentage"`
	IsProfit          bool            `json:"is_profit"`
	YearlyBreakdown   []YearSlice     `json:"yearly_breakdown"`
}

// ProjectionResult is the outcome of a hypothetical future projection. It
// carries no time series; the formulas are closed-form or iterative over
// user-supplied parameters only.
type ProjectionResult struct {
	TotalInvested     decimal.Decimal `json:"total_invested"`
	FutureValue       decimal.Decimal `json:"future_value"`
	Returns           decimal.Decimal `json:"returns"`
	ReturnsPercentage decimal.Decimal `json:"returns_percentage"`
	IsProfit          bool            `json:"is_profit"`
}

// TrailingReturn is the percentage change from a look-back window's start
// valuation to the latest valuation.
type TrailingReturn struct {
	Window        string          `json:"window"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	IsPositive    bool            `json:"is_positive"`
}

// Report bundles everything a single scenario run produces for the
// presentation layer.
type Report struct {
	Fund            *Fund             `json:"fund,omitempty"`
	Scenario        Scenario          `json:"scenario"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Simulation      *SimulationResult `json:"simulation,omitempty"`
	Projection      *ProjectionResult `json:"projection,omitempty"`
	TrailingReturns []TrailingReturn  `json:"trailing_returns,omitempty"`
}
