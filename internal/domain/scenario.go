package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scenario modes. Historical modes replay the fund's valuation series;
// projection modes need only the numeric parameters.
const (
	ModeSIP            = "sip"
	ModeLumpSum        = "lumpsum"
	ModeProjectSIP     = "project-sip"
	ModeProjectLumpSum = "project-lumpsum"
)

// Scenario is the caller-supplied description of one investment scenario.
type Scenario struct {
	SchemeCode int    `yaml:"scheme_code" json:"scheme_code"`
	Mode       string `yaml:"mode" json:"mode"`

	// Recurring contribution parameters (sip / project-sip).
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	StepUpPercent decimal.Decimal `yaml:"step_up_percent" json:"step_up_percent"`

	// One-time contribution parameters (lumpsum / project-lumpsum).
	LumpSumAmount decimal.Decimal `yaml:"lumpsum_amount" json:"lumpsum_amount"`

	// Historical modes: first contribution / purchase date.
	StartDate time.Time `yaml:"start_date" json:"start_date"`

	// Projection modes: horizon and assumed market return.
	Years                int             `yaml:"years" json:"years"`
	ExpectedAnnualReturn decimal.Decimal `yaml:"expected_annual_return" json:"expected_annual_return"`
}

// IsHistorical reports whether the scenario replays the valuation series.
func (s *Scenario) IsHistorical() bool {
	return s.Mode == ModeSIP || s.Mode == ModeLumpSum
}

// IsRecurring reports whether the scenario contributes monthly.
func (s *Scenario) IsRecurring() bool {
	return s.Mode == ModeSIP || s.Mode == ModeProjectSIP
}

// Amount returns the contribution amount relevant for the scenario's mode.
func (s *Scenario) Amount() decimal.Decimal {
	if s.IsRecurring() {
		return s.MonthlyAmount
	}
	return s.LumpSumAmount
}
