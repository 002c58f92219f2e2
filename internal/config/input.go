package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// Caller-supplied parameters are validated, never defaulted silently.
var (
	maxStepUpPercent = decimal.NewFromInt(100)
	minAnnualReturn  = decimal.NewFromInt(-50)
	maxAnnualReturn  = decimal.NewFromInt(100)
)

// InputParser handles parsing of scenario input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &scenario, nil
}

// ValidateScenario validates a scenario's parameters against the sane
// domain for each mode. Invalid input is rejected before any computation
// is attempted.
func (ip *InputParser) ValidateScenario(s *domain.Scenario) error {
	switch s.Mode {
	case domain.ModeSIP, domain.ModeLumpSum, domain.ModeProjectSIP, domain.ModeProjectLumpSum:
	case "":
		return fmt.Errorf("mode is required")
	default:
		return fmt.Errorf("mode must be one of %q, %q, %q, %q",
			domain.ModeSIP, domain.ModeLumpSum, domain.ModeProjectSIP, domain.ModeProjectLumpSum)
	}

	if s.IsRecurring() {
		if s.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("monthly amount must be positive")
		}
		if s.StepUpPercent.IsNegative() || s.StepUpPercent.GreaterThan(maxStepUpPercent) {
			return fmt.Errorf("step-up percent must be between 0 and 100")
		}
	} else {
		if s.LumpSumAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("lump sum amount must be positive")
		}
	}

	if s.IsHistorical() {
		if s.SchemeCode <= 0 {
			return fmt.Errorf("scheme code is required for historical modes")
		}
		if s.StartDate.IsZero() {
			return fmt.Errorf("start date is required for historical modes")
		}
	} else {
		if s.Years < 1 || s.Years > 40 {
			return fmt.Errorf("years must be between 1 and 40")
		}
		if s.ExpectedAnnualReturn.LessThan(minAnnualReturn) || s.ExpectedAnnualReturn.GreaterThan(maxAnnualReturn) {
			return fmt.Errorf("expected annual return must be between -50%% and 100%%")
		}
	}

	return nil
}

// CreateExampleScenario returns a scenario suitable for writing out as a
// starting template.
func (ip *InputParser) CreateExampleScenario() *domain.Scenario {
	return &domain.Scenario{
		SchemeCode:           120503,
		Mode:                 domain.ModeProjectSIP,
		MonthlyAmount:        decimal.NewFromInt(5000),
		StepUpPercent:        decimal.NewFromInt(10),
		Years:                10,
		ExpectedAnnualReturn: decimal.NewFromInt(12),
	}
}
