package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
	"github.com/mfsim/fund-calculator/pkg/money"
)

// ConsoleFormatter renders the report as a plain-text summary with an
// aligned yearly-breakdown table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var b strings.Builder

	if report.Fund != nil {
		fmt.Fprintf(&b, "%s\n", report.Fund.SchemeName)
		if report.Fund.FundHouse != "" {
			fmt.Fprintf(&b, "%s | %s\n", report.Fund.FundHouse, report.Fund.SchemeCategory)
		}
		fmt.Fprintf(&b, "Scheme code: %d\n", report.Fund.SchemeCode)
		b.WriteString("\n")
	}

	if sim := report.Simulation; sim != nil {
		b.WriteString("Investment summary\n")
		b.WriteString("------------------\n")
		fmt.Fprintf(&b, "  Invested:      %s\n", money.NewMoneyFromDecimal(sim.TotalInvested).Format())
		fmt.Fprintf(&b, "  Current value: %s\n", money.NewMoneyFromDecimal(sim.CurrentValue).Format())
		fmt.Fprintf(&b, "  Units held:    %s\n", sim.TotalUnits.StringFixed(4))
		fmt.Fprintf(&b, "  Returns:       %s (%s%%)\n",
			money.NewMoneyFromDecimal(sim.Returns).Format(), sim.ReturnsPercentage.StringFixed(2))
		fmt.Fprintf(&b, "  Profit:        %s\n", yesNo(sim.IsProfit))
		b.WriteString("\n")

		if len(sim.YearlyBreakdown) > 0 {
			b.WriteString("Year-by-year breakdown\n")
			fmt.Fprintf(&b, "  %-6s %14s %14s %14s %12s\n",
				"Year", "Invested", "Cum.Invested", "Value(YE)", "Return%")
			for _, s := range sim.YearlyBreakdown {
				fmt.Fprintf(&b, "  %-6d %14s %14s %14s %11s%%\n",
					s.Year,
					money.NewMoneyFromDecimal(s.InvestedThisYear).String(),
					money.NewMoneyFromDecimal(s.CumulativeInvested).String(),
					money.NewMoneyFromDecimal(s.ValueAtYearEnd).String(),
					s.ReturnsPercentAtYearEnd.StringFixed(2))
			}
			b.WriteString("\n")
		}
	}

	if proj := report.Projection; proj != nil {
		b.WriteString("Projection\n")
		b.WriteString("----------\n")
		fmt.Fprintf(&b, "  Invested:     %s\n", money.NewMoneyFromDecimal(proj.TotalInvested).Format())
		fmt.Fprintf(&b, "  Future value: %s\n", money.NewMoneyFromDecimal(proj.FutureValue).Format())
		fmt.Fprintf(&b, "  Returns:      %s (%s%%)\n",
			money.NewMoneyFromDecimal(proj.Returns).Format(), proj.ReturnsPercentage.StringFixed(2))
		b.WriteString("\n")
	}

	if len(report.TrailingReturns) > 0 {
		b.WriteString("Trailing returns\n")
		for _, tr := range report.TrailingReturns {
			fmt.Fprintf(&b, "  %-4s %s%%\n", tr.Window, signedPercent(tr.ChangePercent))
		}
	}

	return []byte(b.String()), nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func signedPercent(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !d.IsNegative() {
		return "+" + s
	}
	return s
}
