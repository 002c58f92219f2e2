package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// CSVFormatter exports the yearly breakdown (or the single projection row)
// as CSV for spreadsheet use.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if sim := report.Simulation; sim != nil {
		header := []string{
			"year", "invested_this_year", "cumulative_invested",
			"units_this_year", "cumulative_units",
			"value_at_year_end", "returns_at_year_end", "returns_percent_at_year_end",
		}
		if err := w.Write(header); err != nil {
			return nil, err
		}
		for _, s := range sim.YearlyBreakdown {
			row := []string{
				strconv.Itoa(s.Year),
				s.InvestedThisYear.StringFixed(2),
				s.CumulativeInvested.StringFixed(2),
				s.UnitsThisYear.StringFixed(4),
				s.CumulativeUnits.StringFixed(4),
				s.ValueAtYearEnd.StringFixed(2),
				s.ReturnsAtYearEnd.StringFixed(2),
				s.ReturnsPercentAtYearEnd.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if proj := report.Projection; proj != nil {
		if err := w.Write([]string{"total_invested", "future_value", "returns", "returns_percentage"}); err != nil {
			return nil, err
		}
		row := []string{
			proj.TotalInvested.StringFixed(2),
			proj.FutureValue.StringFixed(2),
			proj.Returns.StringFixed(2),
			proj.ReturnsPercentage.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
