package calculation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
	"github.com/mfsim/fund-calculator/pkg/dateutil"
)

// ErrNoValuationAvailable is returned when a simulation needs a single
// required price point and the series cannot provide one.
var ErrNoValuationAvailable = errors.New("no valuation available for purchase date")

var hundred = decimal.NewFromInt(100)

// SimulateSIP replays a contribution schedule against the valuation series.
// Each event buys units at the valuation nearest its date; totals and the
// per-year breakdown accumulate in event order. Events that find no
// valuation (only possible on an empty series) are skipped, degrading to an
// all-zero result rather than an error: the schedule entries are placeholders
// without a price, not a failure.
//
// currentNAV values the accumulated units today and closes the asOf-year
// slice; past years close at the valuation nearest Dec 31.
func SimulateSIP(series *domain.ValuationSeries, events []domain.ContributionEvent, currentNAV decimal.Decimal, asOf time.Time) domain.SimulationResult {
	totalInvested := decimal.Zero
	totalUnits := decimal.Zero

	var slices []domain.YearSlice
	sliceIdx := map[int]int{}

	for _, ev := range events {
		rec, ok := series.Nearest(ev.Date)
		if !ok || !rec.Value.IsPositive() {
			continue
		}
		units := ev.Amount.Div(rec.Value)
		totalInvested = totalInvested.Add(ev.Amount)
		totalUnits = totalUnits.Add(units)

		year := ev.Date.Year()
		idx, seen := sliceIdx[year]
		if !seen {
			idx = len(slices)
			sliceIdx[year] = idx
			slices = append(slices, domain.YearSlice{Year: year})
		}
		s := &slices[idx]
		s.InvestedThisYear = s.InvestedThisYear.Add(ev.Amount)
		s.UnitsThisYear = s.UnitsThisYear.Add(units)
		s.CumulativeInvested = totalInvested
		s.CumulativeUnits = totalUnits
	}

	closeYearSlices(slices, series, currentNAV, asOf)
	return finalizeSimulation(totalInvested, totalUnits, currentNAV, slices)
}

// SimulateLumpSum simulates a single purchase held from purchaseDate until
// asOf. Unlike the schedule mode an empty series is a hard error: a lump
// sum with no purchase price is meaningless.
func SimulateLumpSum(series *domain.ValuationSeries, purchaseDate time.Time, amount, currentNAV decimal.Decimal, asOf time.Time) (domain.SimulationResult, error) {
	rec, ok := series.Nearest(purchaseDate)
	if !ok {
		return domain.SimulationResult{}, ErrNoValuationAvailable
	}
	if !rec.Value.IsPositive() {
		return domain.SimulationResult{}, ErrNoValuationAvailable
	}

	units := amount.Div(rec.Value)

	lastYear := asOf.Year()
	if lastYear < purchaseDate.Year() {
		lastYear = purchaseDate.Year()
	}

	var slices []domain.YearSlice
	for year := purchaseDate.Year(); year <= lastYear; year++ {
		s := domain.YearSlice{
			Year:               year,
			CumulativeInvested: amount,
			CumulativeUnits:    units,
		}
		if year == purchaseDate.Year() {
			s.InvestedThisYear = amount
			s.UnitsThisYear = units
		} else {
			s.InvestedThisYear = decimal.Zero
			s.UnitsThisYear = decimal.Zero
		}
		slices = append(slices, s)
	}

	closeYearSlices(slices, series, currentNAV, asOf)
	return finalizeSimulation(amount, units, currentNAV, slices), nil
}

// closeYearSlices resolves each slice's year-end valuation and derives its
// value and returns. The asOf year uses the supplied current valuation;
// earlier years use the record nearest their Dec 31.
func closeYearSlices(slices []domain.YearSlice, series *domain.ValuationSeries, currentNAV decimal.Decimal, asOf time.Time) {
	for i := range slices {
		s := &slices[i]
		valuation := currentNAV
		if s.Year != asOf.Year() {
			yearEnd := dateutil.EndOfYear(time.Date(s.Year, 1, 1, 0, 0, 0, 0, time.UTC))
			if rec, ok := series.Nearest(yearEnd); ok {
				valuation = rec.Value
			}
		}
		s.ValuationUsedForYearEnd = valuation
		s.ValueAtYearEnd = s.CumulativeUnits.Mul(valuation)
		s.ReturnsAtYearEnd = s.ValueAtYearEnd.Sub(s.CumulativeInvested)
		if s.CumulativeInvested.IsPositive() {
			s.ReturnsPercentAtYearEnd = s.ReturnsAtYearEnd.Div(s.CumulativeInvested).Mul(hundred)
		} else {
			s.ReturnsPercentAtYearEnd = decimal.Zero
		}
	}
}

func finalizeSimulation(totalInvested, totalUnits, currentNAV decimal.Decimal, slices []domain.YearSlice) domain.SimulationResult {
	currentValue := totalUnits.Mul(currentNAV)
	returns := currentValue.Sub(totalInvested)
	pct := decimal.Zero
	if totalInvested.IsPositive() {
		pct = returns.Div(totalInvested).Mul(hundred)
	}
	return domain.SimulationResult{
		TotalInvested:     totalInvested,
		CurrentValue:      currentValue,
		TotalUnits:        totalUnits,
		Returns:           returns,
		ReturnsPercentage: pct,
		IsProfit:          returns.GreaterThanOrEqual(decimal.Zero),
		YearlyBreakdown:   slices,
	}
}
