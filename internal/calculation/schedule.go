package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
	"github.com/mfsim/fund-calculator/pkg/dateutil"
)

// GenerateSchedule produces the monthly contribution events from start
// through end (inclusive). Each event keeps the anchor's day-of-month,
// clipped to the length of short months. With a non-zero stepUpPercent the
// amount grows by that percentage at every calendar-year boundary relative
// to the start year and stays constant within a year.
//
// The function is pure: identical arguments always yield an identical
// sequence, and generation is bounded by the number of months between
// start and end.
func GenerateSchedule(start, end time.Time, baseAmount, stepUpPercent decimal.Decimal) []domain.ContributionEvent {
	if end.Before(start) {
		return nil
	}

	growth := decimal.NewFromInt(1).Add(stepUpPercent.Div(decimal.NewFromInt(100)))

	events := make([]domain.ContributionEvent, 0, dateutil.MonthsBetween(start, end)+1)
	amount := baseAmount
	yearOffset := 0
	for i := 0; ; i++ {
		current := dateutil.AddMonthsClipped(start, i)
		if current.After(end) {
			break
		}
		if k := current.Year() - start.Year(); k != yearOffset {
			// Amount changes only at a year-offset boundary.
			amount = baseAmount.Mul(growth.Pow(decimal.NewFromInt(int64(k))))
			yearOffset = k
		}
		events = append(events, domain.ContributionEvent{Date: current, Amount: amount})
	}
	return events
}
