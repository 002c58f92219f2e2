package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
	"github.com/mfsim/fund-calculator/pkg/dateutil"
)

// Window is a trailing-return look-back period.
type Window int

const (
	// WindowAll spans from the earliest record to the latest.
	WindowAll Window = 0

	Window1M Window = 1
	Window3M Window = 3
	Window6M Window = 6
	Window1Y Window = 12
	Window3Y Window = 36
	Window5Y Window = 60
)

// Windows lists the supported look-back periods in display order.
var Windows = []Window{Window1M, Window3M, Window6M, Window1Y, Window3Y, Window5Y, WindowAll}

// Months returns the window length in months; zero means the full series.
func (w Window) Months() int {
	return int(w)
}

func (w Window) String() string {
	switch w {
	case WindowAll:
		return "ALL"
	case Window1M:
		return "1M"
	case Window3M:
		return "3M"
	case Window6M:
		return "6M"
	case Window1Y:
		return "1Y"
	case Window3Y:
		return "3Y"
	case Window5Y:
		return "5Y"
	}
	return "?"
}

// TrailingReturn computes the percentage change from the window's start
// valuation to the latest valuation. The start is the record nearest
// (asOf − window months), or the earliest record for WindowAll. An empty
// series or a zero start valuation yields ok=false; the latter would
// otherwise divide by zero.
func TrailingReturn(series *domain.ValuationSeries, w Window, asOf time.Time) (domain.TrailingReturn, bool) {
	latest, ok := series.Latest()
	if !ok {
		return domain.TrailingReturn{}, false
	}

	var start domain.ValuationRecord
	if w == WindowAll {
		start, _ = series.Earliest()
	} else {
		cutoff := dateutil.AddMonthsClipped(asOf, -w.Months())
		start, _ = series.Nearest(cutoff)
	}
	if start.Value.IsZero() {
		return domain.TrailingReturn{}, false
	}

	change := latest.Value.Sub(start.Value).Div(start.Value).Mul(hundred)
	return domain.TrailingReturn{
		Window:        w.String(),
		ChangePercent: change,
		IsPositive:    change.GreaterThanOrEqual(decimal.Zero),
	}, true
}

// AllTrailingReturns computes every supported window against the series,
// omitting windows the series cannot serve.
func AllTrailingReturns(series *domain.ValuationSeries, asOf time.Time) []domain.TrailingReturn {
	var out []domain.TrailingReturn
	for _, w := range Windows {
		if tr, ok := TrailingReturn(series, w, asOf); ok {
			out = append(out, tr)
		}
	}
	return out
}
