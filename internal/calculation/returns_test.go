package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfsim/fund-calculator/internal/domain"
)

func TestTrailingReturnAllWindow(t *testing.T) {
	series := domain.NewValuationSeries([]domain.ValuationRecord{
		navRec(2020, time.January, 1, 10),
		navRec(2023, time.January, 1, 20),
	})

	tr, ok := TrailingReturn(series, WindowAll, date(2023, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, "ALL", tr.Window)
	assert.True(t, tr.ChangePercent.Equal(decimal.NewFromInt(100)), "change %s", tr.ChangePercent)
	assert.True(t, tr.IsPositive)
}

func TestTrailingReturnFiniteWindow(t *testing.T) {
	series := domain.NewValuationSeries([]domain.ValuationRecord{
		navRec(2022, time.June, 1, 10),
		navRec(2022, time.December, 1, 8),
		navRec(2023, time.June, 1, 12),
	})
	asOf := date(2023, time.June, 1)

	// 6M window: cutoff 2022-12-01 hits that record exactly; 8 -> 12.
	tr, ok := TrailingReturn(series, Window6M, asOf)
	require.True(t, ok)
	assert.True(t, tr.ChangePercent.Equal(decimal.NewFromInt(50)), "change %s", tr.ChangePercent)
	assert.True(t, tr.IsPositive)

	// 1Y window: cutoff 2022-06-01; 10 -> 12.
	tr, ok = TrailingReturn(series, Window1Y, asOf)
	require.True(t, ok)
	assert.True(t, tr.ChangePercent.Equal(decimal.NewFromInt(20)), "change %s", tr.ChangePercent)
}

func TestTrailingReturnNegativeChange(t *testing.T) {
	series := domain.NewValuationSeries([]domain.ValuationRecord{
		navRec(2022, time.January, 1, 20),
		navRec(2023, time.January, 1, 15),
	})

	tr, ok := TrailingReturn(series, WindowAll, date(2023, time.January, 1))
	require.True(t, ok)
	assert.True(t, tr.ChangePercent.Equal(decimal.NewFromInt(-25)))
	assert.False(t, tr.IsPositive)
}

func TestTrailingReturnEmptySeries(t *testing.T) {
	series := domain.NewValuationSeries(nil)
	_, ok := TrailingReturn(series, Window1M, date(2023, time.January, 1))
	assert.False(t, ok)
}

func TestTrailingReturnZeroStartValuationGuarded(t *testing.T) {
	series := domain.NewValuationSeries([]domain.ValuationRecord{
		{Date: date(2020, time.January, 1), Value: decimal.Zero},
		navRec(2023, time.January, 1, 20),
	})

	_, ok := TrailingReturn(series, WindowAll, date(2023, time.January, 1))
	assert.False(t, ok, "zero start valuation must yield no result, not a division by zero")
}

func TestAllTrailingReturnsOrderAndWindows(t *testing.T) {
	series := domain.NewValuationSeries([]domain.ValuationRecord{
		navRec(2015, time.January, 1, 10),
		navRec(2023, time.January, 1, 30),
	})

	rets := AllTrailingReturns(series, date(2023, time.January, 1))
	require.Len(t, rets, len(Windows))
	assert.Equal(t, "1M", rets[0].Window)
	assert.Equal(t, "ALL", rets[len(rets)-1].Window)
}
