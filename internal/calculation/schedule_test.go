package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateScheduleMonthlyCadence(t *testing.T) {
	events := GenerateSchedule(
		date(2020, time.March, 5), date(2020, time.July, 5),
		decimal.NewFromInt(1000), decimal.Zero,
	)

	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, date(2020, time.Month(3+i), 5), ev.Date)
		assert.True(t, ev.Amount.Equal(decimal.NewFromInt(1000)))
	}
}

func TestGenerateScheduleInclusiveEndBoundary(t *testing.T) {
	// End exactly on a contribution date: that event is included.
	events := GenerateSchedule(
		date(2020, time.January, 15), date(2020, time.March, 15),
		decimal.NewFromInt(500), decimal.Zero,
	)
	require.Len(t, events, 3)
	assert.Equal(t, date(2020, time.March, 15), events[2].Date)

	// End one day before: it is not.
	events = GenerateSchedule(
		date(2020, time.January, 15), date(2020, time.March, 14),
		decimal.NewFromInt(500), decimal.Zero,
	)
	require.Len(t, events, 2)
}

func TestGenerateScheduleClipsShortMonths(t *testing.T) {
	events := GenerateSchedule(
		date(2020, time.January, 31), date(2020, time.April, 30),
		decimal.NewFromInt(1000), decimal.Zero,
	)

	require.Len(t, events, 4)
	assert.Equal(t, date(2020, time.January, 31), events[0].Date)
	assert.Equal(t, date(2020, time.February, 29), events[1].Date, "leap February clips to 29")
	assert.Equal(t, date(2020, time.March, 31), events[2].Date, "anchor day must not drift after clipping")
	assert.Equal(t, date(2020, time.April, 30), events[3].Date)
}

func TestGenerateScheduleStepUpAtCalendarYearBoundary(t *testing.T) {
	events := GenerateSchedule(
		date(2020, time.June, 15), date(2022, time.June, 15),
		decimal.NewFromInt(1000), decimal.NewFromInt(10),
	)

	// Jun-Dec 2020 (7), all of 2021 (12), Jan-Jun 2022 (6).
	require.Len(t, events, 25)

	for _, ev := range events {
		var want decimal.Decimal
		switch ev.Date.Year() {
		case 2020:
			want = decimal.NewFromInt(1000)
		case 2021:
			want = decimal.NewFromInt(1100)
		case 2022:
			want = decimal.NewFromInt(1210)
		}
		assert.Truef(t, ev.Amount.Equal(want), "event %s: want amount %s, got %s",
			ev.Date.Format("2006-01-02"), want, ev.Amount)
	}
}

func TestGenerateScheduleRestartable(t *testing.T) {
	first := GenerateSchedule(
		date(2019, time.January, 31), date(2021, time.December, 31),
		decimal.NewFromInt(2500), decimal.NewFromInt(5),
	)
	second := GenerateSchedule(
		date(2019, time.January, 31), date(2021, time.December, 31),
		decimal.NewFromInt(2500), decimal.NewFromInt(5),
	)
	assert.Equal(t, first, second)
}

func TestGenerateScheduleEndBeforeStart(t *testing.T) {
	events := GenerateSchedule(
		date(2021, time.May, 1), date(2021, time.April, 1),
		decimal.NewFromInt(1000), decimal.Zero,
	)
	assert.Empty(t, events)
}
