package dateutil

import (
	"time"
)

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClipped advances a date by the given number of months while
// keeping the anchor day-of-month. When the target month is too short the
// day clips to the last day of that month instead of rolling over, so a
// Jan 31 anchor yields Feb 28 (or 29), never Mar 2.
func AddMonthsClipped(anchor time.Time, months int) time.Time {
	y := anchor.Year()
	m := int(anchor.Month()) - 1 + months
	y += m / 12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)
	day := anchor.Day()
	if last := DaysInMonth(y, month); day > last {
		day = last
	}
	return time.Date(y, month, day, 0, 0, 0, 0, anchor.Location())
}

// MonthsBetween returns the number of whole calendar months from one date to
// another, ignoring the day component. Negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// EndOfYear returns December 31 of the date's year at midnight.
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 0, 0, 0, 0, date.Location())
}

// BeginningOfYear returns January 1 of the date's year at midnight.
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

// Midnight truncates a date to midnight in its own location.
func Midnight(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
