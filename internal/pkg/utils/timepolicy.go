package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ParseClock parses an "HH:MM" wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// IsLate reports whether a clock-in moment falls strictly after
// workStart+tolerance on its own calendar day. Wall-clock comparison, no
// timezone conversion.
func IsLate(clockIn time.Time, workStart string, toleranceMinutes int) (bool, error) {
	hour, minute, err := ParseClock(workStart)
	if err != nil {
		return false, err
	}

	deadline := time.Date(
		clockIn.Year(), clockIn.Month(), clockIn.Day(),
		hour, minute, 0, 0,
		clockIn.Location(),
	).Add(time.Duration(toleranceMinutes) * time.Minute)

	return clockIn.After(deadline), nil
}

// CountWorkingDays counts Monday-Friday dates in [start, end] inclusive.
// Returns 0 when end precedes start.
func CountWorkingDays(start, end time.Time) int {
	days := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		switch current.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// WorkingDaysInMonth counts Monday-Friday dates in the given month. Used as
// the denominator for monthly attendance rates.
func WorkingDaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return CountWorkingDays(first, last)
}

// OvertimeHours computes the span between two "HH:MM" times in hours. An end
// before the start is treated as the following day (overnight shifts).
func OvertimeHours(startClock, endClock string) (float64, error) {
	sh, sm, err := ParseClock(startClock)
	if err != nil {
		return 0, err
	}
	eh, em, err := ParseClock(endClock)
	if err != nil {
		return 0, err
	}

	start := time.Duration(sh)*time.Hour + time.Duration(sm)*time.Minute
	end := time.Duration(eh)*time.Hour + time.Duration(em)*time.Minute
	if end < start {
		end += 24 * time.Hour
	}

	return RoundHours(end - start), nil
}

// RoundHours converts a duration to hours rounded to two decimals.
func RoundHours(d time.Duration) float64 {
	return decimal.NewFromFloat(d.Hours()).Round(2).InexactFloat64()
}

// RoundHoursValue rounds an hour total to two decimals.
func RoundHoursValue(hours float64) float64 {
	return decimal.NewFromFloat(hours).Round(2).InexactFloat64()
}

// RoundPercent rounds a percentage to one decimal.
func RoundPercent(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
