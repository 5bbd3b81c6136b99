// Package worktime computes elapsed work durations and overtime from
// attendance timestamps. Check-in and check-out are each treated as a
// (calendar day, time-of-day) pair so shifts that cross midnight come out
// correct.
package worktime

import (
	"math"
	"time"
)

// OnDay combines a calendar day with the time-of-day of clock, producing a
// single instant in clock's location.
func OnDay(day time.Time, clock time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		clock.Location(),
	)
}

// Hours returns the elapsed time between in and out as fractional hours
// rounded to 2 decimal places. If out is not strictly after in, the result
// is 0 — never negative.
func Hours(in, out time.Time) float64 {
	if !out.After(in) {
		return 0
	}
	return Round2(out.Sub(in).Hours())
}

// Overtime returns the hours worked beyond the standard daily threshold,
// rounded to 2 decimal places. Never negative; no upper cap.
func Overtime(totalHours float64, standardHours int) float64 {
	if overtime := totalHours - float64(standardHours); overtime > 0 {
		return Round2(overtime)
	}
	return 0
}

// SecondsOfDay returns the number of seconds since local midnight for t.
// Used to compare time-of-day values independent of their calendar date.
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
