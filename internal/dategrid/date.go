// Package dategrid computes calendar layouts: Sunday-first month grids, ISO
// week ranges, navigation targets between periods and display labels.
//
// All functions are pure. Anything that depends on "today" takes it as an
// argument.
package dategrid

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Date is a proleptic Gregorian calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// MinYear and MaxYear bound the years accepted by Valid.
const (
	MinYear = 1
	MaxYear = 9999
)

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Valid reports whether year, month and day name an existing date.
func Valid(year, month, day int) bool {
	if year < MinYear || year > MaxYear || month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, time.Month(month))
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d moved by n days, crossing month and year boundaries.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PrevDay returns the day before d.
func PrevDay(d Date) Date { return d.AddDays(-1) }

// NextDay returns the day after d.
func NextDay(d Date) Date { return d.AddDays(1) }
