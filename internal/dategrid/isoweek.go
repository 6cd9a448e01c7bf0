package dategrid

import "fmt"

// ISOWeek identifies an ISO-8601 week. Year is the ISO week-numbering year
// which differs from the calendar year for some days around January 1st.
type ISOWeek struct {
	Year int
	Week int
}

func (w ISOWeek) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

// ISOWeekOf returns the ISO week containing d.
func ISOWeekOf(d Date) ISOWeek {
	y, w := d.Time().ISOWeek()
	return ISOWeek{Year: y, Week: w}
}

// WeekMonday returns the Monday of ISO week isoWeek of isoYear. January 4th
// always falls in week 1. isoWeek is not range checked; values outside the
// year's weeks land in the adjacent years.
func WeekMonday(isoYear, isoWeek int) Date {
	jan4 := Date{Year: isoYear, Month: 1, Day: 4}
	return jan4.AddDays((isoWeek-1)*7 - (ISOWeekday(jan4) - 1))
}

// WeekDates returns the Sunday through Saturday display week for an ISO
// week: the Sunday immediately before the ISO week's Monday, then the six
// days that follow it.
func WeekDates(isoYear, isoWeek int) [7]Date {
	sunday := WeekMonday(isoYear, isoWeek).AddDays(-1)
	var dates [7]Date
	for i := range dates {
		dates[i] = sunday.AddDays(i)
	}
	return dates
}

// MidweekDate returns the Wednesday of an ISO week. It stands in for the
// whole week when moving to the month or day views.
func MidweekDate(isoYear, isoWeek int) Date {
	return WeekMonday(isoYear, isoWeek).AddDays(2)
}

// WeeksInISOYear returns 52 or 53. December 28th is always in the last week.
func WeeksInISOYear(isoYear int) int {
	return ISOWeekOf(Date{Year: isoYear, Month: 12, Day: 28}).Week
}

// PrevWeek returns the ISO week before the display week of (isoYear, isoWeek).
func PrevWeek(isoYear, isoWeek int) ISOWeek {
	sunday := WeekDates(isoYear, isoWeek)[0]
	return ISOWeekOf(sunday.AddDays(-6))
}

// NextWeek returns the ISO week after the display week of (isoYear, isoWeek).
func NextWeek(isoYear, isoWeek int) ISOWeek {
	sunday := WeekDates(isoYear, isoWeek)[0]
	return ISOWeekOf(sunday.AddDays(8))
}
