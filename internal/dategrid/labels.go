package dategrid

import (
	"fmt"
	"time"
)

var monthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrevs = [13]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the English name of month.
func MonthName(month time.Month) string {
	return monthNames[month]
}

// MonthAbbrev returns the three letter abbreviation of month.
func MonthAbbrev(month time.Month) string {
	return monthAbbrevs[month]
}

// MonthTitle formats a month heading such as "January 2025".
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// WeekLabel formats the range of a display week, "Jan 5 - 11, 2025" when
// both ends are in one month and "Jan 26 - Feb 1, 2025" otherwise.
func WeekLabel(dates [7]Date) string {
	start, end := dates[0], dates[6]
	startStr := fmt.Sprintf("%s %d", MonthAbbrev(start.Month), start.Day)
	if start.Month == end.Month {
		return fmt.Sprintf("%s - %d, %d", startStr, end.Day, end.Year)
	}
	return fmt.Sprintf("%s - %s %d, %d", startStr, MonthAbbrev(end.Month), end.Day, end.Year)
}

// DayLabel formats d as "Sunday, January 5, 2025".
func DayLabel(d Date) string {
	return fmt.Sprintf("%s, %s %d, %d", WeekdayName(d), MonthName(d.Month), d.Day, d.Year)
}
