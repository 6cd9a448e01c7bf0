package dategrid

import "time"

// SundayFirst numbers weekdays the way display columns are laid out:
// Sunday=0 through Saturday=6.
type SundayFirst int

const (
	SunCol SundayFirst = iota
	MonCol
	TueCol
	WedCol
	ThuCol
	FriCol
	SatCol
)

// MondayFirst numbers weekdays the way ISO-8601 orders them:
// Monday=0 through Sunday=6. The ISO weekday number is MondayFirst+1.
type MondayFirst int

const (
	Monday MondayFirst = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

var weekdayAbbrevs = [7]string{
	SunCol: "Sun",
	MonCol: "Mon",
	TueCol: "Tue",
	WedCol: "Wed",
	ThuCol: "Thu",
	FriCol: "Fri",
	SatCol: "Sat",
}

// ColumnOf returns the display column of w.
func ColumnOf(w time.Weekday) SundayFirst {
	return SundayFirst(w)
}

// ISOIndexOf returns the Monday-first index of w.
func ISOIndexOf(w time.Weekday) MondayFirst {
	return MondayFirst((int(w) + 6) % 7)
}

// ISOWeekday returns the ISO weekday number of d, Monday=1 through Sunday=7.
func ISOWeekday(d Date) int {
	return int(ISOIndexOf(d.Weekday())) + 1
}

// WeekdayName returns the full English weekday name of d.
func WeekdayName(d Date) string {
	return weekdayNames[ISOIndexOf(d.Weekday())]
}

// WeekdayAbbrev returns the three letter weekday abbreviation of d.
func WeekdayAbbrev(d Date) string {
	return weekdayAbbrevs[ColumnOf(d.Weekday())]
}

// DayHeaders returns the column headings of a Sunday-first grid.
func DayHeaders() [7]string {
	return weekdayAbbrevs
}
