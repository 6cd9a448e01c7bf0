package app

import (
	"time"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

// holidayTables maps a region code to the function building its holidays.
var holidayTables = map[string]func(year int) map[dategrid.Date]string{
	"de-nw": nrwHolidays,
}

// KnownHolidayRegion reports whether region has a holiday table.
func KnownHolidayRegion(region string) bool {
	_, ok := holidayTables[region]
	return ok
}

// Holidays returns the public holidays of region in year. Unknown regions
// have none.
func Holidays(region string, year int) map[dategrid.Date]string {
	build, ok := holidayTables[region]
	if !ok {
		return nil
	}
	return build(year)
}

// HolidayOn returns the name of the holiday on d in the configured region.
func HolidayOn(d dategrid.Date) string {
	if HolidayRegion == "" {
		return ""
	}
	return Holidays(HolidayRegion, d.Year)[d]
}

// nrwHolidays returns all public holidays in North Rhine-Westphalia
func nrwHolidays(year int) map[dategrid.Date]string {
	holidays := make(map[dategrid.Date]string)

	// Fixed holidays
	holidays[dategrid.Date{Year: year, Month: 1, Day: 1}] = "New Year's Day"
	holidays[dategrid.Date{Year: year, Month: 5, Day: 1}] = "Labour Day"
	holidays[dategrid.Date{Year: year, Month: 10, Day: 3}] = "German Unity Day"
	holidays[dategrid.Date{Year: year, Month: 11, Day: 1}] = "All Saints' Day"
	holidays[dategrid.Date{Year: year, Month: 12, Day: 25}] = "Christmas Day"
	holidays[dategrid.Date{Year: year, Month: 12, Day: 26}] = "St Stephen's Day"

	// Easter-based holidays (movable)
	easter := calculateEaster(year)
	holidays[easter.AddDays(-2)] = "Good Friday"
	holidays[easter.AddDays(1)] = "Easter Monday"
	holidays[easter.AddDays(39)] = "Ascension Day"
	holidays[easter.AddDays(50)] = "Whit Monday"
	holidays[easter.AddDays(60)] = "Corpus Christi"

	return holidays
}

// calculateEaster calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func calculateEaster(year int) dategrid.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return dategrid.Date{Year: year, Month: time.Month(month), Day: day}
}
