package app

import (
	"time"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

// holidaysBetween merges the holiday tables of every year from first to last.
func holidaysBetween(first, last dategrid.Date) map[dategrid.Date]string {
	if HolidayRegion == "" {
		return nil
	}
	merged := make(map[dategrid.Date]string)
	for y := first.Year; y <= last.Year; y++ {
		for d, name := range Holidays(HolidayRegion, y) {
			merged[d] = name
		}
	}
	return merged
}

func forecastFor(forecasts map[dategrid.Date]Forecast, d dategrid.Date) *Forecast {
	f, ok := forecasts[d]
	if !ok {
		return nil
	}
	return &f
}

// hourRows builds the hour rows of a view with one slot per day in isToday.
// A slot is current when its day is today and its hour is now's hour.
func hourRows(now time.Time, isToday ...bool) []HourRow {
	labels := dategrid.HourLabels()
	rows := make([]HourRow, len(labels))
	for i, label := range labels {
		slots := make([]HourSlot, len(isToday))
		for j, t := range isToday {
			slots[j].IsCurrent = t && label.Hour == now.Hour()
		}
		rows[i] = HourRow{HourLabel: label, Slots: slots}
	}
	return rows
}

// BuildMonthPage lays out the month view of (year, month) as seen at now.
func BuildMonthPage(year int, month time.Month, now time.Time) MonthPage {
	today := dategrid.FromTime(now)
	grid := dategrid.MonthGrid(year, month)
	cells := grid.Cells()
	holidays := holidaysBetween(cells[0].Date, cells[len(cells)-1].Date)
	forecasts := Weather.Forecasts()

	weeks := make([][7]CellView, len(grid))
	for i, week := range grid {
		for j, cell := range week {
			weeks[i][j] = CellView{
				DayCell: cell,
				IsToday: cell.Date == today,
				Href:    dategrid.DayPath(cell.Date),
				Holiday: holidays[cell.Date],
				Weather: forecastFor(forecasts, cell.Date),
			}
		}
	}

	prevYear, prevMonth := dategrid.PrevMonth(year, month)
	nextYear, nextMonth := dategrid.NextMonth(year, month)
	return MonthPage{
		Title:      dategrid.MonthTitle(year, month),
		Year:       year,
		Month:      month,
		DayHeaders: dategrid.DayHeaders(),
		Weeks:      weeks,
		PrevHref:   dategrid.MonthPath(prevYear, prevMonth),
		NextHref:   dategrid.MonthPath(nextYear, nextMonth),
		Nav:        dategrid.MonthNav(year, month, today),
	}
}

// BuildWeekPage lays out the display week of an ISO week as seen at now.
func BuildWeekPage(isoYear, isoWeek int, now time.Time) WeekPage {
	today := dategrid.FromTime(now)
	dates := dategrid.WeekDates(isoYear, isoWeek)
	holidays := holidaysBetween(dates[0], dates[6])
	forecasts := Weather.Forecasts()

	var columns [7]WeekColumn
	var isToday [7]bool
	for i, d := range dates {
		isToday[i] = d == today
		columns[i] = WeekColumn{
			Date:    d,
			Abbrev:  dategrid.WeekdayAbbrev(d),
			IsToday: isToday[i],
			Href:    dategrid.DayPath(d),
			Holiday: holidays[d],
			Weather: forecastFor(forecasts, d),
		}
	}

	prev := dategrid.PrevWeek(isoYear, isoWeek)
	next := dategrid.NextWeek(isoYear, isoWeek)
	return WeekPage{
		Title:    dategrid.WeekLabel(dates),
		ISO:      dategrid.ISOWeek{Year: isoYear, Week: isoWeek},
		Columns:  columns,
		Hours:    hourRows(now, isToday[:]...),
		PrevHref: dategrid.WeekPath(prev),
		NextHref: dategrid.WeekPath(next),
		Nav:      dategrid.WeekNav(isoYear, isoWeek, today),
	}
}

// BuildDayPage lays out the day view of d as seen at now.
func BuildDayPage(d dategrid.Date, now time.Time) DayPage {
	today := dategrid.FromTime(now)
	isToday := d == today
	var weather *Forecast
	if f, ok := Weather.ForDate(d); ok {
		weather = &f
	}
	return DayPage{
		Title:       dategrid.DayLabel(d),
		WeekdayName: dategrid.WeekdayName(d),
		Date:        d,
		IsToday:     isToday,
		Holiday:     holidaysBetween(d, d)[d],
		Weather:     weather,
		Hours:       hourRows(now, isToday),
		PrevHref:    dategrid.DayPath(dategrid.PrevDay(d)),
		NextHref:    dategrid.DayPath(dategrid.NextDay(d)),
		Nav:         dategrid.DayNav(d, today),
	}
}

// BuildMonthJSON returns the JSON form of the month grid.
func BuildMonthJSON(year int, month time.Month) MonthJSON {
	grid := dategrid.MonthGrid(year, month)
	weeks := make([][7]CellJSON, len(grid))
	for i, week := range grid {
		for j, cell := range week {
			weeks[i][j] = CellJSON{
				Year:           cell.Year,
				Month:          int(cell.Month),
				Day:            cell.Day,
				IsCurrentMonth: cell.IsCurrentMonth,
			}
		}
	}
	prevYear, prevMonth := dategrid.PrevMonth(year, month)
	nextYear, nextMonth := dategrid.NextMonth(year, month)
	return MonthJSON{
		Year:  year,
		Month: int(month),
		Title: dategrid.MonthTitle(year, month),
		Weeks: weeks,
		Prev:  YearMonthJSON{Year: prevYear, Month: int(prevMonth)},
		Next:  YearMonthJSON{Year: nextYear, Month: int(nextMonth)},
	}
}

// BuildWeekJSON returns the JSON form of the display week.
func BuildWeekJSON(isoYear, isoWeek int) WeekJSON {
	dates := dategrid.WeekDates(isoYear, isoWeek)
	prev := dategrid.PrevWeek(isoYear, isoWeek)
	next := dategrid.NextWeek(isoYear, isoWeek)
	return WeekJSON{
		ISOYear: isoYear,
		ISOWeek: isoWeek,
		Title:   dategrid.WeekLabel(dates),
		Dates:   dates,
		Prev:    YearWeekJSON{Year: prev.Year, Week: prev.Week},
		Next:    YearWeekJSON{Year: next.Year, Week: next.Week},
	}
}
