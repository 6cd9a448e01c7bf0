package dategrid

import (
	"fmt"
	"time"
)

// View names one of the three calendar views.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// monthContextDay stands in for a whole month when switching to the week or
// day view.
const monthContextDay = 15

// NavContext carries what the view switcher needs to keep the user on the
// same stretch of time when changing views.
type NavContext struct {
	View     View
	Date     Date
	ISO      ISOWeek
	Today    Date
	TodayISO ISOWeek
}

// MonthNav is the context of the month view for (year, month).
func MonthNav(year int, month time.Month, today Date) NavContext {
	d := Date{Year: year, Month: month, Day: monthContextDay}
	return newNav(ViewMonth, d, ISOWeekOf(d), today)
}

// WeekNav is the context of the week view for an ISO week. The calendar
// date is the week's Wednesday.
func WeekNav(isoYear, isoWeek int, today Date) NavContext {
	return newNav(ViewWeek, MidweekDate(isoYear, isoWeek), ISOWeek{Year: isoYear, Week: isoWeek}, today)
}

// DayNav is the context of the day view for d.
func DayNav(d Date, today Date) NavContext {
	return newNav(ViewDay, d, ISOWeekOf(d), today)
}

func newNav(view View, d Date, iso ISOWeek, today Date) NavContext {
	return NavContext{
		View:     view,
		Date:     d,
		ISO:      iso,
		Today:    today,
		TodayISO: ISOWeekOf(today),
	}
}

func (n NavContext) MonthPath() string {
	return MonthPath(n.Date.Year, n.Date.Month)
}

func (n NavContext) WeekPath() string {
	return WeekPath(n.ISO)
}

func (n NavContext) DayPath() string {
	return DayPath(n.Date)
}

// TodayPath links to today in the current view.
func (n NavContext) TodayPath() string {
	switch n.View {
	case ViewWeek:
		return WeekPath(n.TodayISO)
	case ViewDay:
		return DayPath(n.Today)
	default:
		return MonthPath(n.Today.Year, n.Today.Month)
	}
}

// MonthPath returns the URL path of a month view.
func MonthPath(year int, month time.Month) string {
	return fmt.Sprintf("/month/%d/%d", year, int(month))
}

// WeekPath returns the URL path of a week view.
func WeekPath(w ISOWeek) string {
	return fmt.Sprintf("/week/%d/%d", w.Year, w.Week)
}

// DayPath returns the URL path of a day view.
func DayPath(d Date) string {
	return fmt.Sprintf("/day/%d/%d/%d", d.Year, int(d.Month), d.Day)
}
