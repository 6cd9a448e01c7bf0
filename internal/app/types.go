package app

import (
	"time"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

// CellView is one day of the month grid as rendered.
type CellView struct {
	dategrid.DayCell
	IsToday bool
	Href    string
	Holiday string
	Weather *Forecast
}

// MonthPage is the template data of the month view.
type MonthPage struct {
	Title      string
	Year       int
	Month      time.Month
	DayHeaders [7]string
	Weeks      [][7]CellView
	PrevHref   string
	NextHref   string
	Nav        dategrid.NavContext
}

// WeekColumn is the header of one day in the week view.
type WeekColumn struct {
	Date    dategrid.Date
	Abbrev  string
	IsToday bool
	Href    string
	Holiday string
	Weather *Forecast
}

// HourRow is one hour of the week or day view with a slot per day column.
type HourRow struct {
	dategrid.HourLabel
	Slots []HourSlot
}

type HourSlot struct {
	IsCurrent bool
}

// WeekPage is the template data of the week view.
type WeekPage struct {
	Title    string
	ISO      dategrid.ISOWeek
	Columns  [7]WeekColumn
	Hours    []HourRow
	PrevHref string
	NextHref string
	Nav      dategrid.NavContext
}

// DayPage is the template data of the day view.
type DayPage struct {
	Title       string
	WeekdayName string
	Date        dategrid.Date
	IsToday     bool
	Holiday     string
	Weather     *Forecast
	Hours       []HourRow
	PrevHref    string
	NextHref    string
	Nav         dategrid.NavContext
}

// MonthJSON is the body of /api/month.
type MonthJSON struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Title string        `json:"title"`
	Weeks [][7]CellJSON `json:"weeks"`
	Prev  YearMonthJSON `json:"prev"`
	Next  YearMonthJSON `json:"next"`
}

type CellJSON struct {
	Year           int  `json:"year"`
	Month          int  `json:"month"`
	Day            int  `json:"day"`
	IsCurrentMonth bool `json:"is_current_month"`
}

type YearMonthJSON struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// WeekJSON is the body of /api/week.
type WeekJSON struct {
	ISOYear int              `json:"iso_year"`
	ISOWeek int              `json:"iso_week"`
	Title   string           `json:"title"`
	Dates   [7]dategrid.Date `json:"dates"`
	Prev    YearWeekJSON     `json:"prev"`
	Next    YearWeekJSON     `json:"next"`
}

type YearWeekJSON struct {
	Year int `json:"year"`
	Week int `json:"week"`
}
