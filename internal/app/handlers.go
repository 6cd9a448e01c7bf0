package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

// ServeIndex redirects to the month view of today
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	t := today()
	redirect(w, r, dategrid.MonthPath(t.Year, t.Month), reasonToday)
}

// HandleMonth renders the month view. Months outside 1-12 roll over into
// the adjacent year.
func HandleMonth(w http.ResponseWriter, r *http.Request) {
	vals, err := pathInts(r, "year", "month")
	if err != nil {
		redirect(w, r, "/", reasonNotAnInteger)
		return
	}
	year, month := vals[0], vals[1]
	if err := checkMonth(year, month); err != nil {
		if errors.Is(err, ErrInvalidMonthRange) {
			y, m := monthRollover(year, month)
			redirect(w, r, dategrid.MonthPath(y, m), reasonMonthRoll)
			return
		}
		redirect(w, r, "/", reasonBadYear)
		return
	}
	renderPage(w, r, pageMonth, BuildMonthPage(year, time.Month(month), Now()))
}

// HandleWeek renders the week view of an ISO week
func HandleWeek(w http.ResponseWriter, r *http.Request) {
	vals, err := pathInts(r, "year", "week")
	if err != nil {
		redirect(w, r, "/", reasonNotAnInteger)
		return
	}
	year, week := vals[0], vals[1]
	if err := checkWeek(year, week); err != nil {
		redirect(w, r, "/", reasonBadWeek)
		return
	}
	if err := checkYear(year); err != nil {
		redirect(w, r, "/", reasonBadYear)
		return
	}
	renderPage(w, r, pageWeek, BuildWeekPage(year, week, Now()))
}

// HandleDay renders the day view
func HandleDay(w http.ResponseWriter, r *http.Request) {
	vals, err := pathInts(r, "year", "month", "day")
	if err != nil {
		redirect(w, r, "/", reasonNotAnInteger)
		return
	}
	if err := checkDate(vals[0], vals[1], vals[2]); err != nil {
		redirect(w, r, "/", reasonBadDate)
		return
	}
	d := dategrid.Date{Year: vals[0], Month: time.Month(vals[1]), Day: vals[2]}
	renderPage(w, r, pageDay, BuildDayPage(d, Now()))
}

// HandleMonthJSON returns the month grid as JSON
func HandleMonthJSON(w http.ResponseWriter, r *http.Request) {
	vals, err := pathInts(r, "year", "month")
	if err == nil {
		err = checkMonth(vals[0], vals[1])
	}
	if err != nil {
		http.Error(w, ErrInvalidMonth, http.StatusBadRequest)
		return
	}
	writeJSON(w, r, BuildMonthJSON(vals[0], time.Month(vals[1])))
}

// HandleWeekJSON returns the display week of an ISO week as JSON
func HandleWeekJSON(w http.ResponseWriter, r *http.Request) {
	vals, err := pathInts(r, "year", "week")
	if err == nil {
		err = checkWeek(vals[0], vals[1])
	}
	if err == nil {
		err = checkYear(vals[0])
	}
	if err != nil {
		http.Error(w, ErrInvalidWeek, http.StatusBadRequest)
		return
	}
	writeJSON(w, r, BuildWeekJSON(vals[0], vals[1]))
}

// HandleHealth reports liveness and the age of the weather cache
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"weather": Weather != nil,
	}
	if last := Weather.LastRefresh(); !last.IsZero() {
		status["weather_refreshed_at"] = last.UTC().Format(time.RFC3339)
	}
	writeJSON(w, r, status)
}
