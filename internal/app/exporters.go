package app

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloudeng.io/logging/ctxlog"
	ics "github.com/arran4/golang-ical"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

// writeString writes to w and logs any error
func writeString(w io.Writer, r *http.Request, s string) {
	if _, err := fmt.Fprint(w, s); err != nil {
		ctxlog.Logger(r.Context()).Error("Error writing to response", "err", err)
	}
}

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.Logger(r.Context()).Error("Error encoding JSON", "err", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// WeekNumbersCalendar builds a calendar with one all-day event per ISO week
// of isoYear, Monday through Sunday. UIDs are stable across requests so that
// subscribed clients update events in place.
func WeekNumbersCalendar(isoYear int, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(fmt.Sprintf("%s %d", ICSCalName, isoYear))
	cal.SetXPublishedTTL("PT24H")

	for week := 1; week <= dategrid.WeeksInISOYear(isoYear); week++ {
		monday := dategrid.WeekMonday(isoYear, week)
		event := cal.AddEvent(fmt.Sprintf("%04d-W%02d@%s", isoYear, week, ICSUIDDomain))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(monday.Time())
		event.SetAllDayEndAt(monday.AddDays(7).Time())
		event.SetSummary(fmt.Sprintf("Week %02d", week))
	}
	return cal
}

// HandleWeekNumbersICS serves the ISO week-number subscription feed of a year.
// Like any subscription feed it is served inline, without an attachment
// header.
func HandleWeekNumbersICS(w http.ResponseWriter, r *http.Request) {
	vals, err := pathInts(r, "year")
	if err == nil {
		err = checkYear(vals[0])
	}
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}
	cal := WeekNumbersCalendar(vals[0], Now().UTC())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	writeString(w, r, cal.Serialize())
}
