package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

var (
	ErrInvalidMonthRange   = errors.New("month out of range")
	ErrInvalidWeekNumber   = errors.New("invalid week number")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrNotAnInteger        = errors.New("path segment is not an integer")
)

// pathInts parses the named path values of r as integers.
func pathInts(r *http.Request, names ...string) ([]int, error) {
	vals := make([]int, len(names))
	for i, name := range names {
		v, err := strconv.Atoi(r.PathValue(name))
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", name, r.PathValue(name), ErrNotAnInteger)
		}
		vals[i] = v
	}
	return vals, nil
}

func checkYear(year int) error {
	if year < dategrid.MinYear || year > dategrid.MaxYear {
		return fmt.Errorf("year %d: %w", year, ErrInvalidCalendarDate)
	}
	return nil
}

func checkMonth(year, month int) error {
	if err := checkYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d: %w", month, ErrInvalidMonthRange)
	}
	return nil
}

// monthRollover moves an out of range month one year back or forward.
func monthRollover(year, month int) (int, time.Month) {
	if month < 1 {
		return year - 1, time.December
	}
	return year + 1, time.January
}

func checkWeek(year, week int) error {
	if year <= 0 || week < 1 || week > 53 {
		return fmt.Errorf("week %d of %d: %w", week, year, ErrInvalidWeekNumber)
	}
	return nil
}

func checkDate(year, month, day int) error {
	if !dategrid.Valid(year, month, day) {
		return fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidCalendarDate)
	}
	return nil
}

// redirect sends a 302 to target and counts it under reason.
func redirect(w http.ResponseWriter, r *http.Request, target, reason string) {
	redirects.WithLabelValues(reason).Inc()
	ctxlog.Logger(r.Context()).Debug("redirect", "to", target, "reason", reason)
	http.Redirect(w, r, target, http.StatusFound)
}

// today returns the current date from the injected clock.
func today() dategrid.Date {
	return dategrid.FromTime(Now())
}
