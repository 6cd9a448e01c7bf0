package dategrid

import (
	"testing"
	"time"
)

func TestNavContext(t *testing.T) {
	today := d(2025, 3, 10)
	for _, c := range []struct {
		name                   string
		nav                    NavContext
		month, week, day, home string
	}{
		{
			name:  "month",
			nav:   MonthNav(2025, time.January, today),
			month: "/month/2025/1",
			week:  "/week/2025/3",
			day:   "/day/2025/1/15",
			home:  "/month/2025/3",
		},
		{
			name:  "week",
			nav:   WeekNav(2025, 1, today),
			month: "/month/2025/1",
			week:  "/week/2025/1",
			day:   "/day/2025/1/1",
			home:  "/week/2025/11",
		},
		{
			name:  "day",
			nav:   DayNav(d(2024, 12, 30), today),
			month: "/month/2024/12",
			week:  "/week/2025/1",
			day:   "/day/2024/12/30",
			home:  "/day/2025/3/10",
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			if got := c.nav.MonthPath(); got != c.month {
				t.Errorf("MonthPath: got %q, want %q", got, c.month)
			}
			if got := c.nav.WeekPath(); got != c.week {
				t.Errorf("WeekPath: got %q, want %q", got, c.week)
			}
			if got := c.nav.DayPath(); got != c.day {
				t.Errorf("DayPath: got %q, want %q", got, c.day)
			}
			if got := c.nav.TodayPath(); got != c.home {
				t.Errorf("TodayPath: got %q, want %q", got, c.home)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	a, b := d(2024, 12, 31), d(2025, 1, 1)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("%v compares unequal to itself", a)
	}
	if got, want := d(2025, 1, 31).AddDays(1), d(2025, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d(5, 3, 7).String(), "0005-03-07"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrevNextDay(t *testing.T) {
	for _, c := range []struct {
		date, prev, next Date
	}{
		{d(2025, 1, 1), d(2024, 12, 31), d(2025, 1, 2)},
		{d(2024, 2, 29), d(2024, 2, 28), d(2024, 3, 1)},
		{d(2025, 2, 28), d(2025, 2, 27), d(2025, 3, 1)},
	} {
		if got := PrevDay(c.date); got != c.prev {
			t.Errorf("PrevDay(%v) = %v, want %v", c.date, got, c.prev)
		}
		if got := NextDay(c.date); got != c.next {
			t.Errorf("NextDay(%v) = %v, want %v", c.date, got, c.next)
		}
	}
}
