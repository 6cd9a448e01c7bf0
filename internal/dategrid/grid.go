package dategrid

import "time"

// DayCell is one cell of a month grid. IsCurrentMonth is false for the
// padding days borrowed from the neighbouring months.
type DayCell struct {
	Date
	IsCurrentMonth bool
}

// Week is a grid row, Sunday first.
type Week [7]DayCell

// Grid is a month laid out as 4 to 6 complete weeks.
type Grid []Week

// MonthGrid lays out month of year starting on the Sunday on or before the
// 1st and ending on the Saturday on or after the last day. month must be in
// the range 1-12.
func MonthGrid(year int, month time.Month) Grid {
	first := Date{Year: year, Month: month, Day: 1}
	last := Date{Year: year, Month: month, Day: DaysInMonth(year, month)}

	current := first.AddDays(-int(ColumnOf(first.Weekday())))
	grid := make(Grid, 0, 6)
	for {
		var week Week
		for i := range week {
			week[i] = DayCell{
				Date:           current,
				IsCurrentMonth: current.Year == year && current.Month == month,
			}
			current = current.AddDays(1)
		}
		grid = append(grid, week)

		// current is the Sunday after the row just emitted.
		if current.After(last) && current.Weekday() == time.Sunday {
			break
		}
	}
	return grid
}

// Cells returns the grid's cells in order.
func (g Grid) Cells() []DayCell {
	cells := make([]DayCell, 0, len(g)*7)
	for _, w := range g {
		cells = append(cells, w[:]...)
	}
	return cells
}

// PrevMonth returns the month before (year, month).
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the month after (year, month).
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
