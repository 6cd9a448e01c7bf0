package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/calendar-views/internal/app"
	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

const gridWidth = 7*3 - 1

func newGridCommand() *cobra.Command {
	var padding, weeks bool
	cmd := &cobra.Command{
		Use:   "grid YEAR MONTH",
		Short: "Print the month grid of YEAR MONTH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q: %w", args[1], err)
			}
			if year < dategrid.MinYear || year > dategrid.MaxYear {
				return fmt.Errorf("year %d: %w", year, app.ErrInvalidCalendarDate)
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month %d: %w", month, app.ErrInvalidMonthRange)
			}
			return printGrid(cmd.OutOrStdout(), year, time.Month(month), padding, weeks)
		},
	}
	cmd.Flags().BoolVar(&padding, "padding", false, "Show the days of the neighbouring months")
	cmd.Flags().BoolVar(&weeks, "weeks", false, "Prefix each row with its ISO week number")
	return cmd
}

// printGrid writes a cal(1) style month grid. The ISO week of a row is the
// week of its Monday.
func printGrid(w io.Writer, year int, month time.Month, padding, weeks bool) error {
	var sb strings.Builder
	prefix := ""
	if weeks {
		prefix = "   "
	}

	title := dategrid.MonthTitle(year, month)
	left := (gridWidth - len(title)) / 2
	sb.WriteString(prefix + strings.Repeat(" ", max(left, 0)) + title + "\n")

	headers := dategrid.DayHeaders()
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = h[:2]
	}
	sb.WriteString(prefix + strings.Join(cols, " ") + "\n")

	for _, week := range dategrid.MonthGrid(year, month) {
		if weeks {
			fmt.Fprintf(&sb, "%2d ", dategrid.ISOWeekOf(week[dategrid.MonCol].Date).Week)
		}
		days := make([]string, len(week))
		for i, cell := range week {
			if cell.IsCurrentMonth || padding {
				days[i] = fmt.Sprintf("%2d", cell.Day)
			} else {
				days[i] = "  "
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(days, " "), " ") + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
