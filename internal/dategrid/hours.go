package dategrid

import "fmt"

// HourLabel pairs an hour of the day with its 12-hour clock label.
type HourLabel struct {
	Hour  int
	Label string
}

// First and last hour rows shown in the week and day views.
const (
	FirstHour = 6
	LastHour  = 23
)

// FormatHour returns the 12-hour clock label of h, 0-23.
func FormatHour(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// HourLabels returns the labels for FirstHour through LastHour.
func HourLabels() []HourLabel {
	hours := make([]HourLabel, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, HourLabel{Hour: h, Label: FormatHour(h)})
	}
	return hours
}
