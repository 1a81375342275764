package services

import (
	"fmt"

	"github.com/apptrackr/backend/internal/models"
)

// FormatDisplayDate renders a stored date as e.g. "Jan 2nd, 2024".
// Unparseable input is returned unchanged rather than erased.
func FormatDisplayDate(s string) string {
	t, err := models.ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s %s, %d", t.Format("Jan"), ordinal(t.Day()), t.Year())
}

// FormatDisplayTime renders a stored "HH:mm" as e.g. "1:30 PM".
func FormatDisplayTime(s string) string {
	t, err := models.ParseClock(s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
