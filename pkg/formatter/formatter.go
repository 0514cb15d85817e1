package formatter

import (
	"strings"
	"time"
)

const dayLabelLayout = "Monday, 2 January 2006"

// DayLabel renders a human-readable label for the calendar day of t.
// Example: 2026-10-18 -> "Sunday, 18 October 2026"
func DayLabel(t time.Time) string {
	return t.Format(dayLabelLayout)
}

// MonthLabel renders the month of t, e.g. "October 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// ClockLabel renders t as "15:04".
func ClockLabel(t time.Time) string {
	return t.Format("15:04")
}

// FirstLines returns at most n non-empty lines of text, trimmed.
func FirstLines(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	lines := make([]string, 0, n)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}
