package util

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// FormatRelativeTime renders how long ago t was, relative to now (e.g., "Just now", "5m ago", "3d ago").
// Anything older than four weeks falls back to a short date.
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff/(7*24*time.Hour)))
	}

	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}

	return t.Format("Jan 2")
}

// Initials returns up to two upper-case initials for a display name, or "?" when the name is empty.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		word := []rune(parts[0])
		if len(word) > 2 {
			word = word[:2]
		}

		return strings.ToUpper(string(word))
	}

	first, _ := utf8.DecodeRuneInString(parts[0])
	second, _ := utf8.DecodeRuneInString(parts[1])

	return string([]rune{unicode.ToUpper(first), unicode.ToUpper(second)})
}
