package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a wall-clock "HH:MM:SS" (or "HH:MM") string onto the
// given day. Unparseable input is rejected before any timeline is built.
func ParseClock(day time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	clock, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a HH:MM:SS clock time", ErrBadClock, s)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, day.Location()), nil
}

// ParseSpan parses an operator-supplied span: plain seconds ("220"),
// "M:SS" ("3:40") or "H:MM:SS".
func ParseSpan(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrBadSpan)
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has too many ':' separators", ErrBadSpan, s)
	}
	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q is not a duration in seconds, M:SS or H:MM:SS", ErrBadSpan, s)
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("%w: %q has a field over 59", ErrBadSpan, s)
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, nil
}
