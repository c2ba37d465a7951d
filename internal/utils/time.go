package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/plenoapp/pleno/internal/constants"
)

// NowMillis returns the current time as epoch milliseconds, the timestamp
// representation used across all collections.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ParseDate parses a YYYY-MM-DD date string in the local timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// ParseClock parses an HH:MM clock string.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t, nil
}

// CombineDateTime resolves a date string and a clock string into a single
// local time.
func CombineDateTime(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.Local), nil
}

// DayKey returns the YYYY-MM-DD key for an epoch-milliseconds timestamp.
func DayKey(millis int64) string {
	return time.UnixMilli(millis).Format(constants.DateFormat)
}

// FormatDisplayDate renders a time in the pt-BR DD/MM/YYYY form used for
// journal entry display dates.
func FormatDisplayDate(t time.Time) string {
	return t.Format(constants.DisplayDateFormat)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
