package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifeboost/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// DateKey formats t as the YYYY-MM-DD calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

// PreviousDay returns the date key of the day before dateStr. Calendar
// arithmetic is done on UTC midnights so DST shifts never skip a day.
func PreviousDay(dateStr string) (string, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat), nil
}

// NextDay returns the date key of the day after dateStr.
func NextDay(dateStr string) (string, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 1).Format(constants.DateFormat), nil
}

// ParseClock parses an HH:MM time of day and returns hour and minute.
func ParseClock(s string) (int, int, error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextOccurrence returns the next instant at hh:mm in now's location that is
// strictly after now; if today's hh:mm has already passed it is tomorrow's.
func NextOccurrence(now time.Time, hhmm string) (time.Time, error) {
	hour, minute, err := ParseClock(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return target, nil
}

// FormatRemaining renders d as MM:SS, or HH:MM:SS once it reaches an hour.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int((d + time.Second - 1) / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
