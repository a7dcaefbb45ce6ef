package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateKeyLayout is the canonical storage key format for daily workouts.
const dateKeyLayout = "2006-01-02"

// Weekdays lists the seven plan storage keys in week order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DateKey converts a calendar date to its storage key (yyyy-MM-dd).
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a yyyy-MM-dd storage key back into a calendar date.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(dateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// DayKey returns the plan storage key (lowercase weekday name) for a date.
func DayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// NormalizeDayKey lowercases a weekday name and validates it against the
// seven plan keys.
func NormalizeDayKey(day string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(day))
	for _, d := range Weekdays {
		if key == d {
			return key, nil
		}
	}
	return "", ErrInvalidDay
}
