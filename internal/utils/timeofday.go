package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// DateOnlyLayout is the wire format for calendar dates.
const DateOnlyLayout = "2006-01-02"

// ParseTimeOfDay converts an "HH:MM" string to minutes since midnight.
// "24:00" is accepted so an event may end exactly at midnight.
// Example: "10:30" returns 630.
func ParseTimeOfDay(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q, minutes out of range", s)
	}
	total := hour*60 + minute
	if total > domain.MinutesPerDay {
		return 0, fmt.Errorf("invalid time %q, hours out of range", s)
	}
	return total, nil
}

// FormatTimeOfDay converts minutes since midnight back to "HH:MM".
// Example: 630 returns "10:30"; 1440 returns "24:00".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDateOnly parses a "2006-01-02" date at midnight UTC.
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.Parse(DateOnlyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDateOnly renders a date in the "2006-01-02" wire format.
func FormatDateOnly(t time.Time) string {
	return t.Format(DateOnlyLayout)
}
