package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	// Test case 1: Standard times
	minutes, err := ParseTimeOfDay("10:30")
	assert.NoError(t, err, "10:30 is a valid time")
	assert.Equal(t, 630, minutes, "10:30 is 630 minutes past midnight")

	minutes, err = ParseTimeOfDay("00:00")
	assert.NoError(t, err, "Midnight is a valid time")
	assert.Equal(t, 0, minutes, "Midnight is minute zero")

	minutes, err = ParseTimeOfDay("09:05")
	assert.NoError(t, err, "Leading zeros are required and valid")
	assert.Equal(t, 545, minutes, "09:05 is 545 minutes past midnight")

	// Test case 2: End-of-day boundary, used by events ending exactly at midnight
	minutes, err = ParseTimeOfDay("24:00")
	assert.NoError(t, err, "24:00 is accepted as an end boundary")
	assert.Equal(t, 1440, minutes, "24:00 is the full day in minutes")

	// Test case 3: Out-of-range components
	_, err = ParseTimeOfDay("24:01")
	assert.Error(t, err, "Anything past 24:00 is rejected")
	assert.Contains(t, err.Error(), "hours out of range")

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err, "Hour 25 is rejected")

	_, err = ParseTimeOfDay("10:60")
	assert.Error(t, err, "Minute 60 is rejected")
	assert.Contains(t, err.Error(), "minutes out of range")

	// Test case 4: Malformed input
	_, err = ParseTimeOfDay("9:30")
	assert.Error(t, err, "Hours must be two digits")

	_, err = ParseTimeOfDay("10-30")
	assert.Error(t, err, "Separator must be a colon")

	_, err = ParseTimeOfDay("ab:cd")
	assert.Error(t, err, "Non-numeric components are rejected")

	_, err = ParseTimeOfDay("")
	assert.Error(t, err, "Empty string is rejected")
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "10:30", FormatTimeOfDay(630), "630 minutes formats as 10:30")
	assert.Equal(t, "00:00", FormatTimeOfDay(0), "Minute zero formats as midnight")
	assert.Equal(t, "09:05", FormatTimeOfDay(545), "Single-digit parts are zero padded")
	assert.Equal(t, "24:00", FormatTimeOfDay(1440), "The end boundary formats as 24:00")

	// Round trip through parse and format
	for _, s := range []string{"00:00", "08:15", "12:00", "23:59", "24:00"} {
		minutes, err := ParseTimeOfDay(s)
		assert.NoError(t, err)
		assert.Equal(t, s, FormatTimeOfDay(minutes), "Parse then format should be lossless")
	}
}

func TestParseDateOnly(t *testing.T) {
	// Test case 1: A valid wire date parses to midnight UTC
	parsed, err := ParseDateOnly("2025-03-15")
	assert.NoError(t, err, "2025-03-15 is a valid date")
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), parsed, "Dates parse at midnight UTC")

	// Test case 2: Other layouts are rejected
	_, err = ParseDateOnly("15/03/2025")
	assert.Error(t, err, "Slash-separated dates are rejected")
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")

	_, err = ParseDateOnly("2025-3-15")
	assert.Error(t, err, "Components must be zero padded")

	// Test case 3: Round trip
	assert.Equal(t, "2025-03-15", FormatDateOnly(parsed), "Parse then format should be lossless")
}
