package domain

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

var durationTokenPattern = regexp.MustCompile(`^(\d+)([smhdwy])$`)

// unitMillis maps a duration unit letter to its length in milliseconds.
// A year is always 365 days.
var unitMillis = map[string]int64{
	"s": 1000,
	"m": 60 * 1000,
	"h": 60 * 60 * 1000,
	"d": 24 * 60 * 60 * 1000,
	"w": 7 * 24 * 60 * 60 * 1000,
	"y": 365 * 24 * 60 * 60 * 1000,
}

// Millis parses a compact duration token such as "30m", "1h" or "2d" into milliseconds.
// It returns false for anything outside the grammar `<digits><s|m|h|d|w|y>`,
// including counts too large to represent.
func Millis(token string) (int64, bool) {
	matches := durationTokenPattern.FindStringSubmatch(token)
	if matches == nil {
		return 0, false
	}

	n, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, false
	}

	unit := unitMillis[matches[2]]
	if n > math.MaxInt64/unit {
		return 0, false
	}

	ms := n * unit
	if ms > math.MaxInt64/int64(time.Millisecond) {
		return 0, false
	}

	return ms, true
}

// ParseDuration is Millis expressed as a time.Duration
func ParseDuration(token string) (time.Duration, bool) {
	ms, ok := Millis(token)
	if !ok {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
