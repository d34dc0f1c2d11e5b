package entity

import (
	"fmt"
	"math"
	"regexp"

	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
)

// Clock arithmetic constants shared by Time and Duration
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	MaxClockHour = 23
	MaxMinute    = 59
	MaxSecond    = 59
)

// maxDurationHours is the largest hour count whose H:59:59 still fits in int64 seconds
const maxDurationHours = (math.MaxInt64 - (SecondsPerHour - 1)) / SecondsPerHour

// maxDurationSeconds is maxDurationHours:59:59, the longest duration whose text parses back
const maxDurationSeconds = maxDurationHours*SecondsPerHour + SecondsPerHour - 1

// Error kinds reported by the parsers
const (
	kindTime     = "time"
	kindDuration = "duration"
)

var (
	// timePattern accepts HH:MM:SS on a 24-hour clock; the hour may have one digit
	timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)

	// durationPattern accepts H(:MM(:SS(.fff)?)?)? with an unbounded hour field.
	// The fractional part is matched but never captured.
	durationPattern = regexp.MustCompile(`^([0-9]+)(?::([0-5][0-9])(?::([0-5][0-9])(?:\.[0-9]+)?)?)?$`)
)

// checkField validates a structured constructor argument against [0, maxValue]
func checkField(field string, value, maxValue int64) error {
	if value < 0 || value > maxValue {
		return errs.NewRangeError(field, value, 0, maxValue)
	}
	return nil
}

// splitSeconds breaks a non-negative second count into hour, minute and second components
func splitSeconds(total int64) (hours int64, minutes, seconds int) {
	hours = total / SecondsPerHour
	minutes = int(total/SecondsPerMinute) % 60
	seconds = int(total % SecondsPerMinute)
	return hours, minutes, seconds
}

// formatClock renders HH:MM:SS with every field zero-padded
func formatClock(hours, minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// formatElapsed renders H:MM:SS: the hour is never padded, minutes and seconds always are
func formatElapsed(total int64) string {
	hours, minutes, seconds := splitSeconds(total)
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// twoDigits converts a regexp capture that is known to hold one or two ASCII digits
func twoDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
