package entity

import (
	"cmp"
	"strconv"
	"time"

	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
)

// Duration is a non-negative elapsed time stored as whole seconds.
// Unlike Time it has no upper bound at 24 hours. The zero value is 0:00:00.
type Duration struct {
	seconds int64
}

// MaxDuration is the longest representable duration
var MaxDuration = Duration{seconds: maxDurationSeconds}

// NewDuration creates a duration from hours, minutes and seconds.
// Hours must be non-negative; minutes and seconds must be within 0-59.
func NewDuration(hours, minutes, seconds int64) (Duration, error) {
	if err := checkField("hours", hours, maxDurationHours); err != nil {
		return Duration{}, err
	}
	if err := checkField("minutes", minutes, MaxMinute); err != nil {
		return Duration{}, err
	}
	if err := checkField("seconds", seconds, MaxSecond); err != nil {
		return Duration{}, err
	}

	return Duration{seconds: hours*SecondsPerHour + minutes*SecondsPerMinute + seconds}, nil
}

// NewDurationHM creates a duration from hours and minutes with zero seconds
func NewDurationHM(hours, minutes int64) (Duration, error) {
	return NewDuration(hours, minutes, 0)
}

// DurationFromSeconds creates a duration from a total second count up to MaxDuration
func DurationFromSeconds(total int64) (Duration, error) {
	if total < 0 || total > maxDurationSeconds {
		return Duration{}, errs.NewRangeError("seconds", total, 0, maxDurationSeconds)
	}
	return Duration{seconds: total}, nil
}

// DurationBetween returns the absolute gap between two times of day.
// The result does not depend on argument order.
func DurationBetween(a, b Time) Duration {
	gap := a.SecondOfDay() - b.SecondOfDay()
	if gap < 0 {
		gap = -gap
	}
	return Duration{seconds: gap}
}

// ParseDuration parses text of the form H, H:MM, H:MM:SS or H:MM:SS.fff.
// The hour field may have any number of digits; a fractional second is discarded.
func ParseDuration(text string) (Duration, error) {
	if text == "" {
		return Duration{}, errs.NewEmptyInputError(kindDuration)
	}

	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return Duration{}, errs.NewFormatError(kindDuration, text, "expected H:MM:SS")
	}

	hours, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil || hours > maxDurationHours {
		return Duration{}, errs.NewFormatError(kindDuration, text, "hour field too large")
	}

	var minutes, seconds int
	if match[2] != "" {
		minutes = twoDigits(match[2])
	}
	if match[3] != "" {
		seconds = twoDigits(match[3])
	}

	return Duration{seconds: hours*SecondsPerHour + int64(minutes)*SecondsPerMinute + int64(seconds)}, nil
}

// MustParseDuration is like ParseDuration but panics on malformed text.
// It is intended for literals known to be valid.
func MustParseDuration(text string) Duration {
	d, err := ParseDuration(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Seconds returns the total number of seconds
func (d Duration) Seconds() int64 {
	return d.seconds
}

// Hours returns the whole hours component, which may exceed 23
func (d Duration) Hours() int64 {
	hours, _, _ := splitSeconds(d.seconds)
	return hours
}

// Minutes returns the minutes component (0-59)
func (d Duration) Minutes() int {
	_, minutes, _ := splitSeconds(d.seconds)
	return minutes
}

// SecondsPart returns the seconds component (0-59)
func (d Duration) SecondsPart() int {
	_, _, seconds := splitSeconds(d.seconds)
	return seconds
}

// IsZero reports whether the duration is 0:00:00
func (d Duration) IsZero() bool {
	return d.seconds == 0
}

// Std converts the duration to a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d.seconds) * time.Second
}

// Equal reports whether both durations hold the same number of seconds
func (d Duration) Equal(other Duration) bool {
	return d.seconds == other.seconds
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal to or longer than other
func (d Duration) Compare(other Duration) int {
	return cmp.Compare(d.seconds, other.seconds)
}

// Less reports whether d is shorter than other
func (d Duration) Less(other Duration) bool { return d.seconds < other.seconds }

// LessOrEqual reports whether d is not longer than other
func (d Duration) LessOrEqual(other Duration) bool { return d.seconds <= other.seconds }

// Greater reports whether d is longer than other
func (d Duration) Greater(other Duration) bool { return d.seconds > other.seconds }

// GreaterOrEqual reports whether d is not shorter than other
func (d Duration) GreaterOrEqual(other Duration) bool { return d.seconds >= other.seconds }

// CompareAny compares d with a value of unknown type.
// A nil value, or a nil *Duration, sorts below every duration so the result is +1.
// Any type other than Duration or *Duration is a type mismatch.
func (d Duration) CompareAny(v any) (int, error) {
	switch other := v.(type) {
	case nil:
		return 1, nil
	case Duration:
		return d.Compare(other), nil
	case *Duration:
		if other == nil {
			return 1, nil
		}
		return d.Compare(*other), nil
	default:
		return 0, errs.NewTypeMismatchError("entity.Duration", v)
	}
}

// Plus returns the sum of both durations.
// The sum saturates at MaxDuration instead of overflowing.
func (d Duration) Plus(other Duration) Duration {
	if d.seconds > maxDurationSeconds-other.seconds {
		return MaxDuration
	}
	return Duration{seconds: d.seconds + other.seconds}
}

// Minus returns d minus other, failing when other is longer than d
func (d Duration) Minus(other Duration) (Duration, error) {
	if d.seconds < other.seconds {
		return Duration{}, errs.NewNegativeResultError(d.String(), other.String())
	}
	return Duration{seconds: d.seconds - other.seconds}, nil
}

// String renders the duration as H:MM:SS
func (d Duration) String() string {
	return formatElapsed(d.seconds)
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
