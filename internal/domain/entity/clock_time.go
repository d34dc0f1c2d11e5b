package entity

import (
	"cmp"

	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
)

// Time is a time of day on a 24-hour clock with second resolution.
// Fields are always within 00:00:00-23:59:59; the zero value is midnight.
type Time struct {
	hours   uint8
	minutes uint8
	seconds uint8
}

// NewTime creates a time of day from hours (0-23), minutes (0-59) and seconds (0-59)
func NewTime(hours, minutes, seconds int) (Time, error) {
	if err := checkField("hours", int64(hours), MaxClockHour); err != nil {
		return Time{}, err
	}
	if err := checkField("minutes", int64(minutes), MaxMinute); err != nil {
		return Time{}, err
	}
	if err := checkField("seconds", int64(seconds), MaxSecond); err != nil {
		return Time{}, err
	}

	return Time{hours: uint8(hours), minutes: uint8(minutes), seconds: uint8(seconds)}, nil
}

// NewTimeHM creates a time of day with zero seconds
func NewTimeHM(hours, minutes int) (Time, error) {
	return NewTime(hours, minutes, 0)
}

// NewTimeH creates a time of day on the hour
func NewTimeH(hours int) (Time, error) {
	return NewTime(hours, 0, 0)
}

// CurrentTime returns the wall-clock time of day reported by the provider
func CurrentTime(timeProvider coreport.TimeProvider) Time {
	now := timeProvider.Now()
	return Time{hours: uint8(now.Hour()), minutes: uint8(now.Minute()), seconds: uint8(now.Second())}
}

// ParseTime parses HH:MM:SS text. The hour may be written with one digit,
// minutes and seconds always take two. 24:00:00 and beyond are rejected.
func ParseTime(text string) (Time, error) {
	if text == "" {
		return Time{}, errs.NewEmptyInputError(kindTime)
	}

	match := timePattern.FindStringSubmatch(text)
	if match == nil {
		return Time{}, errs.NewFormatError(kindTime, text, "expected HH:MM:SS between 00:00:00 and 23:59:59")
	}

	return Time{
		hours:   uint8(twoDigits(match[1])),
		minutes: uint8(twoDigits(match[2])),
		seconds: uint8(twoDigits(match[3])),
	}, nil
}

// MustParseTime is like ParseTime but panics on malformed text
func MustParseTime(text string) Time {
	t, err := ParseTime(text)
	if err != nil {
		panic(err)
	}
	return t
}

// timeFromSecondOfDay builds a Time from a second count already reduced to [0, SecondsPerDay)
func timeFromSecondOfDay(sod int64) Time {
	hours, minutes, seconds := splitSeconds(sod)
	return Time{hours: uint8(hours), minutes: uint8(minutes), seconds: uint8(seconds)}
}

// Hours returns the hour component
func (t Time) Hours() int { return int(t.hours) }

// Minutes returns the minute component
func (t Time) Minutes() int { return int(t.minutes) }

// Seconds returns the second component
func (t Time) Seconds() int { return int(t.seconds) }

// SecondOfDay returns the number of seconds elapsed since midnight
func (t Time) SecondOfDay() int64 {
	return int64(t.hours)*SecondsPerHour + int64(t.minutes)*SecondsPerMinute + int64(t.seconds)
}

// Equal reports whether both times have the same hours, minutes and seconds
func (t Time) Equal(other Time) bool {
	return t == other
}

// Compare orders times lexicographically by hours, then minutes, then seconds
func (t Time) Compare(other Time) int {
	return cmp.Or(
		cmp.Compare(t.hours, other.hours),
		cmp.Compare(t.minutes, other.minutes),
		cmp.Compare(t.seconds, other.seconds),
	)
}

// Before reports whether t is earlier in the day than other
func (t Time) Before(other Time) bool { return t.Compare(other) < 0 }

// After reports whether t is later in the day than other
func (t Time) After(other Time) bool { return t.Compare(other) > 0 }

// CompareAny compares t with a value of unknown type.
// A nil value, or a nil *Time, sorts below every time so the result is +1.
// Any type other than Time or *Time is a type mismatch.
func (t Time) CompareAny(v any) (int, error) {
	switch other := v.(type) {
	case nil:
		return 1, nil
	case Time:
		return t.Compare(other), nil
	case *Time:
		if other == nil {
			return 1, nil
		}
		return t.Compare(*other), nil
	default:
		return 0, errs.NewTypeMismatchError("entity.Time", v)
	}
}

// Plus moves the time forward by d, wrapping past midnight
func (t Time) Plus(d Duration) Time {
	sod := (t.SecondOfDay() + d.Seconds()%SecondsPerDay) % SecondsPerDay
	return timeFromSecondOfDay(sod)
}

// Minus moves the time backward by d, wrapping before midnight
func (t Time) Minus(d Duration) Time {
	sod := t.SecondOfDay() - d.Seconds()%SecondsPerDay
	if sod < 0 {
		sod += SecondsPerDay
	}
	return timeFromSecondOfDay(sod)
}

// String renders the time as zero-padded HH:MM:SS
func (t Time) String() string {
	return formatClock(int(t.hours), int(t.minutes), int(t.seconds))
}

// MarshalText implements encoding.TextMarshaler
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
