package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
)

func TestNewDuration(t *testing.T) {
	t.Run("Valid components", func(t *testing.T) {
		testCases := []struct {
			hours, minutes, seconds int64
			total                   int64
			expected                string
		}{
			{0, 0, 0, 0, "0:00:00"},
			{1, 25, 25, 5125, "1:25:25"},
			{14, 0, 0, 50400, "14:00:00"},
			{127, 59, 59, 460799, "127:59:59"},
		}

		for _, tc := range testCases {
			t.Run(tc.expected, func(t *testing.T) {
				d, err := NewDuration(tc.hours, tc.minutes, tc.seconds)
				require.NoError(t, err)
				assert.Equal(t, tc.total, d.Seconds())
				assert.Equal(t, tc.expected, d.String())
			})
		}
	})

	t.Run("Out of range components", func(t *testing.T) {
		testCases := []struct {
			hours, minutes, seconds int64
			field                   string
		}{
			{-1, 0, 0, "hours"},
			{0, 60, 0, "minutes"},
			{0, -1, 0, "minutes"},
			{0, 0, 60, "seconds"},
			{0, 0, -1, "seconds"},
			{maxDurationHours + 1, 0, 0, "hours"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%d:%d:%d", tc.hours, tc.minutes, tc.seconds), func(t *testing.T) {
				_, err := NewDuration(tc.hours, tc.minutes, tc.seconds)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrOutOfRange)

				var rangeErr *errs.RangeError
				require.True(t, errors.As(err, &rangeErr))
				assert.Equal(t, tc.field, rangeErr.Field)
			})
		}
	})

	t.Run("Hours and minutes", func(t *testing.T) {
		d, err := NewDurationHM(2, 30)
		require.NoError(t, err)
		assert.Equal(t, "2:30:00", d.String())

		_, err = NewDurationHM(0, 60)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})

	t.Run("Total seconds", func(t *testing.T) {
		d, err := DurationFromSeconds(3661)
		require.NoError(t, err)
		assert.Equal(t, "1:01:01", d.String())

		d, err = DurationFromSeconds(0)
		require.NoError(t, err)
		assert.True(t, d.IsZero())

		_, err = DurationFromSeconds(-1)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)

		d, err = DurationFromSeconds(maxDurationSeconds)
		require.NoError(t, err)
		assert.Equal(t, MaxDuration, d)

		_, err = DurationFromSeconds(math.MaxInt64)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})
}

func TestParseDuration(t *testing.T) {
	t.Run("Valid text", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"0:00:00", "0:00:00"},
			{"127:59:59", "127:59:59"},
			{"12:30:30", "12:30:30"},
			{"5", "5:00:00"},
			{"1:30", "1:30:00"},
			{"1:02:03.999", "1:02:03"},
			{"1:02:03.0", "1:02:03"},
			{"0001:00:00", "1:00:00"},
			{"100000:00:00", "100000:00:00"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				d, err := ParseDuration(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, d.String())
			})
		}
	})

	t.Run("Empty text", func(t *testing.T) {
		_, err := ParseDuration("")
		assert.ErrorIs(t, err, errs.ErrEmptyInput)
		assert.NotErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("Malformed text", func(t *testing.T) {
		testCases := []string{
			"1:60:00",
			"1:00:60",
			"1:5:00",
			"1:00:5",
			"-1:00:00",
			"a:00:00",
			" 1:00:00",
			"1:00:00 ",
			"1:00:00.",
			"1::00",
			":00:00",
			"1:00:00.5.5",
			"1:00.5",
			"99999999999999999999:00:00",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := ParseDuration(tc)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidFormat)
			})
		}
	})
}

func TestDurationRoundTrip(t *testing.T) {
	for _, h := range []int64{0, 1, 23, 24, 127, 1000} {
		for m := int64(0); m < 60; m += 7 {
			for s := int64(0); s < 60; s += 11 {
				d, err := NewDuration(h, m, s)
				require.NoError(t, err)

				parsed, err := ParseDuration(d.String())
				require.NoError(t, err)
				assert.Equal(t, d, parsed)
			}
		}
	}
}

func TestDurationAccessors(t *testing.T) {
	d := MustParseDuration("127:05:09")

	assert.Equal(t, int64(127), d.Hours())
	assert.Equal(t, 5, d.Minutes())
	assert.Equal(t, 9, d.SecondsPart())
	assert.Equal(t, 127*time.Hour+5*time.Minute+9*time.Second, d.Std())
	assert.False(t, d.IsZero())
	assert.True(t, Duration{}.IsZero())
}

func TestDurationOrdering(t *testing.T) {
	samples := []Duration{
		MustParseDuration("0:00:00"),
		MustParseDuration("0:00:01"),
		MustParseDuration("0:59:59"),
		MustParseDuration("1:00:00"),
		MustParseDuration("23:59:59"),
		MustParseDuration("24:00:00"),
		MustParseDuration("127:59:59"),
	}

	for i, a := range samples {
		for j, b := range samples {
			less, equal, greater := a.Less(b), a.Equal(b), a.Greater(b)

			holding := 0
			for _, holds := range []bool{less, equal, greater} {
				if holds {
					holding++
				}
			}
			assert.Equal(t, 1, holding, "exactly one relation must hold for %s and %s", a, b)

			switch {
			case i < j:
				assert.True(t, less)
				assert.Equal(t, -1, a.Compare(b))
			case i == j:
				assert.True(t, equal)
				assert.Equal(t, 0, a.Compare(b))
				assert.True(t, a == b)
			default:
				assert.True(t, greater)
				assert.Equal(t, 1, a.Compare(b))
			}

			assert.Equal(t, less || equal, a.LessOrEqual(b))
			assert.Equal(t, greater || equal, a.GreaterOrEqual(b))
		}
	}
}

func TestDurationCompareAny(t *testing.T) {
	d := MustParseDuration("1:00:00")
	shorter := MustParseDuration("0:30:00")

	t.Run("Same type", func(t *testing.T) {
		result, err := d.CompareAny(shorter)
		require.NoError(t, err)
		assert.Equal(t, 1, result)

		result, err = d.CompareAny(&d)
		require.NoError(t, err)
		assert.Equal(t, 0, result)
	})

	t.Run("Absent value sorts first", func(t *testing.T) {
		result, err := d.CompareAny(nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result)

		var missing *Duration
		result, err = Duration{}.CompareAny(missing)
		require.NoError(t, err)
		assert.Equal(t, 1, result)
	})

	t.Run("Foreign type", func(t *testing.T) {
		for _, v := range []any{"1:00:00", 3600, MustParseTime("01:00:00"), time.Hour} {
			_, err := d.CompareAny(v)
			assert.ErrorIs(t, err, errs.ErrTypeMismatch)
		}
	})
}

func TestDurationPlus(t *testing.T) {
	testCases := []struct {
		left, right, expected string
	}{
		{"12:30:30", "1:25:25", "13:55:55"},
		{"0:00:00", "0:00:00", "0:00:00"},
		{"1:00:00", "0:00:00", "1:00:00"},
		{"0:30:00", "0:30:00", "1:00:00"},
		{"0:30:00", "0:29:59", "0:59:59"},
		{"1:30:30", "2:30:30", "4:01:00"},
		{"23:59:59", "0:00:01", "24:00:00"},
		{"100:00:00", "27:59:59", "127:59:59"},
	}

	for _, tc := range testCases {
		t.Run(tc.left+"+"+tc.right, func(t *testing.T) {
			left := MustParseDuration(tc.left)
			right := MustParseDuration(tc.right)

			assert.Equal(t, tc.expected, left.Plus(right).String())
			assert.Equal(t, tc.expected, right.Plus(left).String())
		})
	}
}

func TestDurationPlusSaturates(t *testing.T) {
	longest, err := NewDuration(maxDurationHours, 59, 59)
	require.NoError(t, err)

	parsed, err := ParseDuration(longest.String())
	require.NoError(t, err)
	require.Equal(t, longest, parsed)

	sum := longest.Plus(longest)
	assert.Equal(t, MaxDuration, sum)
	assert.GreaterOrEqual(t, sum.Seconds(), int64(0))
	assert.True(t, sum.GreaterOrEqual(longest))

	reparsed, err := ParseDuration(sum.String())
	require.NoError(t, err)
	assert.Equal(t, sum, reparsed)

	assert.Equal(t, MaxDuration, MaxDuration.Plus(MustParseDuration("0:00:01")))
	assert.Equal(t, MaxDuration, MustParseDuration("0:00:01").Plus(MaxDuration))
	assert.Equal(t, MaxDuration, MaxDuration.Plus(Duration{}))

	remaining, err := sum.Minus(MustParseDuration("1:00:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(maxDurationHours-1), remaining.Hours())
	assert.Equal(t, "59:59", remaining.String()[len(remaining.String())-5:])
}

func TestDurationMinus(t *testing.T) {
	t.Run("Valid subtraction", func(t *testing.T) {
		testCases := []struct {
			left, right, expected string
		}{
			{"0:00:00", "0:00:00", "0:00:00"},
			{"1:00:00", "0:00:00", "1:00:00"},
			{"0:30:00", "0:30:00", "0:00:00"},
			{"1:30:30", "0:30:30", "1:00:00"},
			{"12:30:30", "1:25:25", "11:05:05"},
			{"127:59:59", "103:59:59", "24:00:00"},
		}

		for _, tc := range testCases {
			t.Run(tc.left+"-"+tc.right, func(t *testing.T) {
				result, err := MustParseDuration(tc.left).Minus(MustParseDuration(tc.right))
				require.NoError(t, err)
				assert.Equal(t, tc.expected, result.String())
			})
		}
	})

	t.Run("Negative result", func(t *testing.T) {
		_, err := MustParseDuration("2:30:25").Minus(MustParseDuration("23:30:30"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNegativeResult)

		var negErr *errs.NegativeResultError
		require.True(t, errors.As(err, &negErr))
		assert.Equal(t, "2:30:25", negErr.Left)
		assert.Equal(t, "23:30:30", negErr.Right)
	})

	t.Run("Non-negativity", func(t *testing.T) {
		for _, l := range []int64{0, 1, 59, 3600, 86399, 86400, 460799} {
			for _, r := range []int64{0, 1, 59, 3600, 86399, 86400, 460799} {
				left, _ := DurationFromSeconds(l)
				right, _ := DurationFromSeconds(r)

				result, err := left.Minus(right)
				if l < r {
					assert.ErrorIs(t, err, errs.ErrNegativeResult)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, l-r, result.Seconds())
			}
		}
	})
}

func TestDurationBetween(t *testing.T) {
	testCases := []struct {
		from, to, expected string
	}{
		{"7:30:00", "21:30:00", "14:00:00"},
		{"00:00:00", "23:59:59", "23:59:59"},
		{"12:00:00", "12:00:00", "0:00:00"},
		{"23:00:00", "01:00:00", "22:00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			from := MustParseTime(tc.from)
			to := MustParseTime(tc.to)

			assert.Equal(t, tc.expected, DurationBetween(from, to).String())
			assert.Equal(t, DurationBetween(from, to), DurationBetween(to, from))
		})
	}
}

func TestDurationTextEncoding(t *testing.T) {
	type payload struct {
		RunningTime Duration `json:"runningTime"`
	}

	out, err := json.Marshal(payload{RunningTime: MustParseDuration("1:02:03")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"runningTime":"1:02:03"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"runningTime":"127:59:59.5"}`), &in))
	assert.Equal(t, "127:59:59", in.RunningTime.String())

	err = json.Unmarshal([]byte(`{"runningTime":"1:99:00"}`), &in)
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestMustParseDurationPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseDuration("not a duration") })
}
