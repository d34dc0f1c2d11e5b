package clock

import (
	"fmt"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/usecase"
)

// ClockUseCase implements time-of-day and duration arithmetic on text input
type ClockUseCase struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewClockUseCase creates a new clock use case instance
func NewClockUseCase(timeProvider coreport.TimeProvider, logger coreport.Logger) usecase.ClockUseCase {
	return &ClockUseCase{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Now returns the current wall-clock time of day
func (c *ClockUseCase) Now() entity.Time {
	return entity.CurrentTime(c.timeProvider)
}

// Shift moves a time of day forward or backward by a duration
func (c *ClockUseCase) Shift(timeText, durationText string, direction usecase.Direction) (entity.Time, error) {
	start, err := entity.ParseTime(timeText)
	if err != nil {
		return entity.Time{}, err
	}
	amount, err := entity.ParseDuration(durationText)
	if err != nil {
		return entity.Time{}, err
	}

	var result entity.Time
	switch direction {
	case usecase.DirectionForward:
		result = start.Plus(amount)
	case usecase.DirectionBackward:
		result = start.Minus(amount)
	default:
		return entity.Time{}, fmt.Errorf("%w: direction must be %q or %q, got %q",
			errs.ErrInvalidRequest, usecase.DirectionForward, usecase.DirectionBackward, direction)
	}

	c.logger.Debug("Time shifted", map[string]any{
		"time":      start.String(),
		"duration":  amount.String(),
		"direction": string(direction),
		"result":    result.String(),
	})
	return result, nil
}

// Gap returns the absolute duration between two times of day
func (c *ClockUseCase) Gap(fromText, toText string) (entity.Duration, error) {
	from, err := entity.ParseTime(fromText)
	if err != nil {
		return entity.Duration{}, err
	}
	to, err := entity.ParseTime(toText)
	if err != nil {
		return entity.Duration{}, err
	}

	return entity.DurationBetween(from, to), nil
}

// CompareTimes returns -1, 0 or +1 ordering two times of day
func (c *ClockUseCase) CompareTimes(leftText, rightText string) (int, error) {
	left, err := entity.ParseTime(leftText)
	if err != nil {
		return 0, err
	}
	right, err := entity.ParseTime(rightText)
	if err != nil {
		return 0, err
	}

	return left.Compare(right), nil
}

// CombineDurations adds or subtracts two durations
func (c *ClockUseCase) CombineDurations(leftText, rightText string, op usecase.DurationOperation) (entity.Duration, error) {
	left, err := entity.ParseDuration(leftText)
	if err != nil {
		return entity.Duration{}, err
	}
	right, err := entity.ParseDuration(rightText)
	if err != nil {
		return entity.Duration{}, err
	}

	switch op {
	case usecase.OperationPlus:
		return left.Plus(right), nil
	case usecase.OperationMinus:
		result, err := left.Minus(right)
		if err != nil {
			c.logger.Debug("Duration subtraction rejected", errs.LogFields(err))
			return entity.Duration{}, err
		}
		return result, nil
	default:
		return entity.Duration{}, fmt.Errorf("%w: operation must be %q or %q, got %q",
			errs.ErrInvalidRequest, usecase.OperationPlus, usecase.OperationMinus, op)
	}
}
