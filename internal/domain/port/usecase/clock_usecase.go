package usecase

import "github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"

// Direction selects whether a shift moves a time forward or backward
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// DurationOperation selects how two durations are combined
type DurationOperation string

const (
	OperationPlus  DurationOperation = "plus"
	OperationMinus DurationOperation = "minus"
)

// ClockUseCase exposes time-of-day and duration arithmetic on text input
type ClockUseCase interface {
	// Now returns the current wall-clock time of day
	Now() entity.Time

	// Shift moves a time of day by a duration, wrapping around midnight
	Shift(timeText, durationText string, direction Direction) (entity.Time, error)

	// Gap returns the absolute duration between two times of day
	Gap(fromText, toText string) (entity.Duration, error)

	// CompareTimes returns -1, 0 or +1 ordering two times of day
	CompareTimes(leftText, rightText string) (int, error)

	// CombineDurations adds or subtracts two durations
	CombineDurations(leftText, rightText string, op DurationOperation) (entity.Duration, error)
}
