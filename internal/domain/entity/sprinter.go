package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
)

// Sprinter is a relay race participant with an accumulated running time
type Sprinter struct {
	ID          string    // Unique identifier (UUID)
	FirstName   string    // Trimmed, never empty
	LastName    string    // Trimmed, never empty
	runningTime Duration  // Accumulated score; only changed through AddTime/SubtractTime
	CreatedAt   time.Time // When the sprinter was registered
	UpdatedAt   time.Time // When the running time last changed
}

// NewSprinter creates a sprinter from names and a running time in H:MM:SS form
func NewSprinter(firstName, lastName, runningTime string, timeProvider coreport.TimeProvider) (*Sprinter, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, errs.ErrInvalidName
	}

	score, err := ParseDuration(runningTime)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Sprinter{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		LastName:    lastName,
		runningTime: score,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RunningTime returns the accumulated running time
func (s *Sprinter) RunningTime() Duration {
	return s.runningTime
}

// FullName returns "First Last"
func (s *Sprinter) FullName() string {
	return s.FirstName + " " + s.LastName
}

// NameKey returns the case-insensitive lookup key for a first and last name
func NameKey(firstName, lastName string) string {
	return strings.ToLower(strings.TrimSpace(firstName)) + "\x00" + strings.ToLower(strings.TrimSpace(lastName))
}

// Key returns the lookup key for this sprinter
func (s *Sprinter) Key() string {
	return NameKey(s.FirstName, s.LastName)
}

// AddTime adds d to the running time
func (s *Sprinter) AddTime(d Duration, timeProvider coreport.TimeProvider) {
	s.runningTime = s.runningTime.Plus(d)
	s.UpdatedAt = timeProvider.Now()
}

// SubtractTime removes d from the running time.
// Returns an error and leaves the sprinter untouched if the result would be negative.
func (s *Sprinter) SubtractTime(d Duration, timeProvider coreport.TimeProvider) error {
	remaining, err := s.runningTime.Minus(d)
	if err != nil {
		return err
	}

	s.runningTime = remaining
	s.UpdatedAt = timeProvider.Now()
	return nil
}

// Clone returns a copy that can be modified without affecting s
func (s *Sprinter) Clone() *Sprinter {
	c := *s
	return &c
}

// String renders "First Last | H:MM:SS"
func (s *Sprinter) String() string {
	return fmt.Sprintf("%s | %s", s.FullName(), s.runningTime)
}
