package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
)

// MockRaceBookUseCase is a testify mock for usecase.RaceBookUseCase
type MockRaceBookUseCase struct {
	mock.Mock
}

func (m *MockRaceBookUseCase) sprinter(args mock.Arguments) (*entity.Sprinter, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sprinter), args.Error(1)
}

func (m *MockRaceBookUseCase) sprinters(args mock.Arguments) ([]*entity.Sprinter, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Sprinter), args.Error(1)
}

// AddSprinter returns the configured sprinter and error
func (m *MockRaceBookUseCase) AddSprinter(ctx context.Context, firstName, lastName, runningTime string) (*entity.Sprinter, error) {
	return m.sprinter(m.Called(ctx, firstName, lastName, runningTime))
}

// ListSprinters returns the configured sprinters and error
func (m *MockRaceBookUseCase) ListSprinters(ctx context.Context) ([]*entity.Sprinter, error) {
	return m.sprinters(m.Called(ctx))
}

// SprintersAtMost returns the configured sprinters and error
func (m *MockRaceBookUseCase) SprintersAtMost(ctx context.Context, limit string) ([]*entity.Sprinter, error) {
	return m.sprinters(m.Called(ctx, limit))
}

// SprintersAtLeast returns the configured sprinters and error
func (m *MockRaceBookUseCase) SprintersAtLeast(ctx context.Context, limit string) ([]*entity.Sprinter, error) {
	return m.sprinters(m.Called(ctx, limit))
}

// AddTime returns the configured sprinter and error
func (m *MockRaceBookUseCase) AddTime(ctx context.Context, firstName, lastName, delta string) (*entity.Sprinter, error) {
	return m.sprinter(m.Called(ctx, firstName, lastName, delta))
}

// SubtractTime returns the configured sprinter and error
func (m *MockRaceBookUseCase) SubtractTime(ctx context.Context, firstName, lastName, delta string) (*entity.Sprinter, error) {
	return m.sprinter(m.Called(ctx, firstName, lastName, delta))
}

// BestSprinter returns the configured sprinter and error
func (m *MockRaceBookUseCase) BestSprinter(ctx context.Context) (*entity.Sprinter, error) {
	return m.sprinter(m.Called(ctx))
}

// SeedSprinters returns the configured error
func (m *MockRaceBookUseCase) SeedSprinters(ctx context.Context, entries []string) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
