package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
)

// MockSprinterRepository is a testify mock for persistence.SprinterRepository
type MockSprinterRepository struct {
	mock.Mock
}

// Create records the call and returns the configured error
func (m *MockSprinterRepository) Create(ctx context.Context, sprinter *entity.Sprinter) error {
	args := m.Called(ctx, sprinter)
	return args.Error(0)
}

// GetByName returns the configured sprinter and error
func (m *MockSprinterRepository) GetByName(ctx context.Context, firstName, lastName string) (*entity.Sprinter, error) {
	args := m.Called(ctx, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sprinter), args.Error(1)
}

// Update records the call and returns the configured error
func (m *MockSprinterRepository) Update(ctx context.Context, sprinter *entity.Sprinter) error {
	args := m.Called(ctx, sprinter)
	return args.Error(0)
}

// List returns the configured sprinters and error
func (m *MockSprinterRepository) List(ctx context.Context) ([]*entity.Sprinter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Sprinter), args.Error(1)
}

// Count returns the configured count and error
func (m *MockSprinterRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
