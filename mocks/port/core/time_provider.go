package core

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a testify mock for core.TimeProvider
type MockTimeProvider struct {
	mock.Mock
}

// Now returns the configured time
func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// FixedTimeProvider always returns the same instant
type FixedTimeProvider struct {
	At time.Time
}

// Now returns the fixed instant
func (p FixedTimeProvider) Now() time.Time {
	return p.At
}
