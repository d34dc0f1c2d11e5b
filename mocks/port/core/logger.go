package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
)

// MockLogger is a testify mock for core.Logger
type MockLogger struct {
	mock.Mock
}

// SetLevel records the call
func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

// GetLevel returns the configured level
func (m *MockLogger) GetLevel() coreport.LogLevel {
	args := m.Called()
	return args.Get(0).(coreport.LogLevel)
}

// Debug records the call
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info records the call
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn records the call
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error records the call
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush returns the configured error
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
