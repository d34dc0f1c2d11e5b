package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
)

// NoopLogger discards every entry but remembers its level, for tests and quiet runs
type NoopLogger struct {
	level atomic.Int32
}

// NewNoopLogger creates a no-op logger at info level
func NewNoopLogger() core.Logger {
	l := &NoopLogger{}
	l.level.Store(int32(core.LogLevelInfo))
	return l
}

// SetLevel records the level
func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level.Store(int32(level)) }

// GetLevel returns the recorded level
func (l *NoopLogger) GetLevel() core.LogLevel { return core.LogLevel(l.level.Load()) }

func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any)  {}
func (l *NoopLogger) Warn(string, map[string]any)  {}
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error { return nil }
