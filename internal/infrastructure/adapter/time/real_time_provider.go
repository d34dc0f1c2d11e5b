package time

import (
	"time"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current local time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
