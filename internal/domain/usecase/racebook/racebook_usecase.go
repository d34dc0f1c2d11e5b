package racebook

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/usecase"
)

// RaceBookUseCase implements the relay race book business logic
type RaceBookUseCase struct {
	sprinterRepo persistence.SprinterRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxSprinters int // 0 means unlimited

	// mu serializes read-modify-write sequences against the repository
	mu sync.Mutex
}

// NewRaceBookUseCase creates a new race book use case instance
func NewRaceBookUseCase(
	sprinterRepo persistence.SprinterRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxSprinters int,
) usecase.RaceBookUseCase {
	return &RaceBookUseCase{
		sprinterRepo: sprinterRepo,
		timeProvider: timeProvider,
		logger:       logger,
		maxSprinters: maxSprinters,
	}
}

// ListSprinters returns all sprinters in registration order
func (r *RaceBookUseCase) ListSprinters(ctx context.Context) ([]*entity.Sprinter, error) {
	sprinters, err := r.sprinterRepo.List(ctx)
	if err != nil {
		r.logger.Error("Failed to list sprinters", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return sprinters, nil
}
