package usecase

import (
	"context"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
)

// RaceBookUseCase defines the relay race book operations shared by the HTTP API and the console
type RaceBookUseCase interface {
	// AddSprinter registers a sprinter with an initial running time in H:MM:SS form
	AddSprinter(ctx context.Context, firstName, lastName, runningTime string) (*entity.Sprinter, error)

	// ListSprinters returns all sprinters in registration order
	ListSprinters(ctx context.Context) ([]*entity.Sprinter, error)

	// SprintersAtMost returns the sprinters whose running time is less than or equal to limit
	SprintersAtMost(ctx context.Context, limit string) ([]*entity.Sprinter, error)

	// SprintersAtLeast returns the sprinters whose running time is greater than or equal to limit
	SprintersAtLeast(ctx context.Context, limit string) ([]*entity.Sprinter, error)

	// AddTime adds delta to the running time of the sprinter found by name
	AddTime(ctx context.Context, firstName, lastName, delta string) (*entity.Sprinter, error)

	// SubtractTime subtracts delta from the running time of the sprinter found by name.
	// Fails with ErrNegativeResult if delta exceeds the running time.
	SubtractTime(ctx context.Context, firstName, lastName, delta string) (*entity.Sprinter, error)

	// BestSprinter returns the sprinter with the shortest running time
	BestSprinter(ctx context.Context) (*entity.Sprinter, error)

	// SeedSprinters registers "First Last H:MM:SS" entries, skipping ones already present
	SeedSprinters(ctx context.Context, entries []string) error
}
