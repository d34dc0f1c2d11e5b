package persistence

import (
	"context"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
)

// SprinterRepository holds the race book's sprinters.
// Implementations hand out copies: mutating a returned sprinter has no effect until Update.
type SprinterRepository interface {
	// Create stores a new sprinter
	//
	// Possible errors:
	// - ErrDuplicateSprinter: If a sprinter with the same name (case-insensitive) exists
	Create(ctx context.Context, sprinter *entity.Sprinter) error

	// GetByName retrieves a sprinter by first and last name (case-insensitive)
	//
	// Possible errors:
	// - ErrSprinterNotFound: If no sprinter has that name
	GetByName(ctx context.Context, firstName, lastName string) (*entity.Sprinter, error)

	// Update replaces a stored sprinter, matched by name
	//
	// Possible errors:
	// - ErrSprinterNotFound: If the sprinter was never created
	Update(ctx context.Context, sprinter *entity.Sprinter) error

	// List returns every sprinter in registration order
	List(ctx context.Context) ([]*entity.Sprinter, error)

	// Count returns the number of stored sprinters
	Count(ctx context.Context) (int, error)
}
