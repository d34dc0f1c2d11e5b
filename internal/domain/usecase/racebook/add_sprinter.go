package racebook

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
)

// AddSprinter registers a new sprinter with the given running time
func (r *RaceBookUseCase) AddSprinter(ctx context.Context, firstName, lastName, runningTime string) (*entity.Sprinter, error) {
	// Validate input before touching the repository
	sprinter, err := entity.NewSprinter(firstName, lastName, runningTime, r.timeProvider)
	if err != nil {
		r.logger.Warn("Rejected sprinter registration", map[string]any{
			"firstName":   firstName,
			"lastName":    lastName,
			"runningTime": runningTime,
			"error":       err.Error(),
		})
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSprinters > 0 {
		count, err := r.sprinterRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count >= r.maxSprinters {
			return nil, fmt.Errorf("%w: race book is full (%d sprinters)", errs.ErrInvalidRequest, r.maxSprinters)
		}
	}

	if err := r.sprinterRepo.Create(ctx, sprinter); err != nil {
		if !errors.Is(err, errs.ErrDuplicateSprinter) {
			r.logger.Error("Failed to create sprinter", map[string]any{
				"sprinter": sprinter.FullName(),
				"error":    err.Error(),
			})
		}
		return nil, errs.NewSprinterError(sprinter.FirstName, sprinter.LastName, "add sprinter", err)
	}

	r.logger.Info("Sprinter added", map[string]any{
		"sprinterId":  sprinter.ID,
		"sprinter":    sprinter.FullName(),
		"runningTime": sprinter.RunningTime().String(),
	})

	return sprinter, nil
}

// SeedSprinters registers entries of the form "First Last H:MM:SS".
// The last two fields are the last name and running time; everything before them is the first name.
// Sprinters that already exist are skipped.
func (r *RaceBookUseCase) SeedSprinters(ctx context.Context, entries []string) error {
	for _, entry := range entries {
		fields := strings.Fields(entry)
		if len(fields) < 3 {
			return fmt.Errorf("%w: seed entry %q must look like \"First Last H:MM:SS\"", errs.ErrInvalidRequest, entry)
		}

		n := len(fields)
		firstName := strings.Join(fields[:n-2], " ")
		lastName := fields[n-2]
		runningTime := fields[n-1]

		_, err := r.AddSprinter(ctx, firstName, lastName, runningTime)
		if errors.Is(err, errs.ErrDuplicateSprinter) {
			r.logger.Info("Seed sprinter already exists", map[string]any{
				"sprinter": firstName + " " + lastName,
			})
			continue
		}
		if err != nil {
			return fmt.Errorf("seed entry %q: %w", entry, err)
		}
	}

	r.logger.Info("Seed sprinters created or verified", map[string]any{
		"entries": len(entries),
	})
	return nil
}
