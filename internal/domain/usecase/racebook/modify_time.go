package racebook

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
)

// AddTime adds delta to the running time of the sprinter found by name
func (r *RaceBookUseCase) AddTime(ctx context.Context, firstName, lastName, delta string) (*entity.Sprinter, error) {
	return r.modifyTime(ctx, firstName, lastName, delta, true)
}

// SubtractTime subtracts delta from the running time of the sprinter found by name
func (r *RaceBookUseCase) SubtractTime(ctx context.Context, firstName, lastName, delta string) (*entity.Sprinter, error) {
	return r.modifyTime(ctx, firstName, lastName, delta, false)
}

// modifyTime handles both addition and subtraction with a unified flow
func (r *RaceBookUseCase) modifyTime(ctx context.Context, firstName, lastName, delta string, isAdd bool) (*entity.Sprinter, error) {
	operation := "subtract time"
	if isAdd {
		operation = "add time"
	}

	// Validate the duration before the lookup so malformed input never depends on state
	amount, err := entity.ParseDuration(delta)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sprinter, err := r.sprinterRepo.GetByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, errs.ErrSprinterNotFound) {
			r.logger.Warn("Attempt to modify running time of unknown sprinter", map[string]any{
				"firstName": firstName,
				"lastName":  lastName,
				"operation": operation,
			})
		} else {
			r.logger.Error("Failed to get sprinter", map[string]any{
				"firstName": firstName,
				"lastName":  lastName,
				"error":     err.Error(),
			})
		}
		return nil, errs.NewSprinterError(firstName, lastName, operation, err)
	}

	previous := sprinter.RunningTime()

	if isAdd {
		sprinter.AddTime(amount, r.timeProvider)
	} else if err := sprinter.SubtractTime(amount, r.timeProvider); err != nil {
		// The entity leaves the running time untouched on failure
		return nil, errs.NewSprinterError(sprinter.FirstName, sprinter.LastName, operation, err)
	}

	if err := r.sprinterRepo.Update(ctx, sprinter); err != nil {
		r.logger.Error("Failed to update sprinter running time", map[string]any{
			"sprinterId": sprinter.ID,
			"operation":  operation,
			"error":      err.Error(),
		})
		return nil, err
	}

	r.logger.Info("Sprinter running time modified", map[string]any{
		"sprinterId":   sprinter.ID,
		"sprinter":     sprinter.FullName(),
		"operation":    operation,
		"delta":        amount.String(),
		"previousTime": previous.String(),
		"runningTime":  sprinter.RunningTime().String(),
	})

	return sprinter, nil
}
