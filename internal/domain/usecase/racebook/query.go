package racebook

import (
	"context"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
)

// SprintersAtMost returns the sprinters whose running time is less than or equal to limit
func (r *RaceBookUseCase) SprintersAtMost(ctx context.Context, limit string) ([]*entity.Sprinter, error) {
	return r.filter(ctx, limit, entity.Duration.LessOrEqual)
}

// SprintersAtLeast returns the sprinters whose running time is greater than or equal to limit
func (r *RaceBookUseCase) SprintersAtLeast(ctx context.Context, limit string) ([]*entity.Sprinter, error) {
	return r.filter(ctx, limit, entity.Duration.GreaterOrEqual)
}

func (r *RaceBookUseCase) filter(ctx context.Context, limit string, keep func(entity.Duration, entity.Duration) bool) ([]*entity.Sprinter, error) {
	threshold, err := entity.ParseDuration(limit)
	if err != nil {
		return nil, err
	}

	sprinters, err := r.ListSprinters(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]*entity.Sprinter, 0, len(sprinters))
	for _, sprinter := range sprinters {
		if keep(sprinter.RunningTime(), threshold) {
			matching = append(matching, sprinter)
		}
	}

	r.logger.Debug("Sprinters filtered by running time", map[string]any{
		"limit":    threshold.String(),
		"total":    len(sprinters),
		"matching": len(matching),
	})

	return matching, nil
}

// BestSprinter returns the sprinter with the shortest running time.
// On a tie the sprinter registered first wins.
func (r *RaceBookUseCase) BestSprinter(ctx context.Context) (*entity.Sprinter, error) {
	sprinters, err := r.ListSprinters(ctx)
	if err != nil {
		return nil, err
	}
	if len(sprinters) == 0 {
		return nil, errs.ErrNoSprinters
	}

	best := sprinters[0]
	for _, sprinter := range sprinters[1:] {
		if sprinter.RunningTime().Less(best.RunningTime()) {
			best = sprinter
		}
	}

	return best, nil
}
