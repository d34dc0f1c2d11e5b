package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/relay-race-book/mocks/port/core"
)

func newTestSprinter(t *testing.T, firstName, lastName, runningTime string) *entity.Sprinter {
	t.Helper()
	sprinter, err := entity.NewSprinter(firstName, lastName, runningTime, coremocks.FixedTimeProvider{})
	require.NoError(t, err)
	return sprinter
}

func TestSprinterRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSprinterRepository(logger.NewNoopLogger())

	sprinter := newTestSprinter(t, "Usain", "Bolt", "0:00:09")
	require.NoError(t, repo.Create(ctx, sprinter))

	t.Run("Lookup ignores case", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "usain", "BOLT")
		require.NoError(t, err)
		assert.Equal(t, sprinter.ID, found.ID)
		assert.Equal(t, "0:00:09", found.RunningTime().String())
	})

	t.Run("Returned sprinter is a copy", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "Usain", "Bolt")
		require.NoError(t, err)
		found.AddTime(entity.MustParseDuration("1:00:00"), coremocks.FixedTimeProvider{})

		again, err := repo.GetByName(ctx, "Usain", "Bolt")
		require.NoError(t, err)
		assert.Equal(t, "0:00:09", again.RunningTime().String())
	})

	t.Run("Duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, newTestSprinter(t, "USAIN", "bolt", "0:00:10"))
		assert.ErrorIs(t, err, errs.ErrDuplicateSprinter)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := repo.GetByName(ctx, "Carl", "Lewis")
		assert.ErrorIs(t, err, errs.ErrSprinterNotFound)
	})
}

func TestSprinterRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewSprinterRepository(logger.NewNoopLogger())

	sprinter := newTestSprinter(t, "Florence", "Griffith", "1:30:30")
	require.NoError(t, repo.Create(ctx, sprinter))

	sprinter.AddTime(entity.MustParseDuration("0:29:30"), coremocks.FixedTimeProvider{})
	require.NoError(t, repo.Update(ctx, sprinter))

	found, err := repo.GetByName(ctx, "Florence", "Griffith")
	require.NoError(t, err)
	assert.Equal(t, "2:00:00", found.RunningTime().String())

	err = repo.Update(ctx, newTestSprinter(t, "Carl", "Lewis", "0:00:10"))
	assert.ErrorIs(t, err, errs.ErrSprinterNotFound)
}

func TestSprinterRepository_ListKeepsRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSprinterRepository(logger.NewNoopLogger())

	names := []string{"Zed", "Adam", "Mia", "Bob", "Kim"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, newTestSprinter(t, name, "Runner", "0:10:00")))
	}

	// Updating must not move a sprinter to the end
	first, err := repo.GetByName(ctx, "Zed", "Runner")
	require.NoError(t, err)
	first.AddTime(entity.MustParseDuration("0:00:01"), coremocks.FixedTimeProvider{})
	require.NoError(t, repo.Update(ctx, first))

	sprinters, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sprinters, len(names))
	for i, name := range names {
		assert.Equal(t, name, sprinters[i].FirstName)
	}
	assert.Equal(t, "0:10:01", sprinters[0].RunningTime().String())
}

func TestSprinterRepository_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewSprinterRepository(logger.NewNoopLogger())

	sprinters, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sprinters)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSprinterRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewSprinterRepository(logger.NewNoopLogger())

	assert.ErrorIs(t, repo.Create(ctx, newTestSprinter(t, "Usain", "Bolt", "0:00:09")), context.Canceled)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.GetByName(ctx, "Usain", "Bolt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSprinterRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewSprinterRepository(logger.NewNoopLogger())

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			sprinter, err := entity.NewSprinter(fmt.Sprintf("Runner%d", i), "Relay", "0:01:00", coremocks.FixedTimeProvider{})
			if err == nil {
				_ = repo.Create(ctx, sprinter)
			}
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, count)

	sprinters, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sprinters, workers)
}
