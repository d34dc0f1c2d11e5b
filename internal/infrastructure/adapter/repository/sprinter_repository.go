package repository

import (
	"context"
	"sort"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	errs "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
)

// sprinterRecord keeps the registration sequence next to the stored copy
type sprinterRecord struct {
	sprinter *entity.Sprinter
	seq      uint64
}

// SprinterRepository implements persistence.SprinterRepository in memory on top of go-cache.
// Entries never expire; the store lives as long as the process.
type SprinterRepository struct {
	store  *gocache.Cache
	logger coreport.Logger

	mu      sync.Mutex // guards nextSeq and read-modify-write on store
	nextSeq uint64
}

// NewSprinterRepository creates an empty in-memory sprinter store
func NewSprinterRepository(logger coreport.Logger) *SprinterRepository {
	return &SprinterRepository{
		store:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

// Create stores a copy of the sprinter
func (r *SprinterRepository) Create(ctx context.Context, sprinter *entity.Sprinter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record := sprinterRecord{sprinter: sprinter.Clone(), seq: r.nextSeq}
	if err := r.store.Add(sprinter.Key(), record, gocache.NoExpiration); err != nil {
		r.logger.Warn("Duplicate sprinter registration", map[string]any{
			"sprinter": sprinter.FullName(),
		})
		return errs.ErrDuplicateSprinter
	}
	r.nextSeq++

	r.logger.Debug("Sprinter stored", map[string]any{
		"sprinterId": sprinter.ID,
		"seq":        record.seq,
	})
	return nil
}

// GetByName retrieves a copy of the sprinter with the given name
func (r *SprinterRepository) GetByName(ctx context.Context, firstName, lastName string) (*entity.Sprinter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, found := r.store.Get(entity.NameKey(firstName, lastName))
	if !found {
		return nil, errs.ErrSprinterNotFound
	}
	return item.(sprinterRecord).sprinter.Clone(), nil
}

// Update replaces the stored copy, keeping its registration order
func (r *SprinterRepository) Update(ctx context.Context, sprinter *entity.Sprinter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sprinter.Key()
	item, found := r.store.Get(key)
	if !found {
		return errs.ErrSprinterNotFound
	}

	record := item.(sprinterRecord)
	record.sprinter = sprinter.Clone()
	r.store.Set(key, record, gocache.NoExpiration)

	r.logger.Debug("Sprinter updated", map[string]any{
		"sprinterId":  sprinter.ID,
		"runningTime": sprinter.RunningTime().String(),
	})
	return nil
}

// List returns copies of all sprinters in registration order
func (r *SprinterRepository) List(ctx context.Context) ([]*entity.Sprinter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := r.store.Items()
	records := make([]sprinterRecord, 0, len(items))
	for _, item := range items {
		records = append(records, item.Object.(sprinterRecord))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].seq < records[j].seq
	})

	sprinters := make([]*entity.Sprinter, len(records))
	for i, record := range records {
		sprinters[i] = record.sprinter.Clone()
	}
	return sprinters, nil
}

// Count returns the number of stored sprinters
func (r *SprinterRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.store.ItemCount(), nil
}
