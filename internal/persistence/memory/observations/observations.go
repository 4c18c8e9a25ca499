package observations

import (
	"context"
	"sync"

	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/pkg/slice"
)

// Repository keeps a bounded in-memory log of observations.
// Items are stored in arrival order, with the oldest dropped
// once the cap is exceeded.
type Repository struct {
	items   []observation.Observation
	maxSize int
	mutex   sync.RWMutex
}

func New(maxSize int) *Repository {
	return &Repository{
		maxSize: maxSize,
	}
}

func (mr *Repository) Add(_ context.Context, obs observation.Observation) error {
	mr.mutex.Lock()
	defer mr.mutex.Unlock()

	mr.items = append(mr.items, obs)
	if mr.maxSize > 0 && len(mr.items) > mr.maxSize {
		mr.items = mr.items[len(mr.items)-mr.maxSize:]
	}

	return nil
}

func (mr *Repository) Latest(_ context.Context) (observation.Observation, error) {
	mr.mutex.RLock()
	defer mr.mutex.RUnlock()

	if len(mr.items) == 0 {
		return observation.Blank, repositories.ErrObservationNotFound
	}

	return mr.items[len(mr.items)-1], nil
}

func (mr *Repository) List(_ context.Context, limit int) ([]observation.Observation, error) {
	mr.mutex.RLock()
	defer mr.mutex.RUnlock()

	newestFirst := slice.Reversed(mr.items)
	if limit > 0 {
		newestFirst = slice.TruncateSafe(newestFirst, limit)
	}

	return newestFirst, nil
}

func (mr *Repository) Count(_ context.Context) (int, error) {
	mr.mutex.RLock()
	defer mr.mutex.RUnlock()

	return len(mr.items), nil
}

func (mr *Repository) Clear(_ context.Context) error {
	mr.mutex.Lock()
	defer mr.mutex.Unlock()

	mr.items = nil

	return nil
}
