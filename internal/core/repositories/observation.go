package repositories

import (
	"context"
	"errors"

	"github.com/mcherald/mcherald/internal/core/entities/observation"
)

var ErrObservationNotFound = errors.New("the requested observation was not found")

// ObservationRepository keeps a capped history of check cycles,
// newest first.
type ObservationRepository interface {
	Add(ctx context.Context, obs observation.Observation) error
	Latest(ctx context.Context) (observation.Observation, error)
	List(ctx context.Context, limit int) ([]observation.Observation, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
