package listobservations

import (
	"context"
	"errors"

	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/repositories"
)

var ErrUnableToObtainObservations = errors.New("unable to obtain observations from repository")

type UseCase struct {
	obsRepo repositories.ObservationRepository
}

type Request struct {
	limit int
}

func New(
	obsRepo repositories.ObservationRepository,
) UseCase {
	return UseCase{
		obsRepo: obsRepo,
	}
}

func NewRequest(limit int) Request {
	return Request{
		limit: limit,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) ([]observation.Observation, error) {
	items, err := uc.obsRepo.List(ctx, req.limit)
	if err != nil {
		return nil, ErrUnableToObtainObservations
	}
	return items, nil
}
