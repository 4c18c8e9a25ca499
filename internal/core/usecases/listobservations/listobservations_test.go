package listobservations_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/core/usecases/listobservations"
)

type MockObservationRepository struct {
	mock.Mock
	repositories.ObservationRepository
}

func (m *MockObservationRepository) List(ctx context.Context, limit int) ([]observation.Observation, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]observation.Observation), args.Error(1) // nolint: forcetypeassert
}

func TestListObservationsUseCase_Success(t *testing.T) {
	ctx := context.TODO()

	tgt := target.MustNew("mc.example.com", 25565)
	serverStatus := status.NewUnavailable(protocol.EditionJava, "connection refused")
	items := []observation.Observation{
		observation.New(tgt, serverStatus, 2, true, announcement.DecisionNone, time.Now()),
		observation.New(tgt, serverStatus, 1, false, announcement.DecisionNone, time.Now()),
	}

	obsRepo := new(MockObservationRepository)
	obsRepo.On("List", ctx, 10).Return(items, nil).Once()

	uc := listobservations.New(obsRepo)
	listed, err := uc.Execute(ctx, listobservations.NewRequest(10))

	assert.NoError(t, err)
	assert.Equal(t, items, listed)

	obsRepo.AssertExpectations(t)
}

func TestListObservationsUseCase_RepositoryError(t *testing.T) {
	ctx := context.TODO()

	obsRepo := new(MockObservationRepository)
	obsRepo.On("List", ctx, 10).Return([]observation.Observation{}, errors.New("error")).Once()

	uc := listobservations.New(obsRepo)
	listed, err := uc.Execute(ctx, listobservations.NewRequest(10))

	assert.ErrorIs(t, err, listobservations.ErrUnableToObtainObservations)
	assert.Nil(t, listed)

	obsRepo.AssertExpectations(t)
}
