package statusobserver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/metrics/observers/statusobserver"
)

type MockObservationRepository struct {
	mock.Mock
	repositories.ObservationRepository
}

func (m *MockObservationRepository) Latest(ctx context.Context) (observation.Observation, error) {
	args := m.Called(ctx)
	return args.Get(0).(observation.Observation), args.Error(1) // nolint: forcetypeassert
}

func TestStatusObserver_Observe_Online(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	tgt := target.MustNew("mc.example.com", 25565)
	serverStatus := status.ServerStatus{
		Available:     true,
		Edition:       protocol.EditionJava,
		Method:        status.MethodQuery,
		PlayersOnline: 7,
		MaxPlayers:    20,
		Latency:       40 * time.Millisecond,
	}
	latest := observation.New(tgt, serverStatus, 5, true, announcement.DecisionSent, time.Now())

	obsRepo := new(MockObservationRepository)
	obsRepo.On("Latest", ctx).Return(latest, nil)

	observer := statusobserver.New(collector, obsRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.ServerOnline))
	assert.Equal(t, 7.0, testutil.ToFloat64(collector.ServerPlayers))
	assert.Equal(t, 0.04, testutil.ToFloat64(collector.ServerLatency))
	assert.Equal(t, 5.0, testutil.ToFloat64(collector.MonitorStreak))

	obsRepo.AssertExpectations(t)
}

func TestStatusObserver_Observe_Offline(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()
	collector.ServerOnline.Set(1)
	collector.ServerPlayers.Set(7)

	tgt := target.MustNew("mc.example.com", 25565)
	serverStatus := status.NewUnavailable(protocol.EditionJava, "connection refused")
	latest := observation.New(tgt, serverStatus, 2, true, announcement.DecisionSent, time.Now())

	obsRepo := new(MockObservationRepository)
	obsRepo.On("Latest", ctx).Return(latest, nil)

	observer := statusobserver.New(collector, obsRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, 0.0, testutil.ToFloat64(collector.ServerOnline))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.ServerPlayers))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.ServerLatency))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.MonitorStreak))

	obsRepo.AssertExpectations(t)
}

func TestStatusObserver_Observe_EmptyHistory(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	obsRepo := new(MockObservationRepository)
	obsRepo.On("Latest", ctx).Return(observation.Blank, repositories.ErrObservationNotFound)

	observer := statusobserver.New(collector, obsRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, 0.0, testutil.ToFloat64(collector.ServerOnline))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.MonitorStreak))

	obsRepo.AssertExpectations(t)
}

func TestStatusObserver_Observe_RepoFailure(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	obsRepo := new(MockObservationRepository)
	obsRepo.On("Latest", ctx).Return(observation.Blank, errors.New("repo failure"))

	observer := statusobserver.New(collector, obsRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, 0.0, testutil.ToFloat64(collector.ServerOnline))

	obsRepo.AssertExpectations(t)
}
