package statusobserver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/metrics"
)

// StatusObserver projects the latest recorded observation onto
// the current status gauges.
type StatusObserver struct {
	obsRepo repositories.ObservationRepository
	logger  *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	obsRepo repositories.ObservationRepository,
	logger *zerolog.Logger,
) StatusObserver {
	observer := StatusObserver{
		obsRepo: obsRepo,
		logger:  logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o StatusObserver) Observe(ctx context.Context, m *metrics.Collector) {
	latest, err := o.obsRepo.Latest(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrObservationNotFound) {
			o.logger.Error().Err(err).Msg("Unable to observe latest observation")
		}
		return
	}

	if latest.Classification == status.Online {
		m.ServerOnline.Set(1)
	} else {
		m.ServerOnline.Set(0)
	}
	m.ServerPlayers.Set(float64(latest.Status.PlayersOnline))
	m.ServerLatency.Set(latest.Status.Latency.Seconds())
	m.MonitorStreak.Set(float64(latest.Streak))

	o.logger.Debug().
		Stringer("classification", latest.Classification).
		Int("streak", latest.Streak).
		Msg("Observed latest server status")
}
