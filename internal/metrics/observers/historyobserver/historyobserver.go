package historyobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/metrics"
)

type HistoryObserver struct {
	obsRepo repositories.ObservationRepository
	annRepo repositories.AnnouncementRepository
	logger  *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	obsRepo repositories.ObservationRepository,
	annRepo repositories.AnnouncementRepository,
	logger *zerolog.Logger,
) HistoryObserver {
	observer := HistoryObserver{
		obsRepo: obsRepo,
		annRepo: annRepo,
		logger:  logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o HistoryObserver) Observe(ctx context.Context, m *metrics.Collector) {
	o.observeObservationCount(ctx, m)
	o.observeAnnouncementCount(ctx, m)
}

func (o HistoryObserver) observeObservationCount(ctx context.Context, m *metrics.Collector) {
	count, err := o.obsRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe observation count")
		return
	}
	m.ObservationRepositorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed observation count")
}

func (o HistoryObserver) observeAnnouncementCount(ctx context.Context, m *metrics.Collector) {
	count, err := o.annRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe announcement count")
		return
	}
	m.AnnouncementRepositorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed announcement count")
}
