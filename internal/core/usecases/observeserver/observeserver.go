package observeserver

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/debounce"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/core/usecases/announcestatus"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/prober/resolver"
)

type UseCaseOptions struct {
	Target          target.Target
	Mode            protocol.Mode
	StableThreshold int
}

// UseCase runs a single check cycle: probe the server, debounce the
// verdict, announce the change once the verdict is stable and record
// the outcome. The cycle itself never fails; probe and delivery
// failures are folded into the recorded observation and the returned
// state values.
type UseCase struct {
	resolver  resolver.Resolver
	announcer announcestatus.UseCase
	obsRepo   repositories.ObservationRepository
	opts      UseCaseOptions
	metrics   *metrics.Collector
	clock     clockwork.Clock
	logger    *zerolog.Logger
}

func New(
	resolver resolver.Resolver,
	announcer announcestatus.UseCase,
	obsRepo repositories.ObservationRepository,
	opts UseCaseOptions,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		resolver:  resolver,
		announcer: announcer,
		obsRepo:   obsRepo,
		opts:      opts,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// Request carries the debounce and announcement state produced
// by the previous cycle. The very first cycle starts from the
// blank values.
type Request struct {
	Debounce debounce.State
	Announce announcement.State
}

func NewRequest(debounceState debounce.State, announceState announcement.State) Request {
	return Request{
		Debounce: debounceState,
		Announce: announceState,
	}
}

type Response struct {
	Debounce    debounce.State
	Announce    announcement.State
	Observation observation.Observation
}

func (uc UseCase) Execute(ctx context.Context, req Request) Response {
	started := uc.clock.Now()

	serverStatus := uc.resolver.Resolve(ctx, uc.opts.Mode)
	classification := serverStatus.Classification()

	debounceState := req.Debounce.Observe(classification)
	stable := debounceState.IsStable(uc.opts.StableThreshold)

	announceState := req.Announce
	decision := announcement.DecisionNone
	if stable {
		annReq := announcestatus.NewRequest(announceState, uc.opts.Target, serverStatus)
		annResp, annErr := uc.announcer.Execute(ctx, annReq)
		if annErr != nil {
			uc.logger.Warn().
				Err(annErr).
				Stringer("classification", classification).
				Msg("Failed to announce server status")
		}
		announceState = annResp.State
		decision = annResp.Decision
	}

	obs := observation.New(
		uc.opts.Target,
		serverStatus,
		debounceState.Count(),
		stable,
		decision,
		uc.clock.Now(),
	)
	if err := uc.obsRepo.Add(ctx, obs); err != nil {
		uc.logger.Error().
			Err(err).
			Stringer("target", uc.opts.Target).
			Msg("Failed to add observation to repository")
	}

	uc.metrics.MonitorCycles.Inc()
	uc.metrics.MonitorCycleDurations.Observe(uc.clock.Since(started).Seconds())

	uc.logger.Debug().
		Stringer("classification", classification).
		Int("streak", debounceState.Count()).Bool("stable", stable).
		Stringer("decision", decision).Dur("elapsed", uc.clock.Since(started)).
		Msg("Completed check cycle")

	return Response{
		Debounce:    debounceState,
		Announce:    announceState,
		Observation: obs,
	}
}
