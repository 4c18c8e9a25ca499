package announcestatus

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/core/sinks"
	"github.com/mcherald/mcherald/internal/metrics"
)

type UseCaseOptions struct {
	Cooldown time.Duration
}

type UseCase struct {
	sink    sinks.Sink
	annRepo repositories.AnnouncementRepository
	opts    UseCaseOptions
	metrics *metrics.Collector
	clock   clockwork.Clock
	logger  *zerolog.Logger
}

func New(
	sink sinks.Sink,
	annRepo repositories.AnnouncementRepository,
	opts UseCaseOptions,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sink:    sink,
		annRepo: annRepo,
		opts:    opts,
		metrics: metrics,
		clock:   clock,
		logger:  logger,
	}
}

type Request struct {
	State  announcement.State
	Target target.Target
	Status status.ServerStatus
}

func NewRequest(
	state announcement.State,
	tgt target.Target,
	serverStatus status.ServerStatus,
) Request {
	return Request{
		State:  state,
		Target: tgt,
		Status: serverStatus,
	}
}

type Response struct {
	Decision announcement.Decision
	State    announcement.State
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	now := uc.clock.Now()
	classification := req.Status.Classification()

	decision := req.State.Evaluate(now, classification, uc.opts.Cooldown)
	if decision != announcement.DecisionSent {
		uc.metrics.AnnouncementsSuppressed.WithLabelValues(decision.String()).Inc()
		uc.logger.Debug().
			Stringer("classification", classification).Stringer("decision", decision).
			Msg("Announcement is suppressed")
		return Response{Decision: decision, State: req.State}, nil
	}

	notice := sinks.Notice{
		Target:         req.Target,
		Classification: classification,
		Status:         req.Status,
		SentAt:         now,
	}
	if err := uc.sink.Send(ctx, notice); err != nil {
		uc.metrics.AnnouncementErrors.Inc()
		uc.logger.Error().
			Err(err).
			Stringer("classification", classification).Stringer("target", req.Target).
			Msg("Failed to deliver announcement")
		// the announcement state is left intact,
		// so the delivery is reattempted on the next stable cycle
		return Response{Decision: announcement.DecisionNone, State: req.State}, err
	}

	uc.metrics.AnnouncementsSent.WithLabelValues(classification.String()).Inc()

	newState := req.State.Commit(now, classification)

	ann := announcement.New(classification, notice.Summary(), now)
	if err := uc.annRepo.Add(ctx, ann); err != nil {
		// the audit history is best effort
		uc.logger.Error().
			Err(err).
			Stringer("classification", classification).
			Msg("Failed to add announcement to repository")
	}

	uc.logger.Info().
		Stringer("classification", classification).Stringer("target", req.Target).
		Msg("Announced server status change")

	return Response{Decision: announcement.DecisionSent, State: newState}, nil
}
