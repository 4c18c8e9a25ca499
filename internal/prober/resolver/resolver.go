package resolver

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/prober/probers"
)

type Opts struct {
	Target              target.Target
	Timeout             time.Duration
	BedrockQueryEnabled bool
}

// Resolver decides which protocol families to probe for a cycle
// and folds their outcomes into a single verdict. Resolution never
// raises: a failed probe degrades into an unavailable status
// carrying the failure diagnostic.
type Resolver struct {
	java    probers.Prober
	bedrock probers.Prober
	metrics *metrics.Collector
	logger  *zerolog.Logger
	opts    Opts
}

func New(
	java probers.Prober,
	bedrock probers.Prober,
	collector *metrics.Collector,
	logger *zerolog.Logger,
	opts Opts,
) Resolver {
	return Resolver{
		java:    java,
		bedrock: bedrock,
		metrics: collector,
		logger:  logger,
		opts:    opts,
	}
}

func (r Resolver) Resolve(ctx context.Context, mode protocol.Mode) status.ServerStatus {
	switch mode {
	case protocol.ModeJava:
		return r.probe(ctx, r.java, protocol.EditionJava)
	case protocol.ModeBedrock:
		return r.probe(ctx, r.bedrock, protocol.EditionBedrock)
	default:
		return r.resolveAuto(ctx)
	}
}

// resolveAuto tries bedrock first: the common dual-stack deployment
// serves udp bedrock traffic on the same port number, and the java
// fallbacks below it are cheaper to skip than the other way around.
func (r Resolver) resolveAuto(ctx context.Context) status.ServerStatus {
	if r.opts.BedrockQueryEnabled {
		if st := r.probe(ctx, r.bedrock, protocol.EditionBedrock); st.Available {
			return st
		}
	}

	st := r.probe(ctx, r.java, protocol.EditionJava)
	if st.Available {
		return st
	}

	// both families failed: attribute the verdict to the family that
	// was actually attempted first, so that probing order alone never
	// flips the reported edition between cycles
	if r.opts.BedrockQueryEnabled {
		st.Edition = protocol.EditionBedrock
	}
	return st
}

func (r Resolver) probe(
	ctx context.Context,
	prober probers.Prober,
	edition protocol.Edition,
) status.ServerStatus {
	r.metrics.ProbeAttempts.WithLabelValues(edition.String()).Inc()
	probeStarted := time.Now()

	st, err := prober.Probe(ctx, r.opts.Target, r.opts.Timeout)

	probeDur := time.Since(probeStarted).Seconds()
	r.metrics.ProbeDurations.WithLabelValues(edition.String()).Observe(probeDur)

	if err != nil {
		r.metrics.ProbeErrors.WithLabelValues(edition.String()).Inc()
		r.logger.Debug().
			Err(err).
			Stringer("target", r.opts.Target).Stringer("edition", edition).Float64("duration", probeDur).
			Msg("Probe failed")
		return status.NewUnavailable(edition, err.Error())
	}

	// make sure the verdict is tagged with the family that produced it
	st.Edition = edition

	r.logger.Debug().
		Stringer("target", r.opts.Target).Stringer("edition", edition).
		Stringer("method", st.Method).Float64("duration", probeDur).
		Msg("Probe succeeded")
	return st
}
