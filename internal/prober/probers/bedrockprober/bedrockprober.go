package bedrockprober

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/prober/probers"
	"github.com/mcherald/mcherald/pkg/minecraft/bedrock"
)

var ErrValidationFailed = errors.New("failed to validate pong response")

type Opts struct {
	QueryEnabled bool
}

type BedrockProber struct {
	validate *validator.Validate
	logger   *zerolog.Logger
	opts     Opts
}

func New(
	opts Opts,
	validate *validator.Validate,
	logger *zerolog.Logger,
) BedrockProber {
	return BedrockProber{
		validate: validate,
		logger:   logger,
		opts:     opts,
	}
}

// Probe checks the server over the bedrock unconnected ping.
// There is no degraded fallback for this family: without the query
// capability the probe fails the same way every cycle.
func (p BedrockProber) Probe(
	ctx context.Context,
	tgt target.Target,
	timeout time.Duration,
) (status.ServerStatus, error) {
	if !p.opts.QueryEnabled {
		return status.Blank, probers.ErrQueryUnavailable
	}

	pong, err := bedrock.Query(ctx, tgt.Host, tgt.Port, timeout)
	if err != nil {
		return status.Blank, err
	}

	st := status.ServerStatus{
		Available:     true,
		Edition:       protocol.EditionBedrock,
		Method:        status.MethodQuery,
		MOTD:          pong.MOTD,
		VersionName:   pong.VersionName,
		PlayersOnline: pong.PlayersOnline,
		MaxPlayers:    pong.MaxPlayers,
		Latency:       pong.Latency,
	}
	if err := st.Validate(p.validate); err != nil {
		p.logger.Error().
			Err(err).
			Stringer("target", tgt).
			Msg("Failed to validate pong response")
		return status.Blank, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return st, nil
}
