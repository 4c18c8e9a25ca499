package javaprober

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/pkg/minecraft/legacy"
	"github.com/mcherald/mcherald/pkg/minecraft/slp"
)

var ErrValidationFailed = errors.New("failed to validate status response")

type Opts struct {
	QueryEnabled bool
}

type JavaProber struct {
	validate *validator.Validate
	logger   *zerolog.Logger
	opts     Opts
}

func New(
	opts Opts,
	validate *validator.Validate,
	logger *zerolog.Logger,
) JavaProber {
	return JavaProber{
		validate: validate,
		logger:   logger,
		opts:     opts,
	}
}

// Probe checks the server over the java family of protocols.
// The modern server list ping is tried first, then the legacy ping,
// and finally a bare connect-and-close that can only prove liveness.
// Each attempt runs under its own timeout, so a silent server does
// not starve the fallbacks of their budget.
func (p JavaProber) Probe(
	ctx context.Context,
	tgt target.Target,
	timeout time.Duration,
) (status.ServerStatus, error) {
	if p.opts.QueryEnabled {
		resp, err := slp.Query(ctx, tgt.Host, tgt.Port, timeout)
		if err == nil {
			return p.statusFromQuery(tgt, resp)
		}
		p.logger.Debug().
			Err(err).
			Stringer("target", tgt).Dur("timeout", timeout).
			Msg("Server list ping failed, trying legacy ping")

		kick, legacyErr := legacy.Ping(ctx, tgt.Host, tgt.Port, timeout)
		if legacyErr == nil {
			return p.statusFromLegacy(tgt, kick)
		}
		p.logger.Debug().
			Err(legacyErr).
			Stringer("target", tgt).Dur("timeout", timeout).
			Msg("Legacy ping failed, trying bare connection")
	}

	if err := p.connect(ctx, tgt, timeout); err != nil {
		return status.Blank, err
	}

	p.logger.Debug().
		Stringer("target", tgt).
		Msg("Confirmed server liveness with a bare connection")

	degraded := status.ServerStatus{
		Available: true,
		Edition:   protocol.EditionJava,
		Method:    status.MethodConnect,
	}
	return degraded, nil
}

func (p JavaProber) statusFromQuery(tgt target.Target, resp slp.Response) (status.ServerStatus, error) {
	st := status.ServerStatus{
		Available:     true,
		Edition:       protocol.EditionJava,
		Method:        status.MethodQuery,
		MOTD:          resp.Description,
		VersionName:   resp.VersionName,
		PlayersOnline: resp.PlayersOnline,
		MaxPlayers:    resp.MaxPlayers,
		Latency:       resp.Latency,
	}
	if err := st.Validate(p.validate); err != nil {
		p.logger.Error().
			Err(err).
			Stringer("target", tgt).
			Msg("Failed to validate server list ping response")
		return status.Blank, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return st, nil
}

func (p JavaProber) statusFromLegacy(tgt target.Target, kick legacy.Response) (status.ServerStatus, error) {
	st := status.ServerStatus{
		Available:     true,
		Edition:       protocol.EditionJava,
		Method:        status.MethodLegacy,
		MOTD:          kick.MOTD,
		VersionName:   kick.VersionName,
		PlayersOnline: kick.PlayersOnline,
		MaxPlayers:    kick.MaxPlayers,
		Latency:       kick.Latency,
	}
	if err := st.Validate(p.validate); err != nil {
		p.logger.Error().
			Err(err).
			Stringer("target", tgt).
			Msg("Failed to validate legacy ping response")
		return status.Blank, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return st, nil
}

func (p JavaProber) connect(ctx context.Context, tgt target.Target, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", tgt.String())
	if err != nil {
		return err
	}
	conn.Close() // nolint: errcheck

	return nil
}
