package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/persistence/memory"
	redisannouncements "github.com/mcherald/mcherald/internal/persistence/redis/repositories/announcements"
	redisobservations "github.com/mcherald/mcherald/internal/persistence/redis/repositories/observations"
)

type Config struct {
	RedisURL    string
	HistorySize int
}

type Result struct {
	fx.Out

	Observations  repositories.ObservationRepository
	Announcements repositories.AnnouncementRepository
}

// Provide selects the history backend. An empty redis URL keeps the
// history in process memory, in line with the engine itself carrying
// no state across restarts.
func Provide(cfg Config, lc fx.Lifecycle, logger *zerolog.Logger) (Result, error) {
	if cfg.RedisURL == "" {
		logger.Debug().Int("size", cfg.HistorySize).Msg("Keeping history in process memory")
		repos := memory.New(cfg.HistorySize)
		return Result{
			Observations:  repos.Observations,
			Announcements: repos.Announcements,
		}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return Result{}, fmt.Errorf("unable to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pingErr := client.Ping(ctx).Err(); pingErr != nil {
				return fmt.Errorf("unable to connect to redis: %w", pingErr)
			}
			logger.Info().Str("addr", opts.Addr).Msg("Connected to redis")
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return Result{
		Observations:  redisobservations.New(client, cfg.HistorySize),
		Announcements: redisannouncements.New(client, cfg.HistorySize),
	}, nil
}
