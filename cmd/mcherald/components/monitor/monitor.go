package monitor

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/cmd/mcherald/application"
	"github.com/mcherald/mcherald/cmd/mcherald/commander"
	"github.com/mcherald/mcherald/cmd/mcherald/telegram"
	"github.com/mcherald/mcherald/internal/core/usecases/announcestatus"
	"github.com/mcherald/mcherald/internal/core/usecases/observeserver"
	"github.com/mcherald/mcherald/internal/monitor"
	"github.com/mcherald/mcherald/internal/settings"
)

type Config struct {
	CheckInterval time.Duration
}

type Component struct{}

func run(
	stop chan struct{},
	stopped chan struct{},
	clock clockwork.Clock,
	logger *zerolog.Logger,
	mon *monitor.Monitor,
	cfg Config,
) {
	ticker := clock.NewTicker(cfg.CheckInterval)
	tickerCh := ticker.Chan()
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info().Dur("interval", cfg.CheckInterval).Msg("Starting monitor")

	for {
		select {
		case <-stop:
			close(stopped)
			return
		case <-tickerCh:
			mon.RunCycle(ctx)
		}
	}
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	mon *monitor.Monitor,
	logger *zerolog.Logger,
) *Component {
	stopped := make(chan struct{})
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go run(stop, stopped, clock, logger, mon, cfg) // nolint: contextcheck
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			<-stopped
			logger.Info().Msg("Monitor stopped")
			return nil
		},
	})

	return &Component{}
}

type Opts struct {
	fx.Out

	ObserveOpts  observeserver.UseCaseOptions
	AnnounceOpts announcestatus.UseCaseOptions
}

func provideUseCaseOpts(stngs settings.Settings) Opts {
	return Opts{
		ObserveOpts: observeserver.UseCaseOptions{
			Target:          stngs.Target,
			Mode:            stngs.Mode,
			StableThreshold: stngs.StableThreshold,
		},
		AnnounceOpts: announcestatus.UseCaseOptions{
			Cooldown: stngs.AnnounceCooldown,
		},
	}
}

type command struct{}

func (c *command) Run(globals *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				CheckInterval: globals.CheckInterval,
			}),
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Monitor command `cmd:"" help:"Start monitor"`
}

var Module = fx.Module("monitor",
	telegram.Module,
	fx.Provide(fx.Private, provideUseCaseOpts),
	fx.Provide(announcestatus.New),
	fx.Provide(observeserver.New),
	fx.Provide(monitor.New),
	fx.Provide(New),
)
