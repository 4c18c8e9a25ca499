package bot

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/cmd/mcherald/application"
	"github.com/mcherald/mcherald/cmd/mcherald/build"
	"github.com/mcherald/mcherald/cmd/mcherald/commander"
	"github.com/mcherald/mcherald/cmd/mcherald/telegram"
	delivery "github.com/mcherald/mcherald/internal/delivery/telegram"
)

type Component struct{}

// New starts long polling for updates once the bot token is confirmed
// valid. Only one process may poll a given bot at a time, so the bot
// runs as its own component rather than inside the monitor.
func New(
	lc fx.Lifecycle,
	b *tgbot.Bot,
	handlers *delivery.Handlers,
	logger *zerolog.Logger,
) *Component {
	pollCtx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			me, err := b.GetMe(ctx)
			if err != nil {
				cancel()
				return fmt.Errorf("unable to authenticate the telegram bot: %w", err)
			}
			handlers.Register(b)
			go func() {
				defer close(stopped)
				b.Start(pollCtx) // nolint: contextcheck
			}()
			logger.Info().Str("bot", me.Username).Msg("Telegram bot is polling for updates")
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-stopped
			logger.Info().Msg("Telegram bot stopped")
			return nil
		},
	})

	return &Component{}
}

type command struct{}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			Module,
			fx.Invoke(func(logger *zerolog.Logger, _ *Component) {
				logger.Info().
					Str("version", build.Version).
					Str("commit", build.Commit).
					Str("built", build.Time).
					Msg("Starting telegram bot")
			}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Bot command `cmd:"" help:"Start telegram bot"`
}

var Module = fx.Module("bot",
	telegram.Module,
	fx.Provide(fx.Private, delivery.NewHandlers),
	fx.Provide(New),
)
