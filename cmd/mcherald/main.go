package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/cmd/mcherald/application"
	"github.com/mcherald/mcherald/cmd/mcherald/checker"
	"github.com/mcherald/mcherald/cmd/mcherald/commander"
	"github.com/mcherald/mcherald/cmd/mcherald/components/api"
	"github.com/mcherald/mcherald/cmd/mcherald/components/bot"
	"github.com/mcherald/mcherald/cmd/mcherald/components/exporter"
	"github.com/mcherald/mcherald/cmd/mcherald/components/monitor"
	"github.com/mcherald/mcherald/cmd/mcherald/components/observer"
	"github.com/mcherald/mcherald/cmd/mcherald/logging"
	"github.com/mcherald/mcherald/cmd/mcherald/persistence"
	"github.com/mcherald/mcherald/cmd/mcherald/telegram"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/settings"
)

func main() {
	_ = godotenv.Load()

	cli := commander.CLI{}
	cli.Plugins = kong.Plugins{
		&checker.CLI{},
	}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&bot.CLI{},
		&monitor.CLI{},
		&observer.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("mcherald"),
		kong.Description("Minecraft server status herald"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	tgt, err := target.New(cli.Globals.Host, cli.Globals.Port)
	ctx.FatalIfErrorf(err)

	mode, err := protocol.ParseMode(cli.Globals.Protocol)
	ctx.FatalIfErrorf(err)

	if cli.Globals.StableThreshold < 1 {
		ctx.Fatalf("stable threshold must be at least 1")
	}

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			RedisURL:    cli.Globals.RedisURL,
			HistorySize: cli.Globals.HistorySize,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			Target:              tgt,
			Mode:                mode,
			ProbeTimeout:        cli.Globals.ProbeTimeout,
			JavaQueryEnabled:    cli.Globals.JavaQuery,
			BedrockQueryEnabled: cli.Globals.BedrockQuery,
			StableThreshold:     cli.Globals.StableThreshold,
			AnnounceCooldown:    cli.Globals.RateLimit,
			RichFormat:          cli.Globals.RichFormat,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(telegram.Config{
			Token:  cli.Globals.TelegramToken,
			ChatID: cli.Globals.TelegramChatID,
			APIURL: cli.Globals.TelegramAPIURL,
		}),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
