package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/internal/core/sinks"
	delivery "github.com/mcherald/mcherald/internal/delivery/telegram"
	"github.com/mcherald/mcherald/internal/settings"
)

var (
	ErrTokenRequired = errors.New("telegram bot token is required")
	ErrChatRequired  = errors.New("telegram chat id is required")
)

type Config struct {
	Token  string
	ChatID string
	APIURL string
}

func provideBot(cfg Config) (*tgbot.Bot, error) {
	if cfg.Token == "" {
		return nil, ErrTokenRequired
	}
	// the bot is verified against the live API on startup,
	// not at construction time
	opts := []tgbot.Option{tgbot.WithSkipGetMe()}
	if cfg.APIURL != "" {
		opts = append(opts, tgbot.WithServerURL(cfg.APIURL))
	}
	return tgbot.New(cfg.Token, opts...)
}

func provideOpts(cfg Config, stngs settings.Settings) delivery.Opts {
	return delivery.Opts{
		ChatID:          cfg.ChatID,
		RichFormat:      stngs.RichFormat,
		StableThreshold: stngs.StableThreshold,
		Cooldown:        stngs.AnnounceCooldown,
	}
}

// provideSink confirms the messaging channel is reachable before any
// dependent component is started.
func provideSink(
	lc fx.Lifecycle,
	b *tgbot.Bot,
	cfg Config,
	opts delivery.Opts,
	logger *zerolog.Logger,
) (sinks.Sink, error) {
	if cfg.ChatID == "" {
		return nil, ErrChatRequired
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			me, err := b.GetMe(ctx)
			if err != nil {
				return fmt.Errorf("unable to authenticate the telegram bot: %w", err)
			}
			chat, err := b.GetChat(ctx, &tgbot.GetChatParams{ChatID: cfg.ChatID})
			if err != nil {
				return fmt.Errorf("unable to resolve the telegram chat: %w", err)
			}
			logger.Info().
				Str("bot", me.Username).Str("chat", chatName(chat)).
				Msg("Confirmed the telegram channel is reachable")
			return nil
		},
	})

	return delivery.NewSink(b, opts, logger), nil
}

func chatName(chat *models.ChatFullInfo) string {
	if chat.Title != "" {
		return chat.Title
	}
	if chat.Username != "" {
		return chat.Username
	}
	return strconv.FormatInt(chat.ID, 10)
}

var Module = fx.Module("telegram",
	fx.Provide(fx.Private, provideOpts),
	fx.Provide(provideBot),
	fx.Provide(provideSink),
)
