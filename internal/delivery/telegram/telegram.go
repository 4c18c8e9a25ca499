package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/internal/core/sinks"
)

type Opts struct {
	ChatID          string
	RichFormat      bool
	StableThreshold int
	Cooldown        time.Duration
}

// Sink delivers status change notices to a telegram chat.
type Sink struct {
	bot    *bot.Bot
	opts   Opts
	logger *zerolog.Logger
}

func NewSink(b *bot.Bot, opts Opts, logger *zerolog.Logger) Sink {
	return Sink{
		bot:    b,
		opts:   opts,
		logger: logger,
	}
}

func (s Sink) Send(ctx context.Context, notice sinks.Notice) error {
	params := &bot.SendMessageParams{
		ChatID: s.opts.ChatID,
		Text:   renderNotice(notice, s.opts),
	}
	if s.opts.RichFormat {
		params.ParseMode = models.ParseModeHTML
	}

	if _, err := s.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("%w: %w", sinks.ErrDeliveryFailed, err)
	}

	s.logger.Debug().
		Str("chat", s.opts.ChatID).Stringer("classification", notice.Classification).
		Msg("Delivered notice to telegram chat")

	return nil
}
