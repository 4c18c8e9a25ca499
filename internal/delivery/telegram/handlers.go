package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/cmd/mcherald/container"
	"github.com/mcherald/mcherald/internal/core/usecases/checkstatus"
	"github.com/mcherald/mcherald/internal/settings"
)

// Handlers reply to commands sent to the bot in private chats
// or in groups the bot is a member of.
type Handlers struct {
	settings  settings.Settings
	container container.Container
	logger    *zerolog.Logger
}

func NewHandlers(
	settings settings.Settings,
	container container.Container,
	logger *zerolog.Logger,
) *Handlers {
	return &Handlers{
		settings:  settings,
		container: container,
		logger:    logger,
	}
}

func (h *Handlers) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, h.OnStatus)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.OnHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.OnHelp)
}

// OnStatus replies with the result of an immediate check. The check
// does not interfere with the debouncing of the periodic monitor.
func (h *Handlers) OnStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	ucRequest := checkstatus.NewRequest(h.settings.Mode)
	serverStatus := h.container.CheckStatus.Execute(ctx, ucRequest)

	opts := Opts{
		RichFormat:      h.settings.RichFormat,
		StableThreshold: h.settings.StableThreshold,
		Cooldown:        h.settings.AnnounceCooldown,
	}
	params := &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   renderStatus(h.settings.Target, serverStatus, opts),
	}
	if h.settings.RichFormat {
		params.ParseMode = models.ParseModeHTML
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		h.logger.Error().
			Err(err).Int64("chat", update.Message.Chat.ID).
			Msg("Failed to reply to status command")
	}
}

func (h *Handlers) OnHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := fmt.Sprintf(
		"I watch over %s and herald its status changes.\n\n"+
			"/status - check the server right now\n"+
			"/help - show this message",
		h.settings.Target,
	)

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	}); err != nil {
		h.logger.Error().
			Err(err).Int64("chat", update.Message.Chat.ID).
			Msg("Failed to reply to help command")
	}
}
