package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/creaturebot/internal/persona"
)

// NewStartHandler returns the handler for /start and /awaken.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return staticHandler{deps: deps, name: "start", text: persona.Awakening, parseMode: models.ParseModeMarkdownV1}.Handle
}

// NewCreatorHandler returns the handler for /zoro.
func NewCreatorHandler(deps HandlerDeps) bot.HandlerFunc {
	return staticHandler{deps: deps, name: "creator", text: persona.CreatorLore}.Handle
}

// staticHandler answers a command with a fixed text. It never consults the
// trigger or the completion API.
type staticHandler struct {
	deps      HandlerDeps
	name      string
	text      string
	parseMode models.ParseMode
}

func (h staticHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h staticHandler) handle(ctx context.Context, s Sender, update *models.Update) {
	log := h.deps.Logger.With("handler", h.name)

	if update.Message == nil {
		log.WarnContext(ctx, "Command handler received update without message", "update_id", update.ID)
		return
	}
	msg := update.Message

	log.InfoContext(ctx, "Handling command", "chat_id", msg.Chat.ID)

	if err := reply(ctx, s, msg, h.text, h.parseMode); err != nil {
		log.ErrorContext(ctx, "Failed to send command reply", "error", err, "chat_id", msg.Chat.ID)
	}
}
