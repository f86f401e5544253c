package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/creaturebot/internal/trigger"
)

type messageHandler struct {
	deps HandlerDeps
}

// NewMessageHandler creates the dispatcher for plain text messages. It
// replies through the Responder when the trigger allows it and stays silent
// otherwise. Every inbound message produces at most one reply.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	return messageHandler{deps}.Handle
}

func (h messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h messageHandler) handle(ctx context.Context, s Sender, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	msg := update.Message
	if msg == nil || msg.Text == "" {
		log.DebugContext(ctx, "Ignoring update without text", "update_id", update.ID)
		return
	}

	if _, ok := parseCommand(msg); ok {
		log.DebugContext(ctx, "Ignoring unhandled command", "chat_id", msg.Chat.ID)
		return
	}

	in := trigger.IncomingMessage{Text: msg.Text, Origin: originOf(msg.Chat)}
	if !trigger.ShouldRespond(in) {
		log.DebugContext(ctx, "Trigger not met, staying silent", "chat_id", msg.Chat.ID, "origin", in.Origin)
		return
	}

	log.InfoContext(ctx, "Relaying message", "chat_id", msg.Chat.ID, "message_id", msg.ID, "origin", in.Origin)

	stopTyping := keepTyping(ctx, s, msg, h.deps.Config.Telegram.TypingInterval, log)
	text := h.deps.Responder.GenerateResponse(ctx, msg.Text)
	stopTyping()

	if err := reply(ctx, s, msg, text, ""); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", msg.Chat.ID)
		return
	}
	log.DebugContext(ctx, "Reply sent", "chat_id", msg.Chat.ID, "length", len(text))
}
