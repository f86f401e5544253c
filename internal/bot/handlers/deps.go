// Package handlers contains the Telegram command handlers, the message
// dispatcher and their registration table.
package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/creaturebot/internal/config"
)

// Sender is the part of the Telegram API the handlers use. *bot.Bot
// implements it.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

// Responder turns a user's text into the bot's reply. It never fails.
type Responder interface {
	GenerateResponse(ctx context.Context, text string) string
}

// HandlerDeps provides dependencies for the handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Responder Responder
}

var _ Sender = (*bot.Bot)(nil)
