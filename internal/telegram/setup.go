// Package telegram handles the setup and registration of Telegram bot handlers.
package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/creaturebot/internal/bot/handlers"
	errs "github.com/edgard/creaturebot/internal/errors"
)

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
// Polling errors are logged instead of printed to stderr.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, errs.NewConfigError("telegram bot token cannot be empty", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	opts = append([]bot.Option{
		bot.WithErrorsHandler(func(err error) {
			log.Error("Telegram polling error", "error", err)
		}),
	}, opts...)

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, errs.NewAPIError("failed to create telegram bot", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(token))
	return b, nil
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "..."
	}
	return token[:8] + "..."
}

// applyMiddleware wraps a handler function with a slice of middleware.
// The first middleware in the slice is the outermost.
func applyMiddleware(handler bot.HandlerFunc, mw []bot.Middleware) bot.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// handlerRegistrar is the part of *bot.Bot used to register handlers.
type handlerRegistrar interface {
	RegisterHandlerMatchFunc(matchFunc bot.MatchFunc, f bot.HandlerFunc, m ...bot.Middleware) string
}

// RegisterHandlers registers the command handlers with the Telegram bot instance.
// Commands match as /name and /name@username. Plain messages fall through to
// the default handler set at construction.
func RegisterHandlers(b handlerRegistrar, logger *slog.Logger, username string, registered []handlers.RegisteredHandler, mw ...bot.Middleware) error {
	if b == nil {
		return errs.NewConfigError("bot instance cannot be nil", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "handler_registry")

	if len(registered) == 0 {
		log.Warn("No handlers provided for registration.")
		return nil
	}

	for _, h := range registered {
		if h.Handler == nil {
			log.Warn("Skipping registration for nil handler", "command", h.Command)
			continue
		}
		b.RegisterHandlerMatchFunc(handlers.CommandMatcher(h.Command, username), applyMiddleware(h.Handler, mw))
		log.Debug("Registered handler", "command", h.Command, "middleware_count", len(mw))
	}

	log.Info("Registered Telegram handlers successfully", "count", len(registered))
	return nil
}

// commandPublisher is the part of *bot.Bot used to publish the command menu.
type commandPublisher interface {
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

// PublishCommands sets the bot's command menu shown by Telegram clients.
func PublishCommands(ctx context.Context, b commandPublisher, registered []handlers.RegisteredHandler) error {
	commands := make([]models.BotCommand, 0, len(registered))
	for _, h := range registered {
		commands = append(commands, models.BotCommand{Command: h.Command, Description: h.Description})
	}

	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: commands}); err != nil {
		return errs.NewAPIError("failed to publish bot commands", err)
	}
	return nil
}

var (
	_ handlerRegistrar = (*bot.Bot)(nil)
	_ commandPublisher = (*bot.Bot)(nil)
)
