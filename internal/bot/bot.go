// Package bot implements lifecycle management and component orchestration
// for The Creature Telegram bot.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/creaturebot/internal/config"
)

// Listener receives updates until its context is cancelled. *bot.Bot from
// go-telegram/bot satisfies it.
type Listener interface {
	Start(ctx context.Context)
}

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger   *slog.Logger
	cfg      *config.Config
	listener Listener
}

// NewBot creates a new instance of the bot.
func NewBot(logger *slog.Logger, cfg *config.Config, listener Listener) *Bot {
	return &Bot{
		logger:   logger.With("component", "bot_orchestrator"),
		cfg:      cfg,
		listener: listener,
	}
}

// Run starts the Telegram listener and blocks until ctx is cancelled or the
// listener stops on its own. Cancellation is a graceful stop and returns nil.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...", "bot_username", b.cfg.BotUsername())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")

		b.listener.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			b.logger.Warn("Telegram bot listener stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
