// Package main contains the entrypoint for The Creature Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/creaturebot/internal/bot"
	"github.com/edgard/creaturebot/internal/bot/handlers"
	"github.com/edgard/creaturebot/internal/completion"
	"github.com/edgard/creaturebot/internal/config"
	"github.com/edgard/creaturebot/internal/logger"
	"github.com/edgard/creaturebot/internal/persona"
	"github.com/edgard/creaturebot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires config, logger, completion client and Telegram bot, then blocks
// until shutdown. It returns the process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to optional YAML configuration file")
	envPath := flag.String("env", config.DefaultEnvPath, "Path to optional .env file")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger)
	slog.SetDefault(log)
	log.Info("Configuration loaded", "config", cfg)

	client, err := completion.NewClient(cfg.AI, persona.New(cfg.Persona), log)
	if err != nil {
		log.Error("Failed to initialize completion client", "error", err)
		return 1
	}

	hDeps := handlers.HandlerDeps{
		Logger:    log,
		Config:    cfg,
		Responder: client,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewMessageHandler(hDeps)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	cmdHandlers := handlers.RegisterAllCommands(hDeps)
	if err := telegram.RegisterHandlers(tg, log, cfg.BotUsername(), cmdHandlers); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}
	if err := telegram.PublishCommands(ctx, tg, cmdHandlers); err != nil {
		log.Warn("Failed to publish command menu", "error", err)
	}

	app := bot.NewBot(log, cfg, tg)

	log.Info("The Creature awakens...")
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
