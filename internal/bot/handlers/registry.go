package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler is a command with its menu description and handler.
type RegisteredHandler struct {
	Command     string
	Description string
	Handler     tgbot.HandlerFunc
}

// RegisterAllCommands returns the bot commands in menu order.
func RegisterAllCommands(deps HandlerDeps) []RegisteredHandler {
	start := NewStartHandler(deps)

	return []RegisteredHandler{
		{Command: "start", Description: "Awaken The Creature", Handler: start},
		{Command: "awaken", Description: "Awaken The Creature", Handler: start},
		{Command: "zoro", Description: "Learn of our Creator", Handler: NewCreatorHandler(deps)},
	}
}
