package handlers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/creaturebot/internal/trigger"
)

const sendMessageTimeout = 10 * time.Second

// originOf maps a Telegram chat to a trigger origin. Only private chats
// count as direct.
func originOf(chat models.Chat) trigger.Origin {
	if chat.Type == models.ChatTypePrivate {
		return trigger.OriginDirect
	}
	return trigger.OriginGroup
}

// reply sends text to the chat and forum topic msg came from. In shared
// chats the reply quotes msg.
func reply(ctx context.Context, s Sender, msg *models.Message, text string, parseMode models.ParseMode) error {
	params := &bot.SendMessageParams{
		ChatID:    msg.Chat.ID,
		Text:      text,
		ParseMode: parseMode,
	}
	if msg.IsTopicMessage {
		params.MessageThreadID = msg.MessageThreadID
	}
	if originOf(msg.Chat) == trigger.OriginGroup {
		params.ReplyParameters = &models.ReplyParameters{
			MessageID:                msg.ID,
			AllowSendingWithoutReply: true,
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()
	_, err := s.SendMessage(sendCtx, params)
	return err
}

// keepTyping shows the typing indicator in msg's chat every interval until
// the returned stop function is called. A non-positive interval disables it.
func keepTyping(ctx context.Context, s Sender, msg *models.Message, interval time.Duration, log *slog.Logger) (stop func()) {
	if interval <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	params := &bot.SendChatActionParams{
		ChatID: msg.Chat.ID,
		Action: models.ChatActionTyping,
	}
	if msg.IsTopicMessage {
		params.MessageThreadID = msg.MessageThreadID
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if _, err := s.SendChatAction(ctx, params); err != nil && ctx.Err() == nil {
				log.DebugContext(ctx, "Typing action failed", "error", err, "chat_id", msg.Chat.ID)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// command is a bot command at the start of a message, e.g. /start@CreatureBot.
type command struct {
	Name    string
	Mention string
}

// parseCommand extracts the leading bot command of msg, if any.
func parseCommand(msg *models.Message) (command, bool) {
	if msg == nil || !strings.HasPrefix(msg.Text, "/") {
		return command{}, false
	}

	leading := false
	for _, e := range msg.Entities {
		if e.Type == models.MessageEntityTypeBotCommand && e.Offset == 0 {
			leading = true
			break
		}
	}
	if !leading {
		return command{}, false
	}

	token := strings.TrimPrefix(strings.Fields(msg.Text)[0], "/")
	name, mention, _ := strings.Cut(token, "@")
	if name == "" {
		return command{}, false
	}
	return command{Name: strings.ToLower(name), Mention: mention}, true
}

// addressedTo reports whether the command is meant for the bot with the
// given username. Unqualified commands are meant for every bot.
func (c command) addressedTo(username string) bool {
	return c.Mention == "" || username == "" || strings.EqualFold(c.Mention, username)
}

// CommandMatcher matches messages starting with /name or /name@username.
func CommandMatcher(name, username string) bot.MatchFunc {
	name = strings.ToLower(name)
	return func(update *models.Update) bool {
		if update == nil || update.Message == nil {
			return false
		}
		cmd, ok := parseCommand(update.Message)
		return ok && cmd.Name == name && cmd.addressedTo(username)
	}
}
