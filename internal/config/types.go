package config

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Config is the process-wide configuration. It is built once by Load and
// treated as read-only afterwards.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	AI       AIConfig       `mapstructure:"ai"`
	Persona  PersonaConfig  `mapstructure:"persona"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// TelegramConfig holds the chat platform settings.
type TelegramConfig struct {
	Token          string        `mapstructure:"token"           validate:"required"`
	TypingInterval time.Duration `mapstructure:"typing_interval" validate:"min=0"`

	// BotInfo is filled from getMe at startup.
	BotInfo *models.User `mapstructure:"-"`
}

// AIConfig holds the completion API endpoint settings.
type AIConfig struct {
	APIKey  string        `mapstructure:"api_key"  validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"  validate:"min=1s,max=5m"`
}

// PersonaConfig holds the generation parameters sent with every request.
type PersonaConfig struct {
	Model            string  `mapstructure:"model"             validate:"required"`
	Temperature      float64 `mapstructure:"temperature"       validate:"min=0,max=2"`
	MaxTokens        int     `mapstructure:"max_tokens"        validate:"min=1"`
	FrequencyPenalty float64 `mapstructure:"frequency_penalty" validate:"min=-2,max=2"`
	PresencePenalty  float64 `mapstructure:"presence_penalty"  validate:"min=-2,max=2"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// BotUsername returns the bot's username, or "" before getMe has run.
func (c *Config) BotUsername() string {
	if c == nil || c.Telegram.BotInfo == nil {
		return ""
	}
	return c.Telegram.BotInfo.Username
}
