// Package config loads, validates and exposes the bot configuration.
// Values come from defaults, an optional YAML file, an optional dotenv
// file and the process environment.
package config

import "log/slog"

// LogValue renders the configuration for logs with secrets left out.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("telegram",
			slog.Bool("token_set", c.Telegram.Token != ""),
			slog.Duration("typing_interval", c.Telegram.TypingInterval),
		),
		slog.Group("ai",
			slog.Bool("api_key_set", c.AI.APIKey != ""),
			slog.String("base_url", c.AI.BaseURL),
			slog.Duration("timeout", c.AI.Timeout),
		),
		slog.Group("persona",
			slog.String("model", c.Persona.Model),
			slog.Float64("temperature", c.Persona.Temperature),
			slog.Int("max_tokens", c.Persona.MaxTokens),
			slog.Float64("frequency_penalty", c.Persona.FrequencyPenalty),
			slog.Float64("presence_penalty", c.Persona.PresencePenalty),
		),
		slog.Group("logger",
			slog.String("level", c.Logger.Level),
			slog.Bool("json", c.Logger.JSON),
		),
	)
}
