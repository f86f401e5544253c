package config

import "time"

// Default values for optional settings.
const (
	DefaultConfigPath = "config.yaml"
	DefaultEnvPath    = ".env"

	DefaultTypingInterval = 4 * time.Second

	DefaultAIBaseURL = "https://api.deepseek.com/v1"
	DefaultAITimeout = 30 * time.Second

	DefaultPersonaModel            = "deepseek-chat"
	DefaultPersonaTemperature      = 0.7
	DefaultPersonaMaxTokens        = 500
	DefaultPersonaFrequencyPenalty = 0.5
	DefaultPersonaPresencePenalty  = 0.5

	DefaultLogLevel = "info"
	DefaultLogJSON  = true
)

// Environment variables that carry the secrets. They are read without the
// CREATURE_ prefix used for every other key.
const (
	EnvTelegramToken = "TELEGRAM_TOKEN"
	EnvAIAPIKey      = "DEEPSEEK_API_KEY"

	envPrefix = "CREATURE"
)

var defaults = map[string]any{
	"telegram.typing_interval": DefaultTypingInterval,

	"ai.base_url": DefaultAIBaseURL,
	"ai.timeout":  DefaultAITimeout,

	"persona.model":             DefaultPersonaModel,
	"persona.temperature":       DefaultPersonaTemperature,
	"persona.max_tokens":        DefaultPersonaMaxTokens,
	"persona.frequency_penalty": DefaultPersonaFrequencyPenalty,
	"persona.presence_penalty":  DefaultPersonaPresencePenalty,

	"logger.level": DefaultLogLevel,
	"logger.json":  DefaultLogJSON,
}

var secretEnv = map[string]string{
	"telegram.token": EnvTelegramToken,
	"ai.api_key":     EnvAIAPIKey,
}
