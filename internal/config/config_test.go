package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/google/go-cmp/cmp"

	errs "github.com/edgard/creaturebot/internal/errors"
)

// clearEnv unsets the given variables for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "CREATURE_AI_TIMEOUT", "CREATURE_LOGGER_LEVEL")
	t.Setenv(EnvTelegramToken, "123456:telegram")
	t.Setenv(EnvAIAPIKey, "sk-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Telegram: TelegramConfig{Token: "123456:telegram", TypingInterval: DefaultTypingInterval},
		AI:       AIConfig{APIKey: "sk-test", BaseURL: DefaultAIBaseURL, Timeout: 30 * time.Second},
		Persona: PersonaConfig{
			Model:            "deepseek-chat",
			Temperature:      0.7,
			MaxTokens:        500,
			FrequencyPenalty: 0.5,
			PresencePenalty:  0.5,
		},
		Logger: LoggerConfig{Level: "info", JSON: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg []string
	}{
		{
			name:    "both missing",
			wantMsg: []string{EnvTelegramToken, EnvAIAPIKey},
		},
		{
			name:    "telegram token missing",
			env:     map[string]string{EnvAIAPIKey: "sk-test"},
			wantMsg: []string{EnvTelegramToken},
		},
		{
			name:    "api key missing",
			env:     map[string]string{EnvTelegramToken: "123456:telegram"},
			wantMsg: []string{EnvAIAPIKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, EnvTelegramToken, EnvAIAPIKey)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("", "")
			if err == nil {
				t.Fatal("Load() succeeded without secrets")
			}
			if code := errs.Code(err); code != errs.CodeConfig {
				t.Errorf("error code = %q, want %q", code, errs.CodeConfig)
			}
			for _, msg := range tt.wantMsg {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("error %q does not mention %s", err, msg)
				}
			}
		})
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	t.Setenv(EnvTelegramToken, "123456:telegram")
	t.Setenv(EnvAIAPIKey, "sk-test")
	t.Setenv("CREATURE_AI_TIMEOUT", "10s")
	clearEnv(t, "CREATURE_LOGGER_LEVEL")

	path := writeFile(t, "config.yaml", `
ai:
  base_url: https://llm.example.com/v1
  timeout: 45s
persona:
  model: deepseek-reasoner
  max_tokens: 800
logger:
  level: debug
  json: false
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.BaseURL != "https://llm.example.com/v1" {
		t.Errorf("AI.BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Timeout != 10*time.Second {
		t.Errorf("AI.Timeout = %v, want environment override 10s", cfg.AI.Timeout)
	}
	if cfg.Persona.Model != "deepseek-reasoner" || cfg.Persona.MaxTokens != 800 {
		t.Errorf("Persona = %+v", cfg.Persona)
	}
	if cfg.Persona.Temperature != DefaultPersonaTemperature {
		t.Errorf("Persona.Temperature = %v, want default", cfg.Persona.Temperature)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.JSON {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t, EnvTelegramToken, EnvAIAPIKey)
	t.Setenv(EnvAIAPIKey, "sk-from-process")

	envPath := writeFile(t, ".env", "TELEGRAM_TOKEN=123456:dotenv\nDEEPSEEK_API_KEY=sk-from-file\n")

	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.Token != "123456:dotenv" {
		t.Errorf("Telegram.Token = %q, want value from env file", cfg.Telegram.Token)
	}
	if cfg.AI.APIKey != "sk-from-process" {
		t.Errorf("AI.APIKey = %q, process environment must win over env file", cfg.AI.APIKey)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "temperature out of range", yaml: "persona:\n  temperature: 5\n"},
		{name: "zero max tokens", yaml: "persona:\n  max_tokens: 0\n"},
		{name: "timeout too short", yaml: "ai:\n  timeout: 10ms\n"},
		{name: "bad base url", yaml: "ai:\n  base_url: not a url\n"},
		{name: "unknown log level", yaml: "logger:\n  level: verbose\n"},
		{name: "malformed yaml", yaml: "persona: [model\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTelegramToken, "123456:telegram")
			t.Setenv(EnvAIAPIKey, "sk-test")
			clearEnv(t, "CREATURE_AI_TIMEOUT", "CREATURE_LOGGER_LEVEL")

			_, err := Load(writeFile(t, "config.yaml", tt.yaml), "")
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if code := errs.Code(err); code != errs.CodeConfig {
				t.Errorf("error code = %q, want %q", code, errs.CodeConfig)
			}
		})
	}
}

func TestLogValueOmitsSecrets(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Telegram: TelegramConfig{Token: "123456:very-secret"},
		AI:       AIConfig{APIKey: "sk-very-secret", BaseURL: DefaultAIBaseURL},
	}
	rendered := cfg.LogValue().String()
	if strings.Contains(rendered, "very-secret") {
		t.Errorf("LogValue() leaked a secret: %s", rendered)
	}
}

func TestBotUsername(t *testing.T) {
	t.Parallel()

	var nilCfg *Config
	if got := nilCfg.BotUsername(); got != "" {
		t.Errorf("nil config BotUsername() = %q", got)
	}
	if got := (&Config{}).BotUsername(); got != "" {
		t.Errorf("BotUsername() before getMe = %q", got)
	}
	cfg := &Config{Telegram: TelegramConfig{BotInfo: &models.User{ID: 42, Username: "CreatureBot"}}}
	if got := cfg.BotUsername(); got != "CreatureBot" {
		t.Errorf("BotUsername() = %q, want CreatureBot", got)
	}
}
