package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errs "github.com/edgard/creaturebot/internal/errors"
)

// Load builds the configuration from, in increasing precedence: defaults,
// the YAML file at configPath, the dotenv file at envPath and the process
// environment. Either path may be empty or point at a missing file.
//
// Secrets are read from TELEGRAM_TOKEN and DEEPSEEK_API_KEY; any other key
// can be overridden as CREATURE_<SECTION>_<KEY>. A missing secret or an
// out-of-range value is reported as a CONFIG error.
func Load(configPath, envPath string) (*Config, error) {
	if err := loadDotEnv(envPath); err != nil {
		return nil, errs.NewConfigError("failed to load env file", err)
	}

	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errs.NewConfigError("failed to parse configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded",
		"config_path", configPath,
		"ai_base_url", cfg.AI.BaseURL,
		"ai_timeout", cfg.AI.Timeout,
		"model", cfg.Persona.Model,
		"log_level", cfg.Logger.Level)

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("env file not found, skipping", "path", path)
			return nil
		}
		return err
	}
	slog.Debug("env file loaded", "path", path)
	return nil
}

func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range secretEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errs.NewConfigError("failed to bind "+env, err)
		}
	}

	if configPath == "" {
		return v, nil
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			slog.Info("configuration file not found, using defaults and environment", "path", configPath)
			return v, nil
		}
		return nil, errs.NewConfigError("failed to read "+configPath, err)
	}
	slog.Debug("configuration file loaded", "path", configPath)

	return v, nil
}
