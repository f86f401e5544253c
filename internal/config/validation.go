package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	errs "github.com/edgard/creaturebot/internal/errors"
)

var secretFields = map[string]string{
	"Config.Telegram.Token": EnvTelegramToken,
	"Config.AI.APIKey":      EnvAIAPIKey,
}

// Validate checks every field against its constraints. Missing secrets are
// named by the environment variable that should carry them.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewConfigError("invalid configuration", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if env, ok := secretFields[fe.Namespace()]; ok && fe.Tag() == "required" {
			problems = append(problems, fmt.Sprintf("%s is not set", env))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag()+paramSuffix(fe.Param()), fe.Value()))
	}

	return errs.NewConfigError("invalid configuration", errors.New(strings.Join(problems, "; ")))
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return "=" + param
}
