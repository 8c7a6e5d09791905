package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

type Config struct {
	port         string
	sentryDSN    string
	lichessToken string
	env          environment
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

// LichessToken is the bearer token used for Lichess API access. The
// chess.com API needs no credentials.
func (c *Config) LichessToken() string {
	return c.lichessToken
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{env: %s, port: %s, lichessToken set: %t, ...}", string(c.env), c.port, c.lichessToken != "")
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("CHESSWRAPPED_ENVIRONMENT")
	if !ok {
		return missingKey("CHESSWRAPPED_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: CHESSWRAPPED_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	lichessToken := os.Getenv("LICHESS_TOKEN")

	if env == production || env == staging {
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
		if lichessToken == "" {
			return missingKey("LICHESS_TOKEN")
		}
	}

	return Config{
		port:         port,
		sentryDSN:    sentryDSN,
		lichessToken: lichessToken,
		env:          env,
	}, nil
}
