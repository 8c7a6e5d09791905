package config_test

import (
	"testing"

	"github.com/chesswrapped/chesswrapped/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("missing environment", func(t *testing.T) {
		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Setenv("CHESSWRAPPED_ENVIRONMENT", "prod")
		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrInvalidValue)
	})

	t.Run("development needs no secrets", func(t *testing.T) {
		t.Setenv("CHESSWRAPPED_ENVIRONMENT", "development")
		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.True(t, conf.IsDevelopment())
		require.Equal(t, "8080", conf.Port())
		require.Empty(t, conf.LichessToken())
	})

	t.Run("production requires sentry and lichess token", func(t *testing.T) {
		t.Setenv("CHESSWRAPPED_ENVIRONMENT", "production")
		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)

		t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")
		_, err = config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)

		t.Setenv("LICHESS_TOKEN", "lip_token")
		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.True(t, conf.IsProduction())
		require.Equal(t, "lip_token", conf.LichessToken())
	})

	t.Run("port override", func(t *testing.T) {
		t.Setenv("CHESSWRAPPED_ENVIRONMENT", "development")
		t.Setenv("PORT", "9000")
		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, "9000", conf.Port())
	})

	t.Run("non-sensitive string does not leak the token", func(t *testing.T) {
		t.Setenv("CHESSWRAPPED_ENVIRONMENT", "development")
		t.Setenv("LICHESS_TOKEN", "lip_supersecret")
		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.NotContains(t, conf.NonSensitiveString(), "lip_supersecret")
	})
}
