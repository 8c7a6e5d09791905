package ports_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/getwrapped"
	"github.com/chesswrapped/chesswrapped/internal/ports"
)

func TestMakeGetWrappedHandler(t *testing.T) {
	t.Parallel()

	allowedOrigins, err := ports.NewDomainSuffixes("example.com")
	require.NoError(t, err)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noopMiddleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r)
		}
	}

	now := time.Date(2025, 11, 20, 15, 30, 0, 0, time.UTC)
	yearStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	makeGetWrapped := func(t *testing.T, expectedStart, expectedEnd time.Time, stats *domain.WrappedStats, err error) (getwrapped.GetWrapped, *bool) {
		called := false
		return func(ctx context.Context, username string, platform domain.Platform, start, end time.Time) (*domain.WrappedStats, error) {
			t.Helper()
			require.Equal(t, expectedStart, start)
			require.Equal(t, expectedEnd, end)

			called = true

			return stats, err
		}, &called
	}

	makeHandler := func(getWrapped getwrapped.GetWrapped) http.HandlerFunc {
		return ports.MakeGetWrappedHandler(
			getWrapped,
			allowedOrigins,
			testLogger,
			noopMiddleware,
			func() time.Time { return now },
		)
	}

	makeRequest := func(platform, username, query string) *http.Request {
		url := fmt.Sprintf("/v1/wrapped/%s/%s%s", platform, username, query)
		req := httptest.NewRequest("GET", url, nil)
		req.SetPathValue("platform", platform)
		req.SetPathValue("username", username)
		return req
	}

	t.Run("successful retrieval defaults to year to date", func(t *testing.T) {
		t.Parallel()

		stats := &domain.WrappedStats{
			Username:   "magnus",
			Platform:   domain.PlatformChessCom,
			TotalGames: 42,
			Wins:       30,
		}
		getWrapped, called := makeGetWrapped(t, yearStart, now, stats, nil)
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chesscom", "magnus", ""))

		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, *called)

		var response struct {
			Success bool                 `json:"success"`
			Stats   *domain.WrappedStats `json:"stats"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.True(t, response.Success)
		require.NotNil(t, response.Stats)
		require.Equal(t, "magnus", response.Stats.Username)
		require.Equal(t, 42, response.Stats.TotalGames)
	})

	t.Run("explicit period", func(t *testing.T) {
		t.Parallel()

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		until := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		getWrapped, called := makeGetWrapped(t, from, until, &domain.WrappedStats{}, nil)
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("lichess", "someone", "?from=2025-03-01T00:00:00Z&until=2025-06-01T00:00:00Z"))

		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, *called)
	})

	t.Run("unknown platform", func(t *testing.T) {
		t.Parallel()

		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, nil)
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chess24", "someone", ""))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.False(t, *called)
		require.JSONEq(t, `{"success":false,"cause":"Unknown platform"}`, w.Body.String())
	})

	t.Run("malformed period", func(t *testing.T) {
		t.Parallel()

		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, nil)
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chesscom", "someone", "?from=notadate"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.False(t, *called)
		require.JSONEq(t, `{"success":false,"cause":"Invalid period"}`, w.Body.String())
	})

	t.Run("inverted period", func(t *testing.T) {
		t.Parallel()

		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, nil)
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chesscom", "someone", "?from=2025-06-01T00:00:00Z&until=2025-03-01T00:00:00Z"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.False(t, *called)
	})

	t.Run("player not found", func(t *testing.T) {
		t.Parallel()

		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, fmt.Errorf("failed to fetch profile: %w", domain.ErrPlayerNotFound))
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chesscom", "ghost", ""))

		require.Equal(t, http.StatusNotFound, w.Code)
		require.True(t, *called)
		require.JSONEq(t, `{"success":false,"cause":"Player not found"}`, w.Body.String())
	})

	t.Run("upstream unauthorized", func(t *testing.T) {
		t.Parallel()

		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, fmt.Errorf("failed to fetch games: %w", domain.ErrUnauthorized))
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("lichess", "someone", ""))

		require.Equal(t, http.StatusBadGateway, w.Code)
		require.True(t, *called)
	})

	t.Run("generic failure", func(t *testing.T) {
		t.Parallel()

		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, fmt.Errorf("failed to fetch games: %w", domain.ErrFetchFailed))
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chesscom", "someone", ""))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.True(t, *called)
		require.JSONEq(t, `{"success":false,"cause":"Failed to get player data"}`, w.Body.String())
	})

	t.Run("rate limited upstream is a generic failure", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("failed to fetch games: %w: %w", domain.ErrFetchFailed, domain.ErrRateLimited)
		getWrapped, called := makeGetWrapped(t, yearStart, now, nil, err)
		handler := makeHandler(getWrapped)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeRequest("chesscom", "someone", ""))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.True(t, *called)
	})
}
