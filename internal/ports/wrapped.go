package ports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/getwrapped"
	"github.com/chesswrapped/chesswrapped/internal/logging"
	"github.com/chesswrapped/chesswrapped/internal/ratelimiting"
	"github.com/chesswrapped/chesswrapped/internal/reporting"
)

type wrappedResponse struct {
	Success bool                 `json:"success"`
	Stats   *domain.WrappedStats `json:"stats,omitempty"`
	Cause   string               `json:"cause,omitempty"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, cause string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(fmt.Sprintf(`{"success":false,"cause":%q}`, cause)))
}

// parsePeriod resolves the requested period from the from/until query
// parameters (RFC3339). Both default to the current UTC year so a bare
// request yields a year-to-date report.
func parsePeriod(r *http.Request, now time.Time) (start, end time.Time, err error) {
	start = time.Date(now.UTC().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	end = now.UTC()

	if raw := r.URL.Query().Get("from"); raw != "" {
		start, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from parameter: %w", err)
		}
	}
	if raw := r.URL.Query().Get("until"); raw != "" {
		end, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid until parameter: %w", err)
		}
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("until is not after from")
	}
	return start, end, nil
}

func MakeGetWrappedHandler(
	getWrapped getwrapped.GetWrapped,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	nowFunc func() time.Time,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(2),
		ratelimiting.BurstSize(120),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)
	userIDLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(60),
	)
	userIDRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		// NOTE: Rate limiting based on user controlled value
		userIDLimiter,
		ratelimiting.UserIDKeyFunc,
	)

	onLimitExceeded := func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusTooManyRequests, "Rate limit exceeded")
	}

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("wrapped"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("wrapped"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, onLimitExceeded),
		NewRateLimitMiddleware(userIDRateLimiter, onLimitExceeded),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rawPlatform := r.PathValue("platform")
		rawUsername := r.PathValue("username")

		ctx = logging.AddMetaToContext(ctx,
			slog.String("platform", rawPlatform),
			slog.String("username", rawUsername),
		)
		ctx = reporting.AddExtrasToContext(ctx,
			map[string]string{
				"platform":    rawPlatform,
				"rawUsername": rawUsername,
			},
		)

		platform, ok := domain.PlatformFromString(rawPlatform)
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "Unknown platform")
			return
		}

		start, end, err := parsePeriod(r, nowFunc())
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid period")
			return
		}

		ctx = logging.AddMetaToContext(ctx,
			slog.Time("periodStart", start),
			slog.Time("periodEnd", end),
		)

		stats, err := getWrapped(ctx, rawUsername, platform, start, end)
		if err != nil {
			// NOTE: GetWrapped implementations handle their own error reporting
			switch {
			case errors.Is(err, domain.ErrPlayerNotFound):
				writeJSONError(w, http.StatusNotFound, "Player not found")
			case errors.Is(err, domain.ErrUnauthorized):
				writeJSONError(w, http.StatusBadGateway, "Upstream authorization failed")
			default:
				writeJSONError(w, http.StatusInternalServerError, "Failed to get player data")
			}
			return
		}

		marshalled, err := json.Marshal(wrappedResponse{Success: true, Stats: stats})
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to marshal wrapped response: %w", err))
			writeJSONError(w, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).InfoContext(ctx, "Returning wrapped data", "games", stats.TotalGames)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(marshalled)
	}

	return middleware(handler)
}
