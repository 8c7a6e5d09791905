package getwrapped

import (
	"context"
	"fmt"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/adapters/gameprovider"
	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/logging"
	"github.com/chesswrapped/chesswrapped/internal/reporting"
	"github.com/chesswrapped/chesswrapped/internal/strutils"
	"github.com/chesswrapped/chesswrapped/internal/wrapped"
)

type GetWrapped = func(
	ctx context.Context,
	username string,
	platform domain.Platform,
	start, end time.Time,
) (*domain.WrappedStats, error)

// BuildGetWrapped wires the full pipeline for one request: resolve the
// player's profile, fetch the period's games from the platform adapter and
// reduce them to the statistics report.
func BuildGetWrapped(
	providers map[domain.Platform]gameprovider.GameProvider,
) GetWrapped {
	return func(ctx context.Context,
		username string,
		platform domain.Platform,
		start, end time.Time,
	) (*domain.WrappedStats, error) {
		logger := logging.FromContext(ctx)

		provider, ok := providers[platform]
		if !ok {
			err := fmt.Errorf("no provider for platform %q", platform)
			reporting.Report(ctx, err, map[string]string{
				"platform": string(platform),
			})
			return nil, err
		}

		normalized, err := strutils.NormalizeUsername(username)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPlayerNotFound, err)
		}

		if !end.After(start) {
			err := fmt.Errorf("period end is not after start")
			reporting.Report(ctx, err, map[string]string{
				"start": start.Format(time.RFC3339),
				"end":   end.Format(time.RFC3339),
			})
			return nil, err
		}

		profile, err := provider.FetchProfile(ctx, normalized)
		if err != nil {
			// NOTE: adapters handle their own error reporting
			return nil, fmt.Errorf("failed to fetch profile: %w", err)
		}

		games, err := provider.FetchGames(ctx, normalized, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch games: %w", err)
		}

		logger.Info("Fetched games for period", "platform", platform, "games", len(games))

		stats, err := wrapped.Aggregate(games, normalized, *profile, platform, start, end)
		if err != nil {
			reporting.Report(ctx, err, map[string]string{
				"platform": string(platform),
				"games":    fmt.Sprintf("%d", len(games)),
			})
			return nil, fmt.Errorf("failed to aggregate games: %w", err)
		}

		return stats, nil
	}
}
