package gameprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/logging"
	"github.com/chesswrapped/chesswrapped/internal/ratelimiting"
	"github.com/chesswrapped/chesswrapped/internal/reporting"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

const chessComBaseURL = "https://api.chess.com/pub"

const chessComOpeningURLPrefix = "https://www.chess.com/openings/"

type chessComProvider struct {
	transport *transport

	metrics providerMetricsCollection
}

// NewChessComProvider builds the chess.com adapter. The published-data API
// needs no credentials. retryDelay <= 0 selects the default backoff base.
func NewChessComProvider(httpClient HttpClient, retryDelay time.Duration) (GameProvider, error) {
	meter := otel.Meter("gameprovider/chesscom")
	metrics, err := setupProviderMetrics(meter, "chesscom")
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &chessComProvider{
		transport: newTransport(httpClient, retryDelay),

		metrics: metrics,
	}, nil
}

func (c *chessComProvider) FetchProfile(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	url := fmt.Sprintf("%s/player/%s", chessComBaseURL, username)
	data, err := c.transport.get(ctx, url, nil)
	if err != nil {
		// NOTE: transport classifies and logs its own failures
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile chessComProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		err = fmt.Errorf("%w: failed to parse profile: %w", domain.ErrFetchFailed, err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}

	var country *string
	if profile.Country != nil {
		// The API reports the country as a URL; keep only the code
		code := (*profile.Country)[strings.LastIndexByte(*profile.Country, '/')+1:]
		if code != "" {
			country = &code
		}
	}

	return &domain.PlayerProfile{
		Username:  profile.Username,
		Title:     profile.Title,
		Country:   country,
		JoinedAt:  time.Unix(profile.Joined, 0).UTC(),
		AvatarURL: profile.Avatar,
	}, nil
}

func (c *chessComProvider) FetchGames(ctx context.Context, username string, start, end time.Time) ([]domain.Game, error) {
	logger := logging.FromContext(ctx)

	archivesURL := fmt.Sprintf("%s/player/%s/games/archives", chessComBaseURL, username)
	data, err := c.transport.get(ctx, archivesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}

	var archiveList chessComArchiveList
	if err := json.Unmarshal(data, &archiveList); err != nil {
		err = fmt.Errorf("%w: failed to parse archive list: %w", domain.ErrFetchFailed, err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}

	// The month-level filter is coarse; games are exact-filtered by end
	// timestamp after fetching.
	kept := make([]string, 0, len(archiveList.Archives))
	for _, archiveURL := range archiveList.Archives {
		monthStart, monthEnd, err := archiveMonthInterval(archiveURL)
		if err != nil {
			logger.Warn("Skipping unparseable archive URL", "url", archiveURL, "error", err.Error())
			continue
		}
		if !monthStart.After(end) && !monthEnd.Before(start) {
			kept = append(kept, archiveURL)
		}
	}

	logger.Info("Fetching monthly archives", "total", len(archiveList.Archives), "kept", len(kept))

	// Bounded fan-out: at most maxConcurrentFetches archive requests in
	// flight, however many months the window spans. The limiter is scoped to
	// this invocation.
	limiter := ratelimiting.NewFetchLimiter(maxConcurrentFetches)
	archives := make([]chessComArchive, len(kept))

	g, gctx := errgroup.WithContext(ctx)
	for i, archiveURL := range kept {
		g.Go(func() error {
			release, err := limiter.Acquire(gctx)
			if err != nil {
				return err
			}
			defer release()

			data, err := c.transport.get(gctx, archiveURL, nil)
			if err != nil {
				return fmt.Errorf("failed to fetch archive: %w", err)
			}

			var archive chessComArchive
			if err := json.Unmarshal(data, &archive); err != nil {
				return fmt.Errorf("%w: failed to parse archive: %w", domain.ErrFetchFailed, err)
			}

			archives[i] = archive
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	games := []domain.Game{}
	for _, archive := range archives {
		for _, raw := range archive.Games {
			game := chessComGameToDomain(raw)
			if game.EndTime.Before(start) || game.EndTime.After(end) {
				continue
			}
			games = append(games, game)
		}
	}

	c.metrics.fetchCount.Add(ctx, 1)
	c.metrics.gamesFetched.Add(ctx, int64(len(games)))

	return games, nil
}

// archiveMonthInterval derives the [monthStart, monthEnd] interval from an
// archive URL ending in .../games/{YYYY}/{MM}.
func archiveMonthInterval(archiveURL string) (time.Time, time.Time, error) {
	parts := strings.Split(strings.TrimSuffix(archiveURL, "/"), "/")
	if len(parts) < 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("unexpected archive URL shape")
	}

	year, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid year: %w", err)
	}
	month, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month: %w", err)
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month: %d", month)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return monthStart, monthEnd, nil
}

func chessComGameToDomain(raw chessComGame) domain.Game {
	timeClass := domain.TimeClass(raw.TimeClass)
	switch timeClass {
	case domain.TimeClassDaily, domain.TimeClassRapid, domain.TimeClassBlitz, domain.TimeClassBullet:
	default:
		base, _ := domain.ParseTimeControl(raw.TimeControl)
		timeClass = domain.TimeClassFromBase(base)
	}

	return domain.Game{
		ID:          raw.UUID,
		URL:         raw.URL,
		PGN:         raw.PGN,
		TimeControl: raw.TimeControl,
		TimeClass:   timeClass,
		Rated:       raw.Rated,
		EndTime:     time.Unix(raw.EndTime, 0).UTC(),
		ECO:         pgnTagValue(raw.PGN, "ECO"),
		OpeningName: openingNameFromURL(raw.ECO),
		White: domain.GamePlayer{
			Username: raw.White.Username,
			Rating:   raw.White.Rating,
			Result:   raw.White.Result,
		},
		Black: domain.GamePlayer{
			Username: raw.Black.Username,
			Rating:   raw.Black.Rating,
			Result:   raw.Black.Result,
		},
	}
}

// openingNameFromURL turns an opening URL like
// https://www.chess.com/openings/Sicilian-Defense-Open into
// "Sicilian Defense Open".
func openingNameFromURL(openingURL string) string {
	if !strings.HasPrefix(openingURL, chessComOpeningURLPrefix) {
		return "Unknown"
	}
	name := strings.TrimPrefix(openingURL, chessComOpeningURLPrefix)
	name = strings.ReplaceAll(name, "-", " ")
	if name == "" {
		return "Unknown"
	}
	return name
}
