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
	"github.com/chesswrapped/chesswrapped/internal/reporting"
	"go.opentelemetry.io/otel"
)

const lichessBaseURL = "https://lichess.org"

type lichessProvider struct {
	transport *transport
	token     string
	now       func() time.Time

	metrics providerMetricsCollection
}

// NewLichessProvider builds the Lichess adapter. The API requires a bearer
// token; without one Lichess answers 401 and the adapter surfaces that
// unchanged. nowFunc stands in for time.Now in tests.
func NewLichessProvider(httpClient HttpClient, token string, retryDelay time.Duration, nowFunc func() time.Time) (GameProvider, error) {
	meter := otel.Meter("gameprovider/lichess")
	metrics, err := setupProviderMetrics(meter, "lichess")
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &lichessProvider{
		transport: newTransport(httpClient, retryDelay),
		token:     token,
		now:       nowFunc,

		metrics: metrics,
	}, nil
}

func (l *lichessProvider) headers(extra map[string]string) map[string]string {
	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", l.token),
	}
	for key, value := range extra {
		headers[key] = value
	}
	return headers
}

type lichessUser struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Title     *string `json:"title"`
	CreatedAt int64   `json:"createdAt"`
	Profile   *struct {
		Flag *string `json:"flag"`
	} `json:"profile"`
}

func (l *lichessProvider) FetchProfile(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	url := fmt.Sprintf("%s/api/user/%s", lichessBaseURL, username)
	data, err := l.transport.get(ctx, url, l.headers(nil))
	if err != nil {
		// NOTE: transport classifies and logs its own failures
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var user lichessUser
	if err := json.Unmarshal(data, &user); err != nil {
		err = fmt.Errorf("%w: failed to parse profile: %w", domain.ErrFetchFailed, err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}

	var country *string
	if user.Profile != nil && user.Profile.Flag != nil && *user.Profile.Flag != "" {
		country = user.Profile.Flag
	}

	return &domain.PlayerProfile{
		Username: user.Username,
		Title:    user.Title,
		Country:  country,
		JoinedAt: time.UnixMilli(user.CreatedAt).UTC(),
	}, nil
}

func (l *lichessProvider) FetchGames(ctx context.Context, username string, start, end time.Time) ([]domain.Game, error) {
	url := fmt.Sprintf(
		"%s/api/games/user/%s?since=%d&until=%d&opening=true",
		lichessBaseURL,
		username,
		start.UnixMilli(),
		end.UnixMilli(),
	)
	data, err := l.transport.get(ctx, url, l.headers(map[string]string{
		"Accept": "application/x-chess-pgn",
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to export games: %w", err)
	}

	blocks := scanPGNBlocks(string(data))

	games := make([]domain.Game, 0, len(blocks))
	dropped := 0
	for _, block := range blocks {
		game, ok := l.gameFromBlock(block)
		if !ok {
			dropped++
			continue
		}
		games = append(games, game)
	}

	logging.FromContext(ctx).Info("Parsed Lichess export", "blocks", len(blocks), "games", len(games), "dropped", dropped)

	l.metrics.fetchCount.Add(ctx, 1)
	l.metrics.gamesFetched.Add(ctx, int64(len(games)))

	return games, nil
}

// gameFromBlock converts one tag block into a game record. Blocks missing a
// white, black or result tag are dropped silently, as are unfinished games.
func (l *lichessProvider) gameFromBlock(block pgnBlock) (domain.Game, bool) {
	white, okWhite := block.tags["White"]
	black, okBlack := block.tags["Black"]
	result, okResult := block.tags["Result"]
	if !okWhite || !okBlack || !okResult {
		return domain.Game{}, false
	}
	if result == "*" {
		return domain.Game{}, false
	}

	whiteLabel, blackLabel := resultLabels(result, block.tags["Termination"], block.moveText)

	timeControl := block.tags["TimeControl"]
	base, _ := domain.ParseTimeControl(timeControl)
	timeClass := domain.TimeClassFromBase(base)

	endTime := l.now().UTC()
	if parsed, ok := parseUTCTags(block.tags["UTCDate"], block.tags["UTCTime"]); ok {
		endTime = parsed
	}

	openingName := block.tags["Opening"]
	if openingName == "" {
		openingName = "Unknown"
	}

	id := block.tags["GameId"]
	site := block.tags["Site"]
	if id == "" && site != "" {
		id = site[strings.LastIndexByte(site, '/')+1:]
	}

	return domain.Game{
		ID:          id,
		URL:         site,
		PGN:         block.moveText,
		TimeControl: timeControl,
		TimeClass:   timeClass,
		Rated:       strings.HasPrefix(block.tags["Event"], "Rated"),
		EndTime:     endTime,
		ECO:         block.tags["ECO"],
		OpeningName: openingName,
		White: domain.GamePlayer{
			Username: white,
			Rating:   parseElo(block.tags["WhiteElo"]),
			Result:   whiteLabel,
		},
		Black: domain.GamePlayer{
			Username: black,
			Rating:   parseElo(block.tags["BlackElo"]),
			Result:   blackLabel,
		},
	}, true
}

// resultLabels derives chess.com-style per-side labels from a PGN result
// tag, the termination tag and the move text, so both platforms feed the
// same vocabulary into the classifier.
func resultLabels(result, termination, moveText string) (whiteLabel, blackLabel string) {
	loserLabel := func() string {
		switch termination {
		case "Time forfeit":
			return "timeout"
		case "Abandoned":
			return "abandoned"
		}
		if strings.HasSuffix(strings.TrimSuffix(strings.TrimSpace(moveText), " "+result), "#") {
			return "checkmated"
		}
		return "resigned"
	}

	switch result {
	case "1-0":
		return "win", loserLabel()
	case "0-1":
		return loserLabel(), "win"
	case "1/2-1/2":
		return "agreed", "agreed"
	}

	// Unknown result tags flow through as-is and fail classification loudly
	return result, result
}

func parseUTCTags(utcDate, utcTime string) (time.Time, bool) {
	if utcDate == "" {
		return time.Time{}, false
	}
	if utcTime == "" {
		utcTime = "00:00:00"
	}
	parsed, err := time.Parse("2006.01.02 15:04:05", fmt.Sprintf("%s %s", utcDate, utcTime))
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

func parseElo(elo string) int {
	rating, err := strconv.Atoi(elo)
	if err != nil {
		return 0
	}
	return rating
}
