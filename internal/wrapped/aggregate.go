package wrapped

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/domain"
)

const (
	openingTopMinGames  = 3
	openingTopSize      = 5
	openingBestMinGames = 5
	opponentTopSize     = 10
	nemesisMinGames     = 3
	quickWinMaxMoves    = 20
)

// keyedCounts pairs a map accumulator with its keys in first-encounter
// order, so post-pass scans are deterministic regardless of map iteration.
type keyedCounts[T any] struct {
	byKey map[string]*T
	order []string
}

func newKeyedCounts[T any]() *keyedCounts[T] {
	return &keyedCounts[T]{byKey: map[string]*T{}}
}

func (k *keyedCounts[T]) get(key string, create func() *T) *T {
	if entry, ok := k.byKey[key]; ok {
		return entry
	}
	entry := create()
	k.byKey[key] = entry
	k.order = append(k.order, key)
	return entry
}

func (k *keyedCounts[T]) inOrder() []*T {
	entries := make([]*T, 0, len(k.order))
	for _, key := range k.order {
		entries = append(entries, k.byKey[key])
	}
	return entries
}

// Aggregate reduces a player's game list to the full statistics report in
// one chronological pass. The input need not be sorted; a copy is sorted by
// end timestamp ascending first, since bounded-concurrency fetches may
// deliver archives out of order. The output is fully determined by the
// inputs - no randomness, no wall clock.
func Aggregate(
	games []domain.Game,
	username string,
	profile domain.PlayerProfile,
	platform domain.Platform,
	periodStart, periodEnd time.Time,
) (*domain.WrappedStats, error) {
	sorted := slices.Clone(games)
	slices.SortStableFunc(sorted, func(a, b domain.Game) int {
		if a.EndTime.Before(b.EndTime) {
			return -1
		}
		if a.EndTime.After(b.EndTime) {
			return 1
		}
		return 0
	})

	stats := &domain.WrappedStats{
		Username:        username,
		Platform:        platform,
		Profile:         profile,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		RatingHistories: map[domain.TimeClass]domain.RatingHistory{},
		TopOpponents:    []domain.OpponentStats{},
		TimeControls:    []domain.TimeControlStats{},
	}

	var winStreak, lossStreak int

	ratingEntries := map[domain.TimeClass][]domain.RatingPoint{}
	whiteOpenings := newKeyedCounts[domain.OpeningStats]()
	blackOpenings := newKeyedCounts[domain.OpeningStats]()
	opponents := newKeyedCounts[domain.OpponentStats]()
	timeControls := newKeyedCounts[domain.TimeControlStats]()
	timeClassCounts := map[domain.TimeClass]int{}

	bestWin := newStrictMax[domain.NotableGame, int]()
	quickestWin := newStrictMin[domain.NotableGame, int]()
	highestDefeated := newStrictMax[domain.DefeatedOpponent, int]()
	nemesis := newStrictMax[domain.OpponentStats, int]()

	var estimatedSeconds float64

	for i := range sorted {
		game := &sorted[i]
		own, opponent, playedWhite := game.Sides(username)

		kind, err := domain.ClassifyResult(own.Result)
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", game.ID, err)
		}

		moves := CountMoves(game.PGN)

		switch kind {
		case domain.ResultWin:
			stats.Wins++

			switch opponent.Result {
			case "checkmated":
				stats.Results.CheckmatesGiven++
				stats.Results.WinsByCheckmate++
			case "resigned":
				stats.Results.WinsByResignation++
			case "timeout":
				stats.Results.WinsByTimeout++
			default:
				stats.Results.WinsByOther++
			}

			winStreak++
			lossStreak = 0
			if winStreak > stats.LongestWinStreak {
				stats.LongestWinStreak = winStreak
			}
			stats.CurrentStreak = domain.Streak{Type: domain.StreakWin, Count: winStreak}

			notable := domain.NotableGame{
				URL:            game.URL,
				Opponent:       opponent.Username,
				OpponentRating: opponent.Rating,
				PlayerRating:   own.Rating,
				Moves:          moves,
				TimeClass:      game.TimeClass,
				EndTime:        game.EndTime,
			}
			bestWin.offer(notable, opponent.Rating)
			if moves > 0 && moves < quickWinMaxMoves {
				quickestWin.offer(notable, moves)
			}
			highestDefeated.offer(domain.DefeatedOpponent{
				Username: opponent.Username,
				Rating:   opponent.Rating,
				GameURL:  game.URL,
			}, opponent.Rating)

		case domain.ResultLoss:
			stats.Losses++

			if own.Result == "checkmated" {
				stats.Results.CheckmatesReceived++
			}

			lossStreak++
			winStreak = 0
			if lossStreak > stats.LongestLossStreak {
				stats.LongestLossStreak = lossStreak
			}
			stats.CurrentStreak = domain.Streak{Type: domain.StreakLoss, Count: lossStreak}

		case domain.ResultDraw:
			stats.Draws++

			if own.Result == "stalemate" {
				stats.Results.Stalemates++
			} else {
				stats.Results.OtherDraws++
			}

			// Draws reset both run counters; the current streak is always
			// {draw, 1} after a draw, however many draws came before it.
			winStreak = 0
			lossStreak = 0
			stats.CurrentStreak = domain.Streak{Type: domain.StreakDraw, Count: 1}
		}

		endTime := game.EndTime.UTC()

		ratingEntries[game.TimeClass] = append(ratingEntries[game.TimeClass], domain.RatingPoint{
			Date:      endTime.Format(time.DateOnly),
			Rating:    own.Rating,
			Timestamp: game.EndTime,
		})

		openingKey := fmt.Sprintf("%s:%s", game.ECO, game.OpeningName)
		openingSide := whiteOpenings
		if !playedWhite {
			openingSide = blackOpenings
		}
		opening := openingSide.get(openingKey, func() *domain.OpeningStats {
			return &domain.OpeningStats{ECO: game.ECO, Name: game.OpeningName}
		})
		opening.Games++
		addResult(&opening.Wins, &opening.Losses, &opening.Draws, kind)

		opponentEntry := opponents.get(strings.ToLower(opponent.Username), func() *domain.OpponentStats {
			return &domain.OpponentStats{Username: opponent.Username}
		})
		opponentEntry.Games++
		opponentEntry.Rating = opponent.Rating // latest known rating wins
		addResult(&opponentEntry.Wins, &opponentEntry.Losses, &opponentEntry.Draws, kind)

		controlKey := fmt.Sprintf("%s:%s", game.TimeControl, game.TimeClass)
		control := timeControls.get(controlKey, func() *domain.TimeControlStats {
			return &domain.TimeControlStats{TimeControl: game.TimeControl, TimeClass: game.TimeClass}
		})
		control.Games++
		addResult(&control.Wins, &control.Losses, &control.Draws, kind)

		stats.GamesByHour[endTime.Hour()]++
		stats.GamesByDay[int(endTime.Weekday())]++

		timeClassCounts[game.TimeClass]++

		stats.Activity.TotalMoves += moves
		estimatedSeconds += estimateDurationSeconds(game.TimeClass, game.TimeControl, moves)
	}

	stats.TotalGames = len(sorted)
	if stats.TotalGames > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.TotalGames) * 100
	}
	stats.Activity.EstimatedPlaySeconds = int(estimatedSeconds)

	for timeClass, entries := range ratingEntries {
		stats.RatingHistories[timeClass] = collapseRatingHistory(entries)
	}

	stats.OpeningsAsWhite = openingReport(whiteOpenings)
	stats.OpeningsAsBlack = openingReport(blackOpenings)

	for _, entry := range opponents.inOrder() {
		if entry.Games >= nemesisMinGames && entry.Losses > entry.Wins {
			nemesis.offer(*entry, entry.Losses-entry.Wins)
		}
	}
	stats.TopOpponents = topByGames(opponents.inOrder(), opponentTopSize, func(o *domain.OpponentStats) int { return o.Games })
	if len(stats.TopOpponents) > 0 {
		mostPlayed := stats.TopOpponents[0]
		stats.MostPlayedOpponent = &mostPlayed
	}
	stats.Nemesis = nemesis.get()
	stats.HighestRatedDefeated = highestDefeated.get()

	controls := timeControls.inOrder()
	slices.SortStableFunc(controls, func(a, b *domain.TimeControlStats) int { return b.Games - a.Games })
	for _, control := range controls {
		control.WinRate = winRate(control.Wins, control.Games)
		stats.TimeControls = append(stats.TimeControls, *control)
	}
	if len(controls) > 0 {
		stats.MostPlayedTimeControl = controls[0].TimeControl
	}

	stats.BusiestHour = argmax(stats.GamesByHour[:])
	stats.BusiestDay = time.Weekday(argmax(stats.GamesByDay[:]))

	stats.BestWin = bestWin.get()
	stats.QuickestWin = quickestWin.get()

	if stats.TotalGames > 0 {
		stats.MostPlayedTimeClass = mostPlayedTimeClass(timeClassCounts)
		stats.FormatTag = formatTag(stats.MostPlayedTimeClass, stats.WinRate)
		stats.TimeTag = timeTag(stats.BusiestHour)
	}

	return stats, nil
}

func addResult(wins, losses, draws *int, kind domain.ResultKind) {
	switch kind {
	case domain.ResultWin:
		*wins++
	case domain.ResultLoss:
		*losses++
	case domain.ResultDraw:
		*draws++
	}
}

func winRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}

// collapseRatingHistory reduces a time-class's entries to one point per
// calendar date (the latest entry that date wins), sorts the collapsed
// series by timestamp and derives start/end/change and the peak and lowest
// ratings with the date each was first reached.
func collapseRatingHistory(entries []domain.RatingPoint) domain.RatingHistory {
	latestByDate := map[string]domain.RatingPoint{}
	dateOrder := []string{}
	for _, entry := range entries {
		current, ok := latestByDate[entry.Date]
		if !ok {
			dateOrder = append(dateOrder, entry.Date)
			latestByDate[entry.Date] = entry
			continue
		}
		if !entry.Timestamp.Before(current.Timestamp) {
			latestByDate[entry.Date] = entry
		}
	}

	points := make([]domain.RatingPoint, 0, len(dateOrder))
	for _, date := range dateOrder {
		points = append(points, latestByDate[date])
	}
	slices.SortStableFunc(points, func(a, b domain.RatingPoint) int {
		if a.Timestamp.Before(b.Timestamp) {
			return -1
		}
		if a.Timestamp.After(b.Timestamp) {
			return 1
		}
		return 0
	})

	history := domain.RatingHistory{Points: points}
	if len(points) == 0 {
		return history
	}

	history.StartRating = points[0].Rating
	history.EndRating = points[len(points)-1].Rating
	history.Change = history.EndRating - history.StartRating

	peak := newStrictMax[domain.RatingExtreme, int]()
	lowest := newStrictMin[domain.RatingExtreme, int]()
	for _, point := range points {
		extreme := domain.RatingExtreme{Rating: point.Rating, Date: point.Date}
		peak.offer(extreme, point.Rating)
		lowest.offer(extreme, point.Rating)
	}
	history.Peak = *peak.get()
	history.Lowest = *lowest.get()

	return history
}

func openingReport(openings *keyedCounts[domain.OpeningStats]) domain.OpeningReport {
	report := domain.OpeningReport{Top: []domain.OpeningStats{}}

	qualifying := []*domain.OpeningStats{}
	for _, opening := range openings.inOrder() {
		opening.WinRate = winRate(opening.Wins, opening.Games)
		if opening.Games >= openingTopMinGames {
			qualifying = append(qualifying, opening)
		}
	}

	top := topByGames(qualifying, openingTopSize, func(o *domain.OpeningStats) int { return o.Games })
	report.Top = top

	best := newStrictMax[domain.OpeningStats, float64]()
	for _, opening := range openings.inOrder() {
		if opening.Games >= openingBestMinGames {
			best.offer(*opening, opening.WinRate)
		}
	}
	report.Best = best.get()

	return report
}

// topByGames returns up to size entries sorted by game count descending;
// the stable sort keeps encounter order among equal counts.
func topByGames[T any](entries []*T, size int, games func(*T) int) []T {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *T) int { return games(b) - games(a) })
	if len(sorted) > size {
		sorted = sorted[:size]
	}
	top := make([]T, 0, len(sorted))
	for _, entry := range sorted {
		top = append(top, *entry)
	}
	return top
}

// argmax returns the index of the largest bucket; the lowest index wins
// ties since only a strictly greater value replaces the running maximum.
func argmax(buckets []int) int {
	maxIndex := 0
	for i, count := range buckets {
		if count > buckets[maxIndex] {
			maxIndex = i
		}
	}
	return maxIndex
}

func mostPlayedTimeClass(counts map[domain.TimeClass]int) domain.TimeClass {
	classes := []domain.TimeClass{
		domain.TimeClassBullet,
		domain.TimeClassBlitz,
		domain.TimeClassRapid,
		domain.TimeClassDaily,
	}
	most := classes[0]
	for _, class := range classes[1:] {
		if counts[class] > counts[most] {
			most = class
		}
	}
	return most
}

// estimateDurationSeconds estimates how long one game took: zero for
// correspondence games, otherwise min(moves * (base/40 + increment) * 0.7,
// base * 2).
func estimateDurationSeconds(timeClass domain.TimeClass, timeControl string, moves int) float64 {
	if timeClass == domain.TimeClassDaily {
		return 0
	}
	base, increment := domain.ParseTimeControl(timeControl)
	if base <= 0 {
		return 0
	}
	estimated := float64(moves) * (float64(base)/40.0 + float64(increment)) * 0.7
	return math.Min(estimated, float64(base)*2)
}
