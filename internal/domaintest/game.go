package domaintest

import (
	"fmt"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/domain"
)

type gameBuilder struct {
	game *domain.Game
}

// NewGameBuilder builds a rated blitz game ending at endTime with the given
// player on the white side against "opponent". Tests override what they need.
func NewGameBuilder(username string, endTime time.Time) *gameBuilder {
	game := &domain.Game{
		ID:          fmt.Sprintf("game-%d", endTime.Unix()),
		URL:         fmt.Sprintf("https://example.com/game/%d", endTime.Unix()),
		TimeControl: "300",
		TimeClass:   domain.TimeClassBlitz,
		Rated:       true,
		EndTime:     endTime,
		White:       domain.GamePlayer{Username: username, Rating: 1500, Result: "win"},
		Black:       domain.GamePlayer{Username: "opponent", Rating: 1500, Result: "resigned"},
	}
	return &gameBuilder{game: game}
}

func (gb *gameBuilder) WithResults(own, opponent string) *gameBuilder {
	gb.game.White.Result = own
	gb.game.Black.Result = opponent
	return gb
}

func (gb *gameBuilder) AsBlack() *gameBuilder {
	gb.game.White, gb.game.Black = gb.game.Black, gb.game.White
	return gb
}

func (gb *gameBuilder) WithOpponent(username string, rating int) *gameBuilder {
	gb.game.Black.Username = username
	gb.game.Black.Rating = rating
	return gb
}

func (gb *gameBuilder) WithRating(rating int) *gameBuilder {
	gb.game.White.Rating = rating
	return gb
}

func (gb *gameBuilder) WithTimeControl(timeControl string, timeClass domain.TimeClass) *gameBuilder {
	gb.game.TimeControl = timeControl
	gb.game.TimeClass = timeClass
	return gb
}

func (gb *gameBuilder) WithOpening(eco, name string) *gameBuilder {
	gb.game.ECO = eco
	gb.game.OpeningName = name
	return gb
}

func (gb *gameBuilder) WithPGN(pgn string) *gameBuilder {
	gb.game.PGN = pgn
	return gb
}

func (gb *gameBuilder) Build() domain.Game {
	return *gb.game
}
