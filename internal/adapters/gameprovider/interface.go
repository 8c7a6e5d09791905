package gameprovider

import (
	"context"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/domain"
)

// GameProvider fetches a player's public profile and finished games from
// one chess platform. Implementations are stateless between calls.
type GameProvider interface {
	FetchProfile(ctx context.Context, username string) (*domain.PlayerProfile, error)
	FetchGames(ctx context.Context, username string, start, end time.Time) ([]domain.Game, error)
}
