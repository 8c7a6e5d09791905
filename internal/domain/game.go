package domain

import (
	"strings"
	"time"
)

type Platform string

const (
	PlatformChessCom Platform = "chesscom"
	PlatformLichess  Platform = "lichess"
)

func PlatformFromString(raw string) (Platform, bool) {
	switch Platform(strings.ToLower(raw)) {
	case PlatformChessCom:
		return PlatformChessCom, true
	case PlatformLichess:
		return PlatformLichess, true
	}
	return "", false
}

type TimeClass string

const (
	TimeClassDaily  TimeClass = "daily"
	TimeClassRapid  TimeClass = "rapid"
	TimeClassBlitz  TimeClass = "blitz"
	TimeClassBullet TimeClass = "bullet"
)

// GamePlayer is one side of a finished game. Result is the platform's
// per-side outcome label (e.g. "win", "resigned", "timeout") - each color
// carries its own label, there is no shared verdict field.
type GamePlayer struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Result   string `json:"result"`
}

type Game struct {
	ID          string     `json:"id"`
	URL         string     `json:"url,omitempty"`
	PGN         string     `json:"pgn,omitempty"`
	TimeControl string     `json:"timeControl"`
	TimeClass   TimeClass  `json:"timeClass"`
	Rated       bool       `json:"rated"`
	EndTime     time.Time  `json:"endTime"`
	ECO         string     `json:"eco,omitempty"`
	OpeningName string     `json:"openingName,omitempty"`
	White       GamePlayer `json:"white"`
	Black       GamePlayer `json:"black"`
}

// Sides splits the game into the side played by username and the opposing
// side. The second return value reports whether username played white.
// Username comparison is case-insensitive, as both platforms treat
// usernames case-insensitively.
func (g *Game) Sides(username string) (own, opponent GamePlayer, playedWhite bool) {
	if strings.EqualFold(g.White.Username, username) {
		return g.White, g.Black, true
	}
	return g.Black, g.White, false
}
