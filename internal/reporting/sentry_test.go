package reporting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:   "chesscom player path",
			input:  "fetch failed: GET https://api.chess.com/pub/player/magnuscarlsen returned 500",
			output: "fetch failed: GET https://api.chess.com/pub/player/<username> returned 500",
		},
		{
			name:   "lichess user path",
			input:  "fetch failed: GET https://lichess.org/api/user/DrNykterstein returned 502",
			output: "fetch failed: GET https://lichess.org/api/user/<username> returned 502",
		},
		{
			name:   "lichess games path",
			input:  "read: https://lichess.org/api/games/user/some_player-1: connection reset",
			output: "read: https://lichess.org/api/games/user/<username>: connection reset",
		},
		{
			name:   "no username",
			input:  "failed to parse archive list",
			output: "failed to parse archive list",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.output, sanitizeError(c.input))
		})
	}
}
