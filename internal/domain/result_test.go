package domain_test

import (
	"testing"

	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestClassifyResult(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		kind  domain.ResultKind
	}{
		{"win", domain.ResultWin},
		{"checkmated", domain.ResultLoss},
		{"resigned", domain.ResultLoss},
		{"timeout", domain.ResultLoss},
		{"lose", domain.ResultLoss},
		{"abandoned", domain.ResultLoss},
		{"kingofthehill", domain.ResultLoss},
		{"threecheck", domain.ResultLoss},
		{"bughousepartnerlose", domain.ResultLoss},
		{"agreed", domain.ResultDraw},
		{"repetition", domain.ResultDraw},
		{"stalemate", domain.ResultDraw},
		{"insufficient", domain.ResultDraw},
		{"50move", domain.ResultDraw},
		{"timevsinsufficient", domain.ResultDraw},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()

			kind, err := domain.ClassifyResult(c.label)
			require.NoError(t, err)
			require.Equal(t, c.kind, kind)
		})
	}

	t.Run("unknown label fails loudly", func(t *testing.T) {
		t.Parallel()

		for _, label := range []string{"", "victory", "WIN", "draw "} {
			_, err := domain.ClassifyResult(label)
			require.ErrorIs(t, err, domain.ErrUnknownResultLabel)
		}
	})
}

func TestSides(t *testing.T) {
	t.Parallel()

	game := domain.Game{
		White: domain.GamePlayer{Username: "Magnus", Rating: 2800, Result: "win"},
		Black: domain.GamePlayer{Username: "hikaru", Rating: 2790, Result: "resigned"},
	}

	own, opponent, playedWhite := game.Sides("magnus")
	require.True(t, playedWhite)
	require.Equal(t, "Magnus", own.Username)
	require.Equal(t, "hikaru", opponent.Username)

	own, opponent, playedWhite = game.Sides("HIKARU")
	require.False(t, playedWhite)
	require.Equal(t, "hikaru", own.Username)
	require.Equal(t, "Magnus", opponent.Username)
}
