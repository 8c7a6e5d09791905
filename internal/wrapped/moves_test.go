package wrapped

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMoves(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pgn  string
		want int
	}{
		{
			name: "empty",
			pgn:  "",
			want: 0,
		},
		{
			name: "plain movetext",
			pgn:  "1. e4 e5 2. Nf3 Nc6 3. Bb5 1-0",
			want: 3,
		},
		{
			name: "tag section is ignored",
			pgn:  "[Event \"Live Chess\"]\n[Result \"1-0\"]\n\n1. e4 e5 2. Nf3 1-0",
			want: 2,
		},
		{
			name: "clock comments are ignored",
			pgn:  "1. e4 {[%clk 0:02:59]} 1... e5 {[%clk 0:02:58]} 2. Nf3 {[%clk 0:02:57]} 1-0",
			want: 2,
		},
		{
			name: "black continuations are not double counted",
			pgn:  "1. e4 1... e5 2. Nf3 2... Nc6 1/2-1/2",
			want: 2,
		},
		{
			name: "multi line movetext",
			pgn:  "1. d4 d5\n2. c4 e6\n3. Nc3 Nf6 0-1",
			want: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CountMoves(tc.pgn))
		})
	}
}
