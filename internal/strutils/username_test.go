package strutils_test

import (
	"strings"
	"testing"

	"github.com/chesswrapped/chesswrapped/internal/strutils"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsername(t *testing.T) {
	t.Parallel()

	t.Run("valid usernames are lowercased", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"MagnusCarlsen": "magnuscarlsen",
			"hikaru":        "hikaru",
			"  DrNykterstein  ": "drnykterstein",
			"a_b-c123": "a_b-c123",
		}
		for input, want := range cases {
			got, err := strutils.NormalizeUsername(input)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("invalid usernames are rejected", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"",
			"   ",
			"magnus carlsen",
			"magnus/../carlsen",
			"héros",
			strings.Repeat("a", 51),
		}
		for _, input := range invalid {
			_, err := strutils.NormalizeUsername(input)
			require.Error(t, err, "input: %q", input)
		}
	})
}
