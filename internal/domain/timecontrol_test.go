package domain_test

import (
	"testing"

	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestParseTimeControl(t *testing.T) {
	t.Parallel()

	cases := []struct {
		timeControl string
		base        int
		increment   int
	}{
		{"300+3", 300, 3},
		{"60+0", 60, 0},
		{"600", 600, 0},
		{"1/86400", 86400, 0},
		{"3/259200", 259200, 0},
		{"-", 0, 0},
		{"", 0, 0},
		{"garbage", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.timeControl, func(t *testing.T) {
			t.Parallel()

			base, increment := domain.ParseTimeControl(c.timeControl)
			require.Equal(t, c.base, base)
			require.Equal(t, c.increment, increment)
		})
	}
}

func TestTimeClassFromBase(t *testing.T) {
	t.Parallel()

	require.Equal(t, domain.TimeClassBullet, domain.TimeClassFromBase(30))
	require.Equal(t, domain.TimeClassBullet, domain.TimeClassFromBase(60))
	require.Equal(t, domain.TimeClassBlitz, domain.TimeClassFromBase(61))
	require.Equal(t, domain.TimeClassBlitz, domain.TimeClassFromBase(300))
	require.Equal(t, domain.TimeClassRapid, domain.TimeClassFromBase(301))
	require.Equal(t, domain.TimeClassRapid, domain.TimeClassFromBase(600))
	require.Equal(t, domain.TimeClassDaily, domain.TimeClassFromBase(601))
	require.Equal(t, domain.TimeClassDaily, domain.TimeClassFromBase(0))
}
