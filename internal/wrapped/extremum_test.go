package wrapped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictMaxKeepsFirstOnTies(t *testing.T) {
	t.Parallel()

	max := newStrictMax[string, int]()
	assert.Nil(t, max.get())

	assert.True(t, max.offer("first", 10))
	assert.False(t, max.offer("tied", 10))
	assert.True(t, max.offer("higher", 20))
	assert.False(t, max.offer("lower", 5))

	require.NotNil(t, max.get())
	assert.Equal(t, "higher", *max.get())
}

func TestStrictMinKeepsFirstOnTies(t *testing.T) {
	t.Parallel()

	min := newStrictMin[string, float64]()

	assert.True(t, min.offer("first", 1.5))
	assert.False(t, min.offer("tied", 1.5))
	assert.True(t, min.offer("lower", 0.5))

	require.NotNil(t, min.get())
	assert.Equal(t, "lower", *min.get())
}
