package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopNKeepsLowestScores(t *testing.T) {
	top := NewTopN[string](3)
	assert.True(t, top.Push(5, "five"))
	assert.True(t, top.Push(1, "one"))
	assert.True(t, top.Push(3, "three"))
	require.Equal(t, 3, top.Len())

	// a worse score than everything kept is rejected once full.
	assert.False(t, top.Push(9, "nine"))
	require.Equal(t, 3, top.Len())

	// a better score evicts the current worst ("five", score 5).
	assert.True(t, top.Push(2, "two"))
	require.Equal(t, 3, top.Len())

	values := top.Values()
	assert.NotContains(t, values, "five")
	assert.NotContains(t, values, "nine")
	assert.Contains(t, values, "one")
	assert.Contains(t, values, "two")
	assert.Contains(t, values, "three")
}

func TestTopNLimitFloor(t *testing.T) {
	top := NewTopN[int](0)
	assert.True(t, top.Push(1, 1))
	assert.Equal(t, 1, top.Len())
}
