package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseInOutEndpoints(t *testing.T) {
	assert.Equal(t, Progress(0), EaseInOut(0))
	assert.Equal(t, Progress(NormalizedMax), EaseInOut(NormalizedMax))
	assert.Equal(t, Progress(0), EaseInOut(-10))
	assert.Equal(t, Progress(NormalizedMax), EaseInOut(NormalizedMax+10))
}

func TestEaseInOutIsMonotonic(t *testing.T) {
	prev := EaseInOut(0)
	for p := Progress(1); p <= NormalizedMax; p++ {
		cur := EaseInOut(p)
		require.GreaterOrEqual(t, cur, prev, "progress %d", p)
		prev = cur
	}
}

func TestEaseInOutShape(t *testing.T) {
	quarter := Progress(NormalizedMax / 4)
	// Slow start and slow end relative to linear.
	assert.Less(t, EaseInOut(quarter), quarter)
	assert.Greater(t, EaseInOut(NormalizedMax-quarter), NormalizedMax-quarter)
	// Symmetric around the midpoint.
	sum := int(EaseInOut(quarter)) + int(EaseInOut(NormalizedMax-quarter))
	assert.InDelta(t, NormalizedMax, sum, 2)
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("linear")
	require.NoError(t, err)
	assert.Equal(t, Progress(1234), c(1234))

	c, err = ParseCurve("")
	require.NoError(t, err)
	assert.Equal(t, EaseInOut(1234), c(1234))

	_, err = ParseCurve("bounce")
	assert.Error(t, err)
}
