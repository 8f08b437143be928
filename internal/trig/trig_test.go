package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinalAnglesAreExact(t *testing.T) {
	assert.Equal(t, int32(0), Sin(0))
	assert.Equal(t, int32(MaxRatio), Sin(MaxAngle/4))
	assert.Equal(t, int32(0), Sin(MaxAngle/2))
	assert.Equal(t, int32(-MaxRatio), Sin(3*MaxAngle/4))

	assert.Equal(t, int32(MaxRatio), Cos(0))
	assert.Equal(t, int32(0), Cos(MaxAngle/4))
	assert.Equal(t, int32(-MaxRatio), Cos(MaxAngle/2))
	assert.Equal(t, int32(0), Cos(3*MaxAngle/4))
}

func TestSinMatchesFloatingPoint(t *testing.T) {
	for angle := int32(0); angle < MaxAngle; angle += 97 {
		want := math.Sin(2*math.Pi*float64(angle)/MaxAngle) * MaxRatio
		assert.InDelta(t, want, float64(Sin(angle)), 3, "angle %d", angle)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, int32(0), Normalize(0))
	assert.Equal(t, int32(0), Normalize(MaxAngle))
	assert.Equal(t, int32(MaxAngle-1), Normalize(-1))
	assert.Equal(t, int32(100), Normalize(MaxAngle*3+100))
}

func TestWrapAround(t *testing.T) {
	assert.Equal(t, Sin(1000), Sin(1000+MaxAngle))
	assert.Equal(t, Sin(1000), Sin(1000-MaxAngle))
	assert.Equal(t, Cos(-MaxAngle/4), Cos(3*MaxAngle/4))
}

func TestFromDegrees(t *testing.T) {
	assert.Equal(t, int32(0), FromDegrees(0))
	assert.Equal(t, int32(MaxAngle/4), FromDegrees(90))
	assert.Equal(t, int32(MaxAngle/2), FromDegrees(180))
	assert.Equal(t, int32(MaxAngle), FromDegrees(360))
}
