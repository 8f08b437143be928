package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"colorbg", KeyBackground, true},
		{"ColorM", KeyMinuteHand, true},
		{" ticks ", KeyTickCount, true},
		{"rectticks", KeyRectangularTicks, true},
		{"3", KeyPeg, true},
		{"7", KeyRectangularTicks, true},
		{"8", 0, false},
		{"-1", 0, false},
		{"colorz", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestKeySlotsAreStable(t *testing.T) {
	assert.Equal(t, 0, KeyBackground.Slot())
	assert.Equal(t, 1, KeyMinuteHand.Slot())
	assert.Equal(t, 2, KeyHourHand.Slot())
	assert.Equal(t, 3, KeyPeg.Slot())
	assert.Len(t, Keys, 8)
	for i, k := range Keys {
		assert.Equal(t, i, k.Slot())
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "colorbg", KeyBackground.String())
	assert.Equal(t, "key(99)", Key(99).String())
	assert.True(t, KeyTick.IsColor())
	assert.False(t, KeyShadows.IsColor())
}
