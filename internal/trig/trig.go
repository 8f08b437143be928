// Package trig provides fixed-point sine and cosine lookups.
//
// Angles are expressed on a normalized range where MaxAngle is one full
// turn, clockwise from twelve o'clock when used for screen placement.
// Results are ratios scaled so that MaxRatio represents 1.0.
package trig

import "math"

const (
	// MaxAngle is one full rotation.
	MaxAngle = 0x10000
	// MaxRatio is the fixed-point value of 1.0.
	MaxRatio = 0xFFFF

	lutShift = 4
	lutSize  = MaxAngle >> lutShift
	lutMask  = lutSize - 1
	lutStep  = 1 << lutShift
)

// sinLUT holds one full period sampled every lutStep angle units, plus a
// wrap entry so interpolation never needs a modulo.
var sinLUT [lutSize + 1]int32

func init() {
	for i := 0; i <= lutSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / lutSize
		sinLUT[i] = int32(math.Round(math.Sin(rad) * MaxRatio))
	}
}

// Normalize wraps any angle into [0, MaxAngle).
func Normalize(angle int32) int32 {
	angle %= MaxAngle
	if angle < 0 {
		angle += MaxAngle
	}
	return angle
}

// Sin returns sin(angle) scaled by MaxRatio.
func Sin(angle int32) int32 {
	a := Normalize(angle)
	idx := a >> lutShift
	frac := a & (lutStep - 1)
	v0 := sinLUT[idx]
	if frac == 0 {
		return v0
	}
	v1 := sinLUT[idx+1]
	return v0 + (v1-v0)*frac/lutStep
}

// Cos returns cos(angle) scaled by MaxRatio.
func Cos(angle int32) int32 {
	return Sin(angle + MaxAngle/4)
}

// FromDegrees converts whole degrees to the normalized angle range.
func FromDegrees(deg int32) int32 {
	return deg * MaxAngle / 360
}
