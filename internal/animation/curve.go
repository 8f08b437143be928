package animation

import "fmt"

// NormalizedMax is the normalized progress value that represents 1.0.
const NormalizedMax = 65535

// Progress is a normalized animation position in [0, NormalizedMax].
type Progress int32

// Clamp limits p to the normalized range.
func (p Progress) Clamp() Progress {
	if p < 0 {
		return 0
	}
	if p > NormalizedMax {
		return NormalizedMax
	}
	return p
}

// Curve maps linear progress to eased progress. Curves must be monotonic
// and map 0 to 0 and NormalizedMax to NormalizedMax.
type Curve func(Progress) Progress

// Linear applies no easing.
func Linear(p Progress) Progress { return p.Clamp() }

// EaseInOut is a symmetric cubic: slow start, fast middle, slow end.
func EaseInOut(p Progress) Progress {
	const m = int64(NormalizedMax)
	t := int64(p.Clamp())
	if t < m/2 {
		return Progress(4 * t * t * t / (m * m))
	}
	r := m - t
	return Progress(m - 4*r*r*r/(m*m))
}

// ParseCurve resolves a curve by its configuration name.
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "", "ease-in-out":
		return EaseInOut, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown animation curve %q", name)
	}
}
