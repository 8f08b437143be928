// Package animation drives the intro grow-in animation of the face.
package animation

import "github.com/alinanorakari/supersimple/internal/trig"

// MaxAngleOffset is the hand divergence at the very start of the intro,
// in trig angle units. It shrinks to zero as the animation completes.
const MaxAngleOffset = trig.MaxAngle / 24

// State is the snapshot of the animation read by a render pass.
type State struct {
	Percent   int
	Animating bool
}

// Settled is the state of a face that has finished its intro.
var Settled = State{Percent: 100}

// AngleOffset is the divergence to add to the hour hand and subtract from
// the minute hand. It is exactly zero unless the animation is running.
func (s State) AngleOffset() int32 {
	if !s.Animating {
		return 0
	}
	remaining := int32(100 - s.Percent)
	if remaining < 0 {
		remaining = 0
	}
	return MaxAngleOffset * remaining / 100
}

// Engine tracks the eased progress of a single animation run.
// Percent never decreases between Reset calls.
type Engine struct {
	curve     Curve
	percent   int
	animating bool
}

// NewEngine creates an engine using the given curve. A nil curve means
// EaseInOut.
func NewEngine(curve Curve) *Engine {
	if curve == nil {
		curve = EaseInOut
	}
	return &Engine{curve: curve}
}

// OnStart marks the animation as running.
func (e *Engine) OnStart() {
	e.animating = true
}

// OnStop marks the animation as finished and settles at 100 percent.
func (e *Engine) OnStop() {
	e.animating = false
	e.percent = 100
}

// Reset returns the engine to its pre-launch state so the intro can run
// again.
func (e *Engine) Reset() {
	e.animating = false
	e.percent = 0
}

// Advance feeds a normalized clock value and returns the eased percent.
func (e *Engine) Advance(p Progress) int {
	eased := int64(e.curve(p.Clamp()))
	pct := int(eased * 100 / NormalizedMax)
	if pct > e.percent {
		e.percent = pct
	}
	return e.percent
}

// Animating reports whether the run is between OnStart and OnStop.
func (e *Engine) Animating() bool { return e.animating }

// Percent is the current eased progress, 0..100.
func (e *Engine) Percent() int { return e.percent }

// State returns the snapshot for a render pass.
func (e *Engine) State() State {
	return State{Percent: e.percent, Animating: e.animating}
}
