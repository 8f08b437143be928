package animation

import (
	"time"

	"github.com/alinanorakari/supersimple/internal/clock"
)

const (
	DefaultDuration = 600 * time.Millisecond
	DefaultDelay    = 150 * time.Millisecond
	// FrameInterval is how often a running timeline is stepped.
	FrameInterval = 33 * time.Millisecond
)

// Timeline converts elapsed wall time into engine progress for one run.
type Timeline struct {
	Duration time.Duration
	Delay    time.Duration

	clock    clock.Clock
	start    time.Time
	begun    bool
	finished bool
}

// NewTimeline creates a timeline that reads time from c.
func NewTimeline(duration, delay time.Duration, c clock.Clock) *Timeline {
	if c == nil {
		c = clock.System{}
	}
	return &Timeline{Duration: duration, Delay: delay, clock: c}
}

// Begin schedules a run starting now. The delay counts from here.
func (tl *Timeline) Begin() {
	tl.start = tl.clock.Now()
	tl.begun = true
	tl.finished = false
}

// Running reports whether Begin was called and the run has not completed.
func (tl *Timeline) Running() bool {
	return tl.begun && !tl.finished
}

// Step advances e to the current time. It returns true when the engine
// state changed and the face needs a redraw.
func (tl *Timeline) Step(e *Engine) bool {
	if !tl.Running() {
		return false
	}

	elapsed := tl.clock.Now().Sub(tl.start) - tl.Delay
	if elapsed < 0 {
		return false
	}
	if !e.Animating() {
		e.OnStart()
	}

	p := Progress(NormalizedMax)
	if tl.Duration > 0 && elapsed < tl.Duration {
		p = Progress(int64(elapsed) * NormalizedMax / int64(tl.Duration))
	}
	e.Advance(p)

	if p >= NormalizedMax {
		e.OnStop()
		tl.finished = true
	}
	return true
}
