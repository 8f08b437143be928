// Package metrics exposes watch face counters to Prometheus.
package metrics

import "time"

// Reason labels why a frame was rendered.
type Reason string

const (
	ReasonTick      Reason = "tick"
	ReasonAnimation Reason = "animation"
	ReasonSettings  Reason = "settings"
	ReasonRedraw    Reason = "redraw"
)

// Recorder receives observations from the watch face loop. The zero
// NoopRecorder is used when metrics are disabled.
type Recorder interface {
	ObserveRender(reason Reason, d time.Duration)
	IncPresentError(target string)
	IncSettings(applied, rejected int)
	IncAnimationRun()
	IncTickLayoutError()
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRender(Reason, time.Duration) {}
func (NoopRecorder) IncPresentError(string)              {}
func (NoopRecorder) IncSettings(int, int)                {}
func (NoopRecorder) IncAnimationRun()                    {}
func (NoopRecorder) IncTickLayoutError()                 {}
