// Package watchface runs the watch face: it owns the settings, the intro
// animation and the renderer, and serializes every change on one loop.
package watchface

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/display"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
	"github.com/alinanorakari/supersimple/internal/geometry"
	"github.com/alinanorakari/supersimple/internal/metrics"
	"github.com/alinanorakari/supersimple/internal/render"
	"github.com/alinanorakari/supersimple/internal/storage"
)

// ErrStopped is returned by requests made after Run has returned.
var ErrStopped = errors.New("watch face is not running")

// TickSource delivers the time of day, typically a clock.Ticker.
type TickSource interface {
	Ticks() <-chan clock.TimeOfDay
}

// Options configures an App.
type Options struct {
	Display display.Target
	// TargetName labels present errors in metrics.
	TargetName string
	Screen     domain.Display
	Layout     geometry.Layout

	// Animate runs the intro on start and on Replay.
	Animate  bool
	Curve    animation.Curve
	Duration time.Duration
	Delay    time.Duration

	// Store persists settings slots and caches the last settled frame.
	// Nil keeps everything in memory.
	Store   storage.Store
	Clock   clock.Clock
	Metrics metrics.Recorder
}

type eventKind int

const (
	evSettings eventKind = iota
	evQuery
	evReplay
	evRedraw
)

type event struct {
	kind   eventKind
	update face.Update
	result chan face.Result
	query  chan face.Update
}

// App is the running watch face. Its exported methods are safe to call
// from any goroutine; all state changes happen on the Run goroutine.
type App struct {
	opts     Options
	settings *face.Settings
	engine   *animation.Engine
	timeline *animation.Timeline
	renderer *render.Renderer

	events chan event
	done   chan struct{}

	now    clock.TimeOfDay
	dirty  bool
	reason metrics.Reason
}

// New creates an App. Nothing is drawn until Run.
func New(opts Options) *App {
	if opts.Display == nil {
		opts.Display = display.Discard{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NoopRecorder{}
	}
	if opts.Screen.Size.Width == 0 || opts.Screen.Size.Height == 0 {
		opts.Screen = domain.NewDisplay(domain.PebbleRectSize.Width, domain.PebbleRectSize.Height, domain.ShapeRect)
	}
	if opts.Layout == (geometry.Layout{}) {
		opts.Layout = geometry.DefaultLayout().ForShape(opts.Screen.Shape)
	}

	a := &App{
		opts:     opts,
		engine:   animation.NewEngine(opts.Curve),
		timeline: animation.NewTimeline(opts.Duration, opts.Delay, opts.Clock),
		renderer: render.NewRenderer(opts.Screen),
		events:   make(chan event, 16),
		done:     make(chan struct{}),
	}

	var slots face.SlotStore
	if opts.Store != nil {
		slots = opts.Store
	}
	a.settings = face.NewSettings(slots, func() { a.markDirty(metrics.ReasonSettings) })
	return a
}

// Run loads the settings, starts the intro and processes events until ctx
// is done. ticks may be nil when the time never advances.
func (a *App) Run(ctx context.Context, ticks TickSource) error {
	defer close(a.done)

	if err := a.settings.Load(ctx); err != nil {
		slog.Warn("Some settings could not be loaded, using defaults", "error", err)
	}
	a.now = clock.FromTime(a.opts.Clock.Now())
	a.startIntro()

	var tickCh <-chan clock.TimeOfDay
	if ticks != nil {
		tickCh = ticks.Ticks()
	}

	frameTicker := time.NewTicker(animation.FrameInterval)
	defer frameTicker.Stop()

	for {
		if a.dirty && len(a.events) == 0 && len(tickCh) == 0 {
			a.draw(ctx)
		}

		var frames <-chan time.Time
		if a.timeline.Running() {
			frames = frameTicker.C
		}

		select {
		case <-ctx.Done():
			return nil
		case tod := <-tickCh:
			if tod != a.now {
				a.now = tod
				a.markDirty(metrics.ReasonTick)
			}
		case <-frames:
			if a.timeline.Step(a.engine) {
				a.markDirty(metrics.ReasonAnimation)
			}
		case ev := <-a.events:
			a.handle(ctx, ev)
		}
	}
}

func (a *App) handle(ctx context.Context, ev event) {
	switch ev.kind {
	case evSettings:
		res := a.settings.Apply(ctx, ev.update)
		if res.Err != nil {
			slog.Warn("Settings applied but not persisted", "error", res.Err)
		}
		a.opts.Metrics.IncSettings(len(res.Applied), len(res.Rejected))
		ev.result <- res
	case evQuery:
		ev.query <- a.settings.Snapshot()
	case evReplay:
		a.startIntro()
	case evRedraw:
		a.markDirty(metrics.ReasonRedraw)
	}
}

// startIntro restarts the animation, or settles the face when animation
// is disabled.
func (a *App) startIntro() {
	a.engine.Reset()
	if a.opts.Animate {
		a.timeline.Begin()
		a.opts.Metrics.IncAnimationRun()
		slog.Debug("Intro animation started")
	} else {
		a.engine.OnStop()
	}
	a.markDirty(metrics.ReasonAnimation)
}

// markDirty records that the frame must be redrawn. Any number of calls
// before the next draw produce one frame.
func (a *App) markDirty(reason metrics.Reason) {
	if !a.dirty {
		a.reason = reason
	}
	a.dirty = true
}

func (a *App) draw(ctx context.Context) {
	start := time.Now()
	a.dirty = false

	anim := a.engine.State()
	frame, rep := a.renderer.Render(render.Scene{
		Time:    a.now,
		Anim:    anim,
		Colors:  a.settings.Colors(),
		Options: a.settings.Options(),
		Layout:  a.opts.Layout,
	})
	if rep.TickLayout != nil {
		a.opts.Metrics.IncTickLayoutError()
		slog.Debug("Ticks skipped", "count", a.settings.Options().TickCount, "error", rep.TickLayout)
	}

	if err := a.opts.Display.Present(ctx, frame); err != nil {
		a.opts.Metrics.IncPresentError(a.opts.TargetName)
		slog.Warn("Failed to present frame", "target", a.opts.TargetName, "error", err)
	}
	a.opts.Metrics.ObserveRender(a.reason, time.Since(start))

	if !anim.Animating && a.opts.Store != nil {
		a.cacheFrame(ctx, frame)
	}
}

func (a *App) cacheFrame(ctx context.Context, frame *domain.Frame) {
	if err := a.opts.Store.CacheFrame(ctx, storage.NewCachedFrame(frame, a.opts.Clock.Now())); err != nil {
		slog.Warn("Failed to cache frame", "error", err)
	}
}

// send delivers ev to the loop unless ctx ends or the loop has stopped.
func (a *App) send(ctx context.Context, ev event) error {
	select {
	case a.events <- ev:
		return nil
	case <-a.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ApplySettings applies a partial update and waits for the result.
func (a *App) ApplySettings(ctx context.Context, u face.Update) (face.Result, error) {
	ev := event{kind: evSettings, update: u, result: make(chan face.Result, 1)}
	if err := a.send(ctx, ev); err != nil {
		return face.Result{}, err
	}
	select {
	case res := <-ev.result:
		return res, nil
	case <-a.done:
		return face.Result{}, ErrStopped
	case <-ctx.Done():
		return face.Result{}, ctx.Err()
	}
}

// CurrentSettings returns every field of the active settings.
func (a *App) CurrentSettings(ctx context.Context) (face.Update, error) {
	ev := event{kind: evQuery, query: make(chan face.Update, 1)}
	if err := a.send(ctx, ev); err != nil {
		return nil, err
	}
	select {
	case u := <-ev.query:
		return u, nil
	case <-a.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Replay runs the intro animation again.
func (a *App) Replay(ctx context.Context) error {
	return a.send(ctx, event{kind: evReplay})
}

// Redraw requests a frame without any state change.
func (a *App) Redraw(ctx context.Context) error {
	return a.send(ctx, event{kind: evRedraw})
}

// Done is closed when Run returns.
func (a *App) Done() <-chan struct{} { return a.done }
