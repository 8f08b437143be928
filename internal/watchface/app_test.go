package watchface

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
	"github.com/alinanorakari/supersimple/internal/metrics"
	"github.com/alinanorakari/supersimple/internal/render"
	"github.com/alinanorakari/supersimple/internal/storage/sqlite"
)

var screen = domain.NewDisplay(144, 168, domain.ShapeRect)

type recordingTarget struct {
	mu     sync.Mutex
	frames []*domain.Frame
	err    error
}

func (r *recordingTarget) Present(_ context.Context, f *domain.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f.Clone())
	return r.err
}

func (r *recordingTarget) Close() error { return nil }

func (r *recordingTarget) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *recordingTarget) last() *domain.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type chanTicks chan clock.TimeOfDay

func (c chanTicks) Ticks() <-chan clock.TimeOfDay { return c }

type countingRecorder struct {
	metrics.NoopRecorder
	mu            sync.Mutex
	presentErrors int
	animations    int
}

func (c *countingRecorder) IncPresentError(string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presentErrors++
}

func (c *countingRecorder) IncAnimationRun() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animations++
}

func (c *countingRecorder) snapshot() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.presentErrors, c.animations
}

func threeOClock() time.Time {
	return time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
}

func expected(t clock.TimeOfDay, anim animation.State, colors face.ColorSet, opts face.OptionSet) *domain.Frame {
	return render.RenderFrame(screen, render.Scene{Time: t, Anim: anim, Colors: colors, Options: opts})
}

func start(t *testing.T, opts Options, ticks TickSource) (*App, context.CancelFunc) {
	t.Helper()
	app := New(opts)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = app.Run(ctx, ticks) }()
	t.Cleanup(func() {
		cancel()
		<-app.Done()
	})
	return app, cancel
}

func framesEqual(want *domain.Frame) func(*recordingTarget) bool {
	return func(r *recordingTarget) bool {
		got := r.last()
		return got != nil && assert.ObjectsAreEqual(want.Pixels, got.Pixels)
	}
}

func TestAppDrawsSettledFaceWithoutAnimation(t *testing.T) {
	target := &recordingTarget{}
	start(t, Options{Display: target, Screen: screen, Clock: clock.Fixed(threeOClock())}, nil)

	want := expected(clock.TimeOfDay{Hour: 3}, animation.Settled, face.DefaultColors(), face.DefaultOptions())
	assert.Eventually(t, func() bool { return framesEqual(want)(target) }, 2*time.Second, 5*time.Millisecond)
}

func TestAppTickRedraws(t *testing.T) {
	target := &recordingTarget{}
	ticks := make(chanTicks, 1)
	start(t, Options{Display: target, Screen: screen, Clock: clock.Fixed(threeOClock())}, ticks)

	require.Eventually(t, func() bool { return target.count() == 1 }, 2*time.Second, 5*time.Millisecond)

	ticks <- clock.TimeOfDay{Hour: 3}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, target.count(), "unchanged time must not redraw")

	ticks <- clock.TimeOfDay{Hour: 9, Minute: 30}
	want := expected(clock.TimeOfDay{Hour: 9, Minute: 30}, animation.Settled, face.DefaultColors(), face.DefaultOptions())
	assert.Eventually(t, func() bool { return framesEqual(want)(target) }, 2*time.Second, 5*time.Millisecond)
}

func TestAppApplySettings(t *testing.T) {
	target := &recordingTarget{}
	app, _ := start(t, Options{Display: target, Screen: screen, Clock: clock.Fixed(threeOClock())}, nil)

	res, err := app.ApplySettings(context.Background(), face.Update{
		face.KeyBackground: 0xFF0000,
		face.KeyTickCount:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, []face.Key{face.KeyBackground}, res.Applied)
	assert.Equal(t, []face.Key{face.KeyTickCount}, res.Rejected)

	assert.Eventually(t, func() bool {
		f := target.last()
		return f != nil && *f.GetPixel(0, 0) == domain.NewRGB(255, 0, 0)
	}, 2*time.Second, 5*time.Millisecond)

	u, err := app.CurrentSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0xFF0000), u[face.KeyBackground])
	assert.Equal(t, int32(0), u[face.KeyTickCount])
}

func TestAppRejectedUpdateDoesNotRedraw(t *testing.T) {
	target := &recordingTarget{}
	app, _ := start(t, Options{Display: target, Screen: screen, Clock: clock.Fixed(threeOClock())}, nil)
	require.Eventually(t, func() bool { return target.count() == 1 }, 2*time.Second, 5*time.Millisecond)

	res, err := app.ApplySettings(context.Background(), face.Update{face.KeyTickCount: -1})
	require.NoError(t, err)
	assert.False(t, res.Changed())

	_, err = app.CurrentSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, target.count())
}

func TestAppIntroAnimation(t *testing.T) {
	target := &recordingTarget{}
	clk := &fakeClock{now: threeOClock()}
	rec := &countingRecorder{}
	start(t, Options{
		Display:  target,
		Screen:   screen,
		Clock:    clk,
		Metrics:  rec,
		Animate:  true,
		Duration: animation.DefaultDuration,
		Delay:    animation.DefaultDelay,
	}, nil)

	launch := expected(clock.TimeOfDay{Hour: 3}, animation.State{}, face.DefaultColors(), face.DefaultOptions())
	require.Eventually(t, func() bool { return framesEqual(launch)(target) }, 2*time.Second, 5*time.Millisecond)

	clk.Advance(300 * time.Millisecond)
	require.Eventually(t, func() bool { return target.count() >= 2 }, 2*time.Second, 5*time.Millisecond)

	clk.Advance(time.Second)
	settled := expected(clock.TimeOfDay{Hour: 3}, animation.Settled, face.DefaultColors(), face.DefaultOptions())
	assert.Eventually(t, func() bool { return framesEqual(settled)(target) }, 2*time.Second, 5*time.Millisecond)

	_, runs := rec.snapshot()
	assert.Equal(t, 1, runs)
}

func TestAppReplay(t *testing.T) {
	target := &recordingTarget{}
	clk := &fakeClock{now: threeOClock()}
	app, _ := start(t, Options{Display: target, Screen: screen, Clock: clk, Animate: true, Duration: 100 * time.Millisecond}, nil)
	require.Eventually(t, func() bool { return target.count() >= 1 }, 2*time.Second, 5*time.Millisecond)

	clk.Advance(time.Second)
	settled := expected(clock.TimeOfDay{Hour: 3}, animation.Settled, face.DefaultColors(), face.DefaultOptions())
	require.Eventually(t, func() bool { return framesEqual(settled)(target) }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, app.Replay(context.Background()))
	launch := expected(clock.TimeOfDay{Hour: 3}, animation.State{}, face.DefaultColors(), face.DefaultOptions())
	assert.Eventually(t, func() bool { return framesEqual(launch)(target) }, 2*time.Second, 5*time.Millisecond)
}

func TestAppPersistsSettingsAndCachesFrame(t *testing.T) {
	store, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	defer store.Close()

	target := &recordingTarget{}
	app := New(Options{Display: target, Screen: screen, Clock: clock.Fixed(threeOClock()), Store: store})
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = app.Run(ctx, nil) }()

	_, err = app.ApplySettings(ctx, face.Update{face.KeyShadows: 1, face.KeyTickCount: 12})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		cached, err := store.GetCachedFrame(context.Background())
		last := target.last()
		return err == nil && last != nil && assert.ObjectsAreEqual(last.Pixels, cached.FrameData)
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-app.Done()

	restarted := New(Options{Screen: screen, Clock: clock.Fixed(threeOClock()), Store: store})
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	go func() { _ = restarted.Run(ctx2, nil) }()

	u, err := restarted.CurrentSettings(ctx2)
	require.NoError(t, err)
	assert.Equal(t, int32(1), u[face.KeyShadows])
	assert.Equal(t, int32(12), u[face.KeyTickCount])
}

func TestAppCountsPresentErrors(t *testing.T) {
	target := &recordingTarget{err: errors.New("panel offline")}
	rec := &countingRecorder{}
	start(t, Options{Display: target, Screen: screen, Clock: clock.Fixed(threeOClock()), Metrics: rec, TargetName: "pixoo"}, nil)

	assert.Eventually(t, func() bool {
		errs, _ := rec.snapshot()
		return errs == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestAppStopped(t *testing.T) {
	app := New(Options{Screen: screen, Clock: clock.Fixed(threeOClock())})
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = app.Run(ctx, nil) }()
	cancel()
	<-app.Done()

	_, err := app.ApplySettings(context.Background(), face.Update{face.KeyShadows: 1})
	assert.ErrorIs(t, err, ErrStopped)
	_, err = app.CurrentSettings(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
}

func TestAppRequestCanceled(t *testing.T) {
	app := New(Options{Screen: screen})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < cap(app.events); i++ {
		app.events <- event{kind: evRedraw}
	}
	assert.ErrorIs(t, app.Redraw(ctx), context.Canceled)
}
