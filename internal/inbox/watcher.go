package inbox

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 250 * time.Millisecond

// Watcher applies a JSON settings file whenever it changes.
type Watcher struct {
	path     string
	sink     Sink
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	cancel   context.CancelFunc
	stopChan chan struct{}
	done     chan struct{}
	started  bool
	stopped  bool
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, sink Sink) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		path:     absPath,
		sink:     sink,
		watcher:  watcher,
		debounce: DefaultDebounce,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start watches the file's directory and returns. The loop applies the
// file once if it exists, then again after every change, so the sink may
// start serving after Start returns.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch settings directory %s: %w", dir, err)
	}
	slog.Info("Watching settings file", "path", w.path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return errors.New("settings watcher already stopped")
	}
	w.started = true
	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
	return nil
}

// Stop ends watching and waits for the loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	if w.cancel != nil {
		w.cancel()
	}
	close(w.stopChan)
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	if err := w.apply(ctx); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Initial settings file not applied", "path", w.path, "error", err)
	}

	name := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				slog.Debug("Settings file changed", "op", event.Op.String())
				timer.Reset(w.debounce)
			}
		case <-timer.C:
			if err := w.apply(ctx); err != nil {
				slog.Warn("Settings file not applied", "path", w.path, "error", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Settings watcher error", "error", err)
		}
	}
}

func (w *Watcher) apply(ctx context.Context) error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}
	d, err := Decode(data)
	if err != nil {
		return err
	}
	if len(d.Update) == 0 {
		return nil
	}

	res, err := w.sink.ApplySettings(ctx, d.Update)
	if err != nil {
		return err
	}
	slog.Info("Settings file applied",
		"applied", KeyNames(res.Applied), "rejected", KeyNames(res.Rejected), "ignored", d.Ignored)
	return res.Err
}
