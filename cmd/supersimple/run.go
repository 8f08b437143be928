package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/config"
	"github.com/alinanorakari/supersimple/internal/display"
	"github.com/alinanorakari/supersimple/internal/inbox"
	"github.com/alinanorakari/supersimple/internal/metrics"
	"github.com/alinanorakari/supersimple/internal/watchface"
)

// RunCmd implements the 'run' command.
type RunCmd struct {
	Target      string `short:"t" help:"Display target: png, pixoo, framebuffer, terminal or none. Overrides the config."`
	Listen      string `short:"l" help:"Settings server address, e.g. :8080. Overrides the config."`
	NoAnimation bool   `name:"no-animation" help:"Skip the intro animation"`
	LogFile     string `name:"log-file" help:"Redirect stdout and stderr to this file" type:"path"`
}

func (r *RunCmd) Run(root *CLI) error {
	if err := redirectStdIO(r.LogFile); err != nil {
		return fmt.Errorf("redirect output: %w", err)
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if r.Target != "" {
		cfg.Display.Target = r.Target
	}
	if r.Listen != "" {
		cfg.Inbox.Listen = r.Listen
	}
	if r.NoAnimation {
		cfg.Animation.Disabled = true
	}
	if display.Kind(cfg.Display.Target) == display.KindTerminal && r.LogFile == "" {
		// The terminal target owns the screen.
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	target, err := display.Open(displayOptions(cfg, stop))
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer target.Close()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var metricsHandler http.Handler
	if cfg.Inbox.Metrics {
		reg := metrics.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		metricsHandler = metrics.HTTPHandler(reg)
	}

	app := watchface.New(watchface.Options{
		Display:    target,
		TargetName: cfg.Display.Target,
		Screen:     cfg.Screen(),
		Layout:     cfg.HandLayout(),
		Animate:    !cfg.Animation.Disabled,
		Curve:      cfg.Curve(),
		Duration:   cfg.Animation.Duration,
		Delay:      cfg.Animation.Delay,
		Store:      store,
		Metrics:    recorder,
	})

	granularity := clock.Minute
	if cfg.Debug {
		granularity = clock.Second
	}
	ticker, err := clock.NewTicker(granularity, clock.System{})
	if err != nil {
		return err
	}
	if err := ticker.Start(); err != nil {
		return err
	}
	defer ticker.Stop()

	if cfg.Inbox.Listen != "" {
		srv := inbox.NewServer(cfg.Inbox.Listen, app)
		srv.Metrics = metricsHandler
		if err := srv.Start(ctx); err != nil {
			return err
		}
		defer srv.Stop()
		if display.Kind(cfg.Display.Target) != display.KindTerminal {
			printBanner(os.Stdout, settingsURL(cfg.Inbox.PublicURL, srv.ListenAddr()))
		}
	}

	if cfg.Inbox.SettingsFile != "" {
		watcher, err := inbox.NewWatcher(cfg.Inbox.SettingsFile, app)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	slog.Info("Watch face running",
		"target", cfg.Display.Target,
		"size", fmt.Sprintf("%dx%d", cfg.Display.Width, cfg.Display.Height),
		"shape", cfg.Display.Shape,
		"granularity", granularity.String())

	err = app.Run(ctx, ticker)
	slog.Info("Stopping watch face")
	return err
}

func displayOptions(cfg *config.Config, onQuit func()) display.Options {
	return display.Options{
		Kind:      display.Kind(cfg.Display.Target),
		Path:      cfg.Display.Path,
		Scale:     cfg.Display.Scale,
		PixooIP:   cfg.Display.PixooIP,
		PixooPort: cfg.Display.PixooPort,
		Device:    cfg.Display.Device,
		OnQuit:    onQuit,
	}
}
