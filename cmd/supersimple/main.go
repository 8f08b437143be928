// Package main is the entry point for the supersimple watch face.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/alinanorakari/supersimple/internal/config"
	"github.com/alinanorakari/supersimple/internal/storage/sqlite"
)

var version = "0.1.0-dev"

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Debug   bool             `help:"Tick every second instead of every minute"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run      RunCmd      `cmd:"" default:"withargs" help:"Run the watch face"`
	Render   RenderCmd   `cmd:"" help:"Render one frame to a PNG file"`
	Preview  PreviewCmd  `cmd:"" help:"Print a text preview of a frame"`
	Send     SendCmd     `cmd:"" help:"Send one frame to a Pixoo panel"`
	Settings SettingsCmd `cmd:"" help:"Show or change the stored face settings"`
	Devices  DevicesCmd  `cmd:"" help:"Find and list Pixoo panels"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if c.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func openStore(path string) (*sqlite.Store, error) {
	if path == ":memory:" {
		return sqlite.NewMemoryStore()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	store, err := sqlite.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return store, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("supersimple"),
		kong.Description("Super Simple analog watch face"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
