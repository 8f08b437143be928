package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alinanorakari/supersimple/internal/display"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/storage"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	frameFlags `embed:""`

	Cols   int  `help:"Preview width in characters (default: frame width)"`
	Cached bool `help:"Show the last frame the running watch face presented"`
}

func (p *PreviewCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var frame *domain.Frame
	if p.Cached {
		frame, err = cachedFrame(ctx, cfg.Storage.Path)
	} else {
		frame, _, err = renderFrame(ctx, cfg, p.frameFlags, cfg.Screen())
	}
	if err != nil {
		return err
	}

	fmt.Printf("%dx%d Frame Preview:\n\n", frame.Width, frame.Height)
	if err := display.WriteASCII(os.Stdout, frame, p.Cols); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Legend: " + display.Legend)
	return nil
}

func cachedFrame(ctx context.Context, path string) (*domain.Frame, error) {
	store, err := openStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	cached, err := store.GetCachedFrame(ctx)
	if storage.IsNotFound(err) {
		return nil, fmt.Errorf("no cached frame in %s; is the watch face running?", path)
	}
	if err != nil {
		return nil, err
	}
	fmt.Printf("Cached at %s\n", cached.GeneratedAt.Format("2006-01-02 15:04:05"))
	return cached.Frame()
}
