package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/config"
	"github.com/alinanorakari/supersimple/internal/display"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
	"github.com/alinanorakari/supersimple/internal/render"
)

// frameFlags select what a one-shot frame shows.
type frameFlags struct {
	Time    string `help:"Time of day as H:MM (default: now)"`
	Percent int    `help:"Intro animation progress, 0-100" default:"100"`
	Shape   string `help:"Override display shape (rect or round)"`
}

func (f frameFlags) timeOfDay() (clock.TimeOfDay, error) {
	if f.Time == "" {
		return clock.FromTime(time.Now()), nil
	}
	return clock.Parse(f.Time)
}

func (f frameFlags) animState() animation.State {
	pct := min(max(f.Percent, 0), 100)
	return animation.State{Percent: pct, Animating: pct < 100}
}

// renderFrame draws one frame with the stored settings for screen.
func renderFrame(ctx context.Context, cfg *config.Config, f frameFlags, screen domain.Display) (*domain.Frame, render.Report, error) {
	tod, err := f.timeOfDay()
	if err != nil {
		return nil, render.Report{}, err
	}

	settings := face.NewSettings(nil, nil)
	if store, err := openStore(cfg.Storage.Path); err == nil {
		settings = face.NewSettings(store, nil)
		if err := settings.Load(ctx); err != nil {
			return nil, render.Report{}, fmt.Errorf("load settings: %w", err)
		}
		store.Close()
	}

	if f.Shape != "" {
		cfg.Display.Shape = f.Shape
		screen.Shape = domain.ParseShape(f.Shape)
	}

	frame, rep := render.NewRenderer(screen).Render(render.Scene{
		Time:    tod,
		Anim:    f.animState(),
		Colors:  settings.Colors(),
		Options: settings.Options(),
		Layout:  cfg.HandLayout(),
	})
	return frame, rep, nil
}

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	frameFlags `embed:""`

	Output string `short:"o" help:"Output PNG path (default: display.path from config)" type:"path"`
	Scale  int    `short:"s" help:"Integer upscale factor" default:"0"`
}

func (r *RenderCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	frame, rep, err := renderFrame(context.Background(), cfg, r.frameFlags, cfg.Screen())
	if err != nil {
		return err
	}
	if rep.TickLayout != nil {
		fmt.Printf("Warning: ticks not drawn: %v\n", rep.TickLayout)
	}

	out := r.Output
	if out == "" {
		out = cfg.Display.Path
	}
	scale := r.Scale
	if scale == 0 {
		scale = cfg.Display.Scale
	}
	if err := display.NewPNG(out, scale).Present(context.Background(), frame); err != nil {
		return err
	}
	fmt.Printf("Wrote %dx%d frame to %s\n", frame.Width*max(scale, 1), frame.Height*max(scale, 1), out)
	return nil
}
