package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alinanorakari/supersimple/internal/display"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/pixoo"
)

// SendCmd implements the 'send' command.
type SendCmd struct {
	frameFlags `embed:""`

	IP         string `arg:"" optional:"" help:"Panel IP address (default: display.pixoo_ip from config)"`
	Brightness int    `help:"Set panel brightness 0-100 before sending" default:"-1"`
	ShowTime   bool   `name:"device-time" help:"Print the panel's clock reading after sending"`
}

func (s *SendCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	ip := s.IP
	if ip == "" {
		ip = cfg.Display.PixooIP
	}
	if ip == "" {
		ip = storedPanel(cfg.Storage.Path)
	}
	if ip == "" {
		return fmt.Errorf("no panel IP given; pass one or run 'supersimple devices scan'")
	}

	shape := domain.ParseShape(cfg.Display.Shape)
	if s.Shape != "" {
		shape = domain.ParseShape(s.Shape)
	}
	screen := domain.NewDisplay(domain.Pixoo64Size, domain.Pixoo64Size, shape)
	frame, _, err := renderFrame(context.Background(), cfg, s.frameFlags, screen)
	if err != nil {
		return err
	}

	fmt.Printf("Sending frame to Pixoo at %s...\n", ip)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	port := cfg.Display.PixooPort
	if port == 0 {
		port = pixoo.DefaultPort
	}
	client := pixoo.NewClientWithPort(ip, port)
	if !client.IsReachable(ctx) {
		return fmt.Errorf("cannot reach Pixoo at %s; check the IP and that the panel is powered on", ip)
	}
	if s.Brightness >= 0 {
		if err := client.SetBrightness(ctx, s.Brightness); err != nil {
			return fmt.Errorf("set brightness: %w", err)
		}
	}
	if err := display.NewPixooWithClient(client).Present(ctx, frame); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}

	fmt.Println("Frame sent successfully!")
	if s.ShowTime {
		body, err := client.GetDeviceTime(ctx)
		if err != nil {
			return fmt.Errorf("device time: %w", err)
		}
		fmt.Printf("Panel time: %s\n", body)
	}
	return nil
}

// storedPanel returns the IP of the most recently seen scanned panel.
func storedPanel(path string) string {
	store, err := openStore(path)
	if err != nil {
		return ""
	}
	defer store.Close()

	devices, err := store.GetDevices(context.Background())
	if err != nil {
		return ""
	}
	var ip string
	var seen time.Time
	for _, d := range devices {
		if d.LastSeen.After(seen) {
			ip, seen = d.IP, d.LastSeen
		}
	}
	return ip
}
