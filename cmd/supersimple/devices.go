package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alinanorakari/supersimple/internal/pixoo"
	"github.com/alinanorakari/supersimple/internal/storage"
)

// DevicesCmd groups the device subcommands.
type DevicesCmd struct {
	Scan   DevicesScanCmd   `cmd:"" help:"Scan the local network for Pixoo panels"`
	List   DevicesListCmd   `cmd:"" help:"List panels found by earlier scans"`
	Forget DevicesForgetCmd `cmd:"" help:"Remove a stored panel"`
}

// DevicesScanCmd implements 'devices scan'.
type DevicesScanCmd struct {
	Subnet  string        `help:"Subnet to scan, e.g. 192.168.1 (default: local network)"`
	Timeout time.Duration `help:"Overall scan timeout" default:"30s"`
}

func (d *DevicesScanCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Scanning for Pixoo devices on local network...")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	progress := func(current, total int) {
		pct := current * 100 / total
		bar := strings.Repeat("█", pct/5) + strings.Repeat("░", 20-pct/5)
		fmt.Printf("\r  [%s] %d%% (%d/%d)", bar, pct, current, total)
	}

	scanner := pixoo.NewScanner()
	var devices []pixoo.DiscoveredDevice
	if d.Subnet != "" {
		devices, err = scanner.Scan(ctx, d.Subnet, progress)
	} else {
		devices, err = scanner.ScanLocal(ctx, progress)
	}
	fmt.Println()
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	fmt.Println()
	if len(devices) == 0 {
		fmt.Println("No Pixoo devices found.")
		fmt.Println()
		fmt.Println("Make sure your Pixoo is:")
		fmt.Println("  1. Powered on")
		fmt.Println("  2. Connected to the same WiFi network")
		fmt.Println("  3. Not in sleep mode")
		return nil
	}

	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for i, device := range devices {
		fmt.Printf("  %d. %s - %s\n", i+1, device.Name, device.IP)
		if err := store.SaveDevice(ctx, storage.NewDevice(device.IP, device.IP, device.Name, "pixoo64")); err != nil {
			fmt.Printf("     (not saved: %v)\n", err)
		}
	}
	fmt.Println()
	fmt.Println("To show the watch face:")
	fmt.Printf("  supersimple run --target pixoo   # with SUPERSIMPLE_PIXOO_IP=%s\n", devices[0].IP)
	return nil
}

// DevicesListCmd implements 'devices list'.
type DevicesListCmd struct{}

func (d *DevicesListCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	devices, err := store.GetDevices(context.Background())
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("No devices stored. Run 'supersimple devices scan'.")
		return nil
	}
	for _, device := range devices {
		fmt.Printf("  %-16s %-8s %s (last seen %s)\n", device.IP, device.Type, device.Name, device.LastSeen.Format("2006-01-02 15:04"))
	}
	return nil
}

// DevicesForgetCmd implements 'devices forget'.
type DevicesForgetCmd struct {
	ID string `arg:"" help:"Device ID (the IP it was found at)"`
}

func (d *DevicesForgetCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	device, err := store.GetDevice(ctx, d.ID)
	if err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("no stored device %q", d.ID)
		}
		return err
	}
	if err := store.DeleteDevice(ctx, device.ID); err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	fmt.Printf("Forgot %s (%s)\n", device.Name, device.IP)
	return nil
}
