package pixoo

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"
)

// DiscoveredDevice represents a found Pixoo device.
type DiscoveredDevice struct {
	Name string
	IP   string
}

// ProgressFunc is called during scanning to report progress.
type ProgressFunc func(current, total int)

// Scanner probes a /24 subnet for panels.
type Scanner struct {
	Port        int
	Timeout     time.Duration
	Concurrency int
}

// NewScanner returns a scanner with defaults suited to a home network.
func NewScanner() *Scanner {
	return &Scanner{Port: DefaultPort, Timeout: 500 * time.Millisecond, Concurrency: 50}
}

// ScanLocal scans the subnet of the first non-loopback IPv4 interface.
func (s *Scanner) ScanLocal(ctx context.Context, onProgress ProgressFunc) ([]DiscoveredDevice, error) {
	subnet, err := localSubnet()
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, subnet, onProgress)
}

// Scan probes hosts 1..254 of subnet ("192.168.1") and returns the
// responding panels ordered by address.
func (s *Scanner) Scan(ctx context.Context, subnet string, onProgress ProgressFunc) ([]DiscoveredDevice, error) {
	const total = 254

	var (
		devices []DiscoveredDevice
		mu      sync.Mutex
		wg      sync.WaitGroup
		done    int
	)
	sem := make(chan struct{}, max(s.Concurrency, 1))

	for i := 1; i <= total; i++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case sem <- struct{}{}:
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(ip string) {
			defer wg.Done()
			defer func() { <-sem }()

			found := s.probe(ctx, ip)

			mu.Lock()
			defer mu.Unlock()
			if found != nil {
				devices = append(devices, *found)
			}
			done++
			if onProgress != nil {
				onProgress(done, total)
			}
		}(fmt.Sprintf("%s.%d", subnet, i))
	}

	wg.Wait()
	return sortDevices(devices), ctx.Err()
}

// probe checks if an IP hosts a Pixoo device.
func (s *Scanner) probe(ctx context.Context, ip string) *DiscoveredDevice {
	client := NewClientWithPort(ip, s.Port)
	client.HTTPClient.Timeout = s.Timeout

	probeCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	if _, err := client.sendCommand(probeCtx, PixooCommand{Command: CommandGetIndex}); err != nil {
		return nil
	}
	return &DiscoveredDevice{Name: "Pixoo", IP: ip}
}

func sortDevices(devices []DiscoveredDevice) []DiscoveredDevice {
	sort.Slice(devices, func(i, j int) bool {
		a, b := net.ParseIP(devices[i].IP).To4(), net.ParseIP(devices[j].IP).To4()
		if a == nil || b == nil {
			return devices[i].IP < devices[j].IP
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return devices
}

// localSubnet returns the local subnet (e.g., "192.168.1").
func localSubnet() (string, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to get network interfaces: %w", err)
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}
			return fmt.Sprintf("%d.%d.%d", ip[0], ip[1], ip[2]), nil
		}
	}

	return "", fmt.Errorf("could not determine local network")
}
