package pixoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// DefaultPort is the default Pixoo HTTP API port.
const DefaultPort = 80

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 5 * time.Second

// MaxPicID is where the client resets the panel's gif counter. The panel
// stalls when the counter grows unbounded.
const MaxPicID = 1000

// Client is an HTTP client for communicating with Pixoo devices.
type Client struct {
	IP         string
	Port       int
	HTTPClient *http.Client
	testURL    string // For testing with httptest

	mu    sync.Mutex
	picID int
}

// NewClient creates a new Pixoo client with default settings.
func NewClient(ip string) *Client {
	return NewClientWithPort(ip, DefaultPort)
}

// NewClientWithPort creates a new Pixoo client with a custom port.
func NewClientWithPort(ip string, port int) *Client {
	return &Client{
		IP:   ip,
		Port: port,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Endpoint returns the full API endpoint URL.
func (c *Client) Endpoint() string {
	if c.testURL != "" {
		return c.testURL
	}
	return fmt.Sprintf("http://%s:%d/post", c.IP, c.Port)
}

// sendCommand sends a command to the Pixoo device and checks the
// error_code of the reply.
func (c *Client) sendCommand(ctx context.Context, command any) ([]byte, error) {
	data, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var r Response
	if len(body) > 0 && json.Unmarshal(body, &r) == nil && r.ErrorCode != 0 {
		return nil, fmt.Errorf("device returned error_code %d", r.ErrorCode)
	}

	return body, nil
}

// ResetGifID clears the panel's gif counter and restarts numbering at 1.
func (c *Client) ResetGifID(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resetLocked(ctx)
}

func (c *Client) resetLocked(ctx context.Context) error {
	if _, err := c.sendCommand(ctx, CreateResetGifIDCommand()); err != nil {
		return fmt.Errorf("failed to reset gif id: %w", err)
	}
	c.picID = 0
	return nil
}

// Present shows a frame on the panel. Each call uses the next PicID and
// resets the counter when it reaches MaxPicID or on first use.
func (c *Client) Present(ctx context.Context, frame *domain.Frame) error {
	if err := ValidateFrame(frame); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.picID == 0 || c.picID >= MaxPicID {
		if err := c.resetLocked(ctx); err != nil {
			return err
		}
	}
	c.picID++

	cmd := CreatePixooFrameCommand(frame, &FrameCommandOptions{PicID: c.picID})
	if _, err := c.sendCommand(ctx, cmd); err != nil {
		return fmt.Errorf("failed to send frame: %w", err)
	}
	return nil
}

// SendFrame sends a single frame with PicID 1, without counter tracking.
func (c *Client) SendFrame(ctx context.Context, frame *domain.Frame) error {
	cmd := CreatePixooFrameCommand(frame, nil)
	_, err := c.sendCommand(ctx, cmd)
	return err
}

// GetDeviceTime queries the device time.
func (c *Client) GetDeviceTime(ctx context.Context) ([]byte, error) {
	return c.sendCommand(ctx, CreateDeviceTimeCommand())
}

// SetBrightness sets the display brightness (0-100).
func (c *Client) SetBrightness(ctx context.Context, brightness int) error {
	_, err := c.sendCommand(ctx, CreateBrightnessCommand(brightness))
	return err
}

// IsReachable checks if the device is reachable.
func (c *Client) IsReachable(ctx context.Context) bool {
	_, err := c.GetDeviceTime(ctx)
	return err == nil
}
