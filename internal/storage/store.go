// Package storage provides storage abstractions for the watch face.
package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// Store is the interface for persistent storage.
type Store interface {
	// Settings slots
	ReadSlot(ctx context.Context, slot int) (int32, error)
	WriteSlot(ctx context.Context, slot int, value int32) error
	DeleteSlot(ctx context.Context, slot int) error
	Slots(ctx context.Context) (map[int]int32, error)

	// Frame cache
	CacheFrame(ctx context.Context, frame *CachedFrame) error
	GetCachedFrame(ctx context.Context) (*CachedFrame, error)

	// Device management
	SaveDevice(ctx context.Context, device *Device) error
	GetDevice(ctx context.Context, id string) (*Device, error)
	GetDevices(ctx context.Context) ([]*Device, error)
	DeleteDevice(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

// CachedFrame represents the last frame presented to a display.
type CachedFrame struct {
	Width       int
	Height      int
	FrameData   []byte
	GeneratedAt time.Time
}

// NewCachedFrame copies frame into a cache record stamped with at.
func NewCachedFrame(frame *domain.Frame, at time.Time) *CachedFrame {
	return &CachedFrame{
		Width:       frame.Width,
		Height:      frame.Height,
		FrameData:   append([]byte(nil), frame.Pixels...),
		GeneratedAt: at,
	}
}

// Frame returns the cached pixels as a frame.
func (c *CachedFrame) Frame() (*domain.Frame, error) {
	if c.Width <= 0 || c.Height <= 0 || len(c.FrameData) != c.Width*c.Height*domain.BytesPerPixel {
		return nil, fmt.Errorf("cached frame: %d bytes do not fit %dx%d", len(c.FrameData), c.Width, c.Height)
	}
	return &domain.Frame{Width: c.Width, Height: c.Height, Pixels: c.FrameData}, nil
}

// Device represents a stored Pixoo device.
type Device struct {
	ID        string
	IP        string
	Name      string
	Type      string
	CreatedAt time.Time
	LastSeen  time.Time
}

// NewDevice creates a new device record.
func NewDevice(id, ip, name, deviceType string) *Device {
	now := time.Now()
	return &Device{
		ID:        id,
		IP:        ip,
		Name:      name,
		Type:      deviceType,
		CreatedAt: now,
		LastSeen:  now,
	}
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// SlotNotFound builds the not-found error for a settings slot.
func SlotNotFound(slot int) ErrNotFound {
	return ErrNotFound{Resource: "slot", ID: strconv.Itoa(slot)}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}
