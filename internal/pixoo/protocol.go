// Package pixoo implements the Divoom Pixoo LED panel protocol.
//
// The panel has a local HTTP API at port 80.
// Endpoint: POST http://<ip>/post
//
// Frame format:
// - square, 16, 32 or 64 pixels per side
// - RGB (3 bytes per pixel)
// - Base64 encoded
// - A 64x64 frame is 12,288 bytes raw, ~16KB base64
//
// The panel only shows a frame whose PicID is greater than the last one it
// accepted, so callers reset the counter before an animation sequence.
package pixoo

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// Command names understood by the panel.
const (
	CommandSendGif       = "Draw/SendHttpGif"
	CommandResetGifID    = "Draw/ResetHttpGifId"
	CommandGetDeviceTime = "Device/GetDeviceTime"
	CommandBrightness    = "Channel/SetBrightness"
	CommandGetIndex      = "Channel/GetIndex"
)

// ErrUnsupportedSize is returned for frames the panel cannot show.
var ErrUnsupportedSize = errors.New("pixoo: unsupported frame size")

// PixooCommand represents a Pixoo API command without arguments.
type PixooCommand struct {
	Command string `json:"Command"`
}

// FrameCommand represents a Draw/SendHttpGif command.
type FrameCommand struct {
	Command   string `json:"Command"`
	PicNum    int    `json:"PicNum"`
	PicWidth  int    `json:"PicWidth"`
	PicOffset int    `json:"PicOffset"`
	PicID     int    `json:"PicID"`
	PicSpeed  int    `json:"PicSpeed"`
	PicData   string `json:"PicData"`
}

// BrightnessCommand represents a Channel/SetBrightness command.
type BrightnessCommand struct {
	Command    string `json:"Command"`
	Brightness int    `json:"Brightness"`
}

// Response is the envelope every command answers with.
type Response struct {
	ErrorCode int `json:"error_code"`
}

// FrameCommandOptions configures frame command parameters.
type FrameCommandOptions struct {
	PicID int
	Speed int
}

// ValidateFrame checks that the frame is square and a size the panel
// supports.
func ValidateFrame(frame *domain.Frame) error {
	if frame.Width != frame.Height {
		return fmt.Errorf("%w: %dx%d is not square", ErrUnsupportedSize, frame.Width, frame.Height)
	}
	switch frame.Width {
	case 16, 32, domain.Pixoo64Size:
		return nil
	default:
		return fmt.Errorf("%w: %dx%d", ErrUnsupportedSize, frame.Width, frame.Height)
	}
}

// EncodeFrameToBase64 encodes frame pixels to base64 for the Pixoo API.
func EncodeFrameToBase64(frame *domain.Frame) string {
	return base64.StdEncoding.EncodeToString(frame.Pixels)
}

// DecodeBase64ToFrame decodes base64 to a frame.
func DecodeBase64ToFrame(encoded string, width, height int) (*domain.Frame, error) {
	pixels, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	expectedSize := width * height * domain.BytesPerPixel
	if len(pixels) != expectedSize {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", expectedSize, len(pixels))
	}

	return &domain.Frame{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// CreatePixooFrameCommand creates a Draw/SendHttpGif command.
func CreatePixooFrameCommand(frame *domain.Frame, opts *FrameCommandOptions) FrameCommand {
	picID := 1
	speed := 1000

	if opts != nil {
		if opts.PicID > 0 {
			picID = opts.PicID
		}
		if opts.Speed > 0 {
			speed = opts.Speed
		}
	}

	return FrameCommand{
		Command:   CommandSendGif,
		PicNum:    1,
		PicWidth:  frame.Width,
		PicOffset: 0,
		PicID:     picID,
		PicSpeed:  speed,
		PicData:   EncodeFrameToBase64(frame),
	}
}

// CreateResetGifIDCommand creates a Draw/ResetHttpGifId command.
func CreateResetGifIDCommand() PixooCommand {
	return PixooCommand{Command: CommandResetGifID}
}

// CreateDeviceTimeCommand creates a Device/GetDeviceTime command.
func CreateDeviceTimeCommand() PixooCommand {
	return PixooCommand{Command: CommandGetDeviceTime}
}

// CreateBrightnessCommand creates a Channel/SetBrightness command.
func CreateBrightnessCommand(brightness int) BrightnessCommand {
	return BrightnessCommand{
		Command:    CommandBrightness,
		Brightness: min(max(brightness, 0), 100),
	}
}
