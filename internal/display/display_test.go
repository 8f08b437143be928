package display

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/pixoo"
)

var (
	red   = domain.NewRGB(255, 0, 0)
	white = domain.NewRGB(255, 255, 255)
)

func TestFit(t *testing.T) {
	r := fit(image.Rect(0, 0, 144, 168), image.Rect(0, 0, 64, 64))
	assert.Equal(t, image.Rect(5, 0, 59, 64), r)

	r = fit(image.Rect(0, 0, 2, 2), image.Rect(0, 0, 8, 4))
	assert.Equal(t, image.Rect(2, 0, 6, 4), r)

	assert.True(t, fit(image.Rect(0, 0, 0, 0), image.Rect(0, 0, 8, 4)).Empty())
}

func TestOpen(t *testing.T) {
	target, err := Open(Options{Kind: KindNone})
	require.NoError(t, err)
	assert.IsType(t, Discard{}, target)

	target, err = Open(Options{Kind: "PNG", Path: "out.png", Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, &PNG{Path: "out.png", Scale: 2}, target)

	_, err = Open(Options{Kind: KindPixoo})
	assert.Error(t, err)

	_, err = Open(Options{Kind: "hologram"})
	assert.ErrorContains(t, err, "hologram")
}

func TestPNGPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	frame := domain.NewFrame(2, 2)
	frame.SetPixel(1, 0, red)

	target := NewPNG(path, 3)
	require.NoError(t, target.Present(context.Background(), frame))
	require.NoError(t, target.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())

	r, g, b, _ := img.At(4, 1).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0, 0}, []uint32{r, g, b})
	r, g, b, _ = img.At(1, 4).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}

func TestPNGPresentWithoutPath(t *testing.T) {
	assert.Error(t, NewPNG("", 1).Present(context.Background(), domain.NewFrame(1, 1)))
}

func TestNewPNGClampsScale(t *testing.T) {
	assert.Equal(t, 1, NewPNG("x.png", 0).Scale)
}

func TestWriteASCII(t *testing.T) {
	frame := domain.NewFrame(4, 8)
	frame.FillRect(0, 0, 4, 4, white)

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, frame, 0))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"┌────┐",
		"│████│",
		"│████│",
		"│    │",
		"│    │",
		"└────┘",
	}, lines)
}

func TestShade(t *testing.T) {
	assert.Equal(t, "█", shade(white))
	assert.Equal(t, "░", shade(red))
	assert.Equal(t, " ", shade(domain.RGB{}))
	assert.Equal(t, "▒", shade(domain.NewRGB(120, 120, 120)))
}

func TestBlit(t *testing.T) {
	frame := domain.NewFrame(2, 2)
	frame.SetPixel(0, 0, red)
	frame.SetPixel(1, 1, white)

	dst := image.NewRGBA(image.Rect(0, 0, 8, 4))
	blit(dst, frame)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(2, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, dst.RGBAAt(5, 3))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
}

func TestFramebufferPresentClearsLetterbox(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 4))
	target := &Framebuffer{dev: dst}

	require.NoError(t, target.Present(context.Background(), domain.NewFrameWithColor(2, 2, red)))
	assert.Equal(t, color.RGBA{A: 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(3, 2))
	require.NoError(t, target.Close())
}

func TestPixooScalesToPanel(t *testing.T) {
	var (
		mu     sync.Mutex
		frames []pixoo.FrameCommand
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd pixoo.FrameCommand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
		if cmd.Command == pixoo.CommandSendGif {
			mu.Lock()
			frames = append(frames, cmd)
			mu.Unlock()
		}
		_, _ = w.Write([]byte(`{"error_code":0}`))
	}))
	defer server.Close()

	host, portStr, err := net.SplitHostPort(server.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	target := NewPixoo(host, port)
	require.NoError(t, target.Present(context.Background(), domain.NewFrameWithColor(144, 168, red)))

	require.Len(t, frames, 1)
	assert.Equal(t, 64, frames[0].PicWidth)

	pixels, err := base64.StdEncoding.DecodeString(frames[0].PicData)
	require.NoError(t, err)
	panel := &domain.Frame{Width: 64, Height: 64, Pixels: pixels}
	assert.Equal(t, red, *panel.GetPixel(32, 32))
	assert.Equal(t, domain.RGB{}, *panel.GetPixel(0, 32))
}

func TestTerminalPresent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	quit := make(chan struct{}, 1)

	term, err := newTerminal(sim, func() { quit <- struct{}{} })
	require.NoError(t, err)
	sim.SetSize(10, 5)

	frame := domain.NewFrame(10, 10)
	frame.FillRect(0, 0, 10, 5, white)
	require.NoError(t, term.Present(context.Background(), frame))

	mainc, _, style, _ := sim.GetContent(0, 2)
	assert.Equal(t, upperHalf, mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("quit key was not handled")
	}

	require.NoError(t, term.Close())
	require.NoError(t, term.Close())
	assert.NoError(t, term.Present(context.Background(), frame))
}
