package display

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color, giving two pixel rows per cell.
const upperHalf = '▀'

// Terminal shows frames in a terminal using half-block cells.
type Terminal struct {
	screen tcell.Screen
	onQuit func()

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewTerminal initializes the terminal screen. onQuit may be nil.
func NewTerminal(onQuit func()) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return newTerminal(screen, onQuit)
}

func newTerminal(screen tcell.Screen, onQuit func()) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{screen: screen, onQuit: onQuit, done: make(chan struct{})}
	go t.pollEvents()
	return t, nil
}

// pollEvents ends when Fini makes PollEvent return nil.
func (t *Terminal) pollEvents() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) && t.onQuit != nil {
				t.onQuit()
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Present draws the frame aspect-fitted to the terminal. Each cell covers
// one column and two rows of the scaled image.
func (t *Terminal) Present(_ context.Context, frame *domain.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}

	cols, rows := t.screen.Size()
	canvas := domain.NewFrame(cols, rows*2)
	scaleInto(canvas, frame)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := canvas.GetPixel(col, row*2)
			bottom := canvas.GetPixel(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			t.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	t.screen.Fini()
	<-t.done
	return nil
}

func tcellColor(c *domain.RGB) tcell.Color {
	if c == nil {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
