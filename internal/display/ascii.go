package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// Legend describes the shading used by WriteASCII.
const Legend = "█=bright ▓=medium ▒=dim ░=faint ·=very dim (space)=off"

// WriteASCII prints a shaded, bordered preview of frame, cols characters
// wide. Terminal cells are about twice as tall as wide, so each row of
// output samples every second scaled source row.
func WriteASCII(w io.Writer, frame *domain.Frame, cols int) error {
	if cols <= 0 || cols > frame.Width {
		cols = frame.Width
	}
	step := float64(frame.Width) / float64(cols)
	rows := int(float64(frame.Height) / (step * 2))

	bw := bufio.NewWriter(w)
	border := strings.Repeat("─", cols)
	fmt.Fprintf(bw, "┌%s┐\n", border)
	for row := 0; row < rows; row++ {
		sy := int(float64(row) * step * 2)
		bw.WriteString("│")
		for col := 0; col < cols; col++ {
			p := frame.GetPixel(int(float64(col)*step), sy)
			if p == nil {
				bw.WriteString(" ")
				continue
			}
			bw.WriteString(shade(*p))
		}
		bw.WriteString("│\n")
	}
	fmt.Fprintf(bw, "└%s┘\n", border)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

func shade(c domain.RGB) string {
	brightness := (int(c.R) + int(c.G) + int(c.B)) / 3

	switch {
	case brightness > 200:
		return "█"
	case brightness > 150:
		return "▓"
	case brightness > 100:
		return "▒"
	case brightness > 50:
		return "░"
	case brightness > 10:
		return "·"
	default:
		return " "
	}
}
