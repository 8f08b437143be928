package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
	"github.com/alinanorakari/supersimple/internal/geometry"
	"github.com/alinanorakari/supersimple/internal/pixoo"
	"github.com/alinanorakari/supersimple/internal/render"
	"github.com/alinanorakari/supersimple/internal/ticks"
)

func main() {
	if len(os.Args) > 3 {
		fmt.Println("Usage: debug [HH:MM] [IP]")
		os.Exit(1)
	}

	tod := clock.FromTime(time.Now())
	var ip string
	for _, arg := range os.Args[1:] {
		if t, err := clock.Parse(arg); err == nil {
			tod = t
			continue
		}
		ip = arg
	}

	settled := animation.State{Percent: 100}
	for _, d := range []domain.Display{
		domain.NewDisplay(domain.PebbleRectSize.Width, domain.PebbleRectSize.Height, domain.ShapeRect),
		domain.NewDisplay(domain.PebbleRoundSize.Width, domain.PebbleRoundSize.Height, domain.ShapeRound),
	} {
		dial := geometry.NewDial(d)
		layout := geometry.DefaultLayout().ForShape(d.Shape)
		hands := geometry.Hands(tod, settled, dial, layout)

		fmt.Printf("%s %dx%d at %s\n", d.Shape, d.Size.Width, d.Size.Height, tod)
		fmt.Printf("  Center: %v  MaxRadius: %d  Radius: %d\n", dial.Center, dial.MaxRadius, hands.Radius)
		fmt.Printf("  Minute: angle=%#x %v -> %v len=%d\n", hands.Minute.Angle, hands.Minute.Inner, hands.Minute.Outer, hands.Minute.Length)
		fmt.Printf("  Hour:   angle=%#x %v -> %v len=%d\n", hands.Hour.Angle, hands.Hour.Inner, hands.Hour.Outer, hands.Hour.Length)

		for _, layoutKind := range []ticks.Layout{ticks.Circular, ticks.RectangularFixed} {
			marks, err := ticks.Positions(12, layoutKind, dial, 100)
			if err != nil {
				fmt.Printf("  Ticks (%s): %v\n", layoutKind, err)
				continue
			}
			fmt.Printf("  Ticks (%s): %d\n", layoutKind, len(marks))
			for _, m := range marks {
				fmt.Printf("    %v r=%d\n", m.Center, m.Radius)
			}
		}
		fmt.Println()
	}

	frame := render.RenderFrame(domain.NewDisplay(domain.Pixoo64Size, domain.Pixoo64Size, domain.ShapeRound), render.Scene{
		Time:    tod,
		Anim:    settled,
		Colors:  face.DefaultColors(),
		Options: face.DefaultOptions(),
	})
	cmd := pixoo.CreatePixooFrameCommand(frame, nil)

	data, _ := json.MarshalIndent(cmd, "", "  ")
	fmt.Println("Command structure:")
	fmt.Printf("  Command: %s\n", cmd.Command)
	fmt.Printf("  PicNum: %d\n", cmd.PicNum)
	fmt.Printf("  PicWidth: %d\n", cmd.PicWidth)
	fmt.Printf("  PicOffset: %d\n", cmd.PicOffset)
	fmt.Printf("  PicID: %d\n", cmd.PicID)
	fmt.Printf("  PicSpeed: %d\n", cmd.PicSpeed)
	fmt.Printf("  PicData length: %d chars\n", len(cmd.PicData))
	fmt.Printf("  Full JSON size: %d bytes\n", len(data))

	if ip == "" {
		return
	}

	jsonData, _ := json.Marshal(cmd)
	url := fmt.Sprintf("http://%s:%d/post", ip, pixoo.DefaultPort)
	fmt.Printf("\nSending to %s...\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewReader(jsonData))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %d\n", resp.StatusCode)
	fmt.Printf("Response: %s\n", string(body))
}
