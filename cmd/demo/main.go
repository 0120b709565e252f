// Demo host for the canvas package: opens a window and exercises the
// drawing, text, texture and input surface in a simple frame loop.
//
//	go run ./cmd/demo [image.png]
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veldt/canvas"
)

const (
	width  = 800
	height = 600
)

func init() {
	// SDL wants window and renderer calls on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	canvas.SetLogger(slog.Default())

	c := canvas.New(canvas.Config{Width: width, Height: height, Title: "canvas demo"})
	if err := c.Open(); err != nil {
		log.Fatalf("Failed to open canvas: %v", err)
	}
	defer c.Destroy()

	if err := c.LoadSystemFont("DejaVuSans.ttf", 18); err != nil {
		log.Printf("No font, text disabled: %v", err)
	}
	c.SetTextCacheSize(32)

	var sprite *canvas.Texture
	if len(os.Args) > 1 {
		t, err := c.LoadTexture(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load %s: %v", os.Args[1], err)
		}
		sprite = t
		sprite.SetBlendMode(sdl.BLENDMODE_BLEND)
		sprite.SetAlphaMod(200)
	}
	defer sprite.Destroy()

	triangle := []canvas.Point{{400, 80}, {520, 260}, {280, 260}}

	start := canvas.Ticks()
	for {
		for ev := c.PollEvent(); ev != nil; ev = c.PollEvent() {
			switch e := ev.(type) {
			case canvas.Quit:
				return
			case canvas.KeyDown:
				if e.Scancode == sdl.SCANCODE_ESCAPE {
					return
				}
			case canvas.MouseButtonDown:
				log.Printf("Click %d at (%d, %d)", e.Button, e.X, e.Y)
			}
		}

		c.Clear(0, 0, 0)

		hue := float64((canvas.Ticks() - start) / 20 % 360)
		col := canvas.HSV(hue, 0.8, 1.0)

		c.FillRect(10, 10, 50, 50, 255, 0, 0)
		c.DrawRect(70, 10, 50, 50, col.R, col.G, col.B)
		c.DrawLine(10, 80, 120, 80, 255, 255, 255)
		c.DrawCircle(200, 150, 60, 0, 255, 0)
		c.FillCircle(200, 150, 30, col.R, col.G, col.B)
		c.DrawPolygon(triangle, 255, 255, 0)

		if sprite != nil {
			c.DrawTexture(sprite, 500, 300)
		}

		mx, my := c.MousePosition()
		label := fmt.Sprintf("mouse (%d, %d)", mx, my)
		if c.IsMouseButtonDown(sdl.BUTTON_LEFT) {
			label += " [left held]"
		}
		if !c.IsWindowFocused() {
			label = "unfocused"
		}
		if w, h, err := c.TextSize(label); err == nil {
			c.DrawText(label, width-int32(w)-10, height-int32(h)-10, canvas.White)
		}
		if c.IsKeyPressed(sdl.SCANCODE_SPACE) {
			c.DrawTextRGB("space held", 10, 100, 0, 255, 255)
		}

		c.Present()
		canvas.Delay(16)
	}
}
