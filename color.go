package canvas

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/veandco/go-sdl2/sdl"
)

// Color is an 8-bit-per-channel RGBA color. The drawing operations fix
// alpha at 255; A is honored by text rendering and texture modulation.
type Color struct {
	R, G, B, A uint8
}

var (
	Black   = Color{0, 0, 0, 255}
	White   = Color{255, 255, 255, 255}
	Red     = Color{255, 0, 0, 255}
	Green   = Color{0, 255, 0, 255}
	Blue    = Color{0, 0, 255, 255}
	Yellow  = Color{255, 255, 0, 255}
	Cyan    = Color{0, 255, 255, 255}
	Magenta = Color{255, 0, 255, 255}
	Gray    = Color{128, 128, 128, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// HSV returns an opaque color from hue in [0,360], saturation and
// value in [0,1].
func HSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s, v))
}

// Hex parses colors of the form "#ff0080" or "#f08".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return fromColorful(c), nil
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b, 255}
}

func (c Color) sdl() sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
