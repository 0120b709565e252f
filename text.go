package canvas

import (
	"fmt"

	"github.com/flopp/go-findfont"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// LoadFont opens a font file at the given point size and makes it the
// active font. At most one font is active; any previously loaded font
// is closed first, so callers never have to sequence a release. Cached
// text textures rendered with the old font are flushed.
func (c *Canvas) LoadFont(path string, size int) error {
	if !c.initialized {
		return ErrNotInitialized
	}
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		logger().Error("load font failed", "path", path, "size", size, "error", err)
		return fmt.Errorf("canvas: load font %s: %w", path, err)
	}
	c.flushTextCache()
	if c.font != nil {
		c.font.Close()
	}
	c.font = f
	return nil
}

// LoadSystemFont resolves a font by file name ("DejaVuSans.ttf") through
// the operating system's font directories, then loads it like LoadFont.
func (c *Canvas) LoadSystemFont(name string, size int) error {
	path, err := findfont.Find(name)
	if err != nil {
		logger().Error("font lookup failed", "name", name, "error", err)
		return fmt.Errorf("canvas: find font %s: %w", name, err)
	}
	return c.LoadFont(path, size)
}

// DrawText rasterizes the string with the active font and blits it at
// (x, y) sized to the text's natural dimensions. Without a text cache
// the glyph surface and texture are destroyed before returning, so
// repeated identical draws repeat the full rasterize/upload cycle each
// frame; see SetTextCacheSize.
func (c *Canvas) DrawText(text string, x, y int32, col Color) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if c.font == nil {
		logger().Warn("draw text without a loaded font")
		return ErrNoFont
	}

	if e := c.cachedText(text, col); e != nil {
		return c.renderer.Copy(e.tex.tex, nil, &sdl.Rect{X: x, Y: y, W: e.w, H: e.h})
	}

	surface, err := c.font.RenderUTF8Solid(text, col.sdl())
	if err != nil {
		logger().Error("render text failed", "error", err)
		return fmt.Errorf("canvas: render text: %w", err)
	}
	w, h := surface.W, surface.H
	tex, err := c.renderer.CreateTextureFromSurface(surface)
	surface.Free()
	if err != nil {
		logger().Error("text texture upload failed", "error", err)
		return fmt.Errorf("canvas: text texture: %w", err)
	}

	dst := sdl.Rect{X: x, Y: y, W: w, H: h}
	copyErr := c.renderer.Copy(tex, nil, &dst)
	if c.storeText(text, col, &Texture{tex: tex}, w, h) {
		return copyErr
	}
	tex.Destroy()
	return copyErr
}

// DrawTextRGB is DrawText with an opaque color given as raw bytes.
func (c *Canvas) DrawTextRGB(text string, x, y int32, r, g, b uint8) error {
	return c.DrawText(text, x, y, Color{r, g, b, 255})
}

// TextSize reports the pixel dimensions the string would occupy if
// drawn with the active font, without rendering it. Matches the blit
// size DrawText would use for the same string.
func (c *Canvas) TextSize(text string) (w, h int, err error) {
	if c.font == nil {
		logger().Warn("text size without a loaded font")
		return 0, 0, ErrNoFont
	}
	return c.font.SizeUTF8(text)
}
