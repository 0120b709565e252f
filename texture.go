package canvas

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Texture wraps a renderer-bound SDL texture. Unlike the window and
// renderer, textures are caller-managed: the caller must Destroy each
// one. The handle is cleared on Destroy so later use reports
// ErrTextureFreed instead of touching a dangling pointer.
type Texture struct {
	tex *sdl.Texture
}

// LoadTexture decodes an image file (PNG, JPEG, BMP and whatever else
// the backend supports) into a texture.
func (c *Canvas) LoadTexture(path string) (*Texture, error) {
	if c.renderer == nil {
		return nil, ErrNoRenderer
	}
	surface, err := img.Load(path)
	if err != nil {
		logger().Error("load image failed", "path", path, "error", err)
		return nil, fmt.Errorf("canvas: load image %s: %w", path, err)
	}
	defer surface.Free()
	tex, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		logger().Error("texture upload failed", "path", path, "error", err)
		return nil, fmt.Errorf("canvas: texture from %s: %w", path, err)
	}
	return &Texture{tex: tex}, nil
}

// CreateTexture allocates a blank render-target-capable texture.
func (c *Canvas) CreateTexture(w, h int32) (*Texture, error) {
	if c.renderer == nil {
		return nil, ErrNoRenderer
	}
	tex, err := c.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		return nil, fmt.Errorf("canvas: create texture: %w", err)
	}
	return &Texture{tex: tex}, nil
}

// TextureFromSurface wraps an already-decoded pixel surface as a
// texture. The surface remains the caller's to free.
func (c *Canvas) TextureFromSurface(surface *sdl.Surface) (*Texture, error) {
	if c.renderer == nil {
		return nil, ErrNoRenderer
	}
	tex, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("canvas: texture from surface: %w", err)
	}
	return &Texture{tex: tex}, nil
}

// Destroy releases the texture. Destroying an already-destroyed or nil
// texture is a no-op.
func (t *Texture) Destroy() {
	if t == nil || t.tex == nil {
		return
	}
	t.tex.Destroy()
	t.tex = nil
}

// Size reports the texture's native dimensions.
func (t *Texture) Size() (w, h int32, err error) {
	if t.tex == nil {
		return 0, 0, ErrTextureFreed
	}
	_, _, w, h, err = t.tex.Query()
	return w, h, err
}

// SetBlendMode sets how the texture composites over the frame.
func (t *Texture) SetBlendMode(mode sdl.BlendMode) error {
	if t.tex == nil {
		return ErrTextureFreed
	}
	return t.tex.SetBlendMode(mode)
}

// SetAlphaMod scales the texture's alpha channel on blit.
func (t *Texture) SetAlphaMod(alpha uint8) error {
	if t.tex == nil {
		return ErrTextureFreed
	}
	return t.tex.SetAlphaMod(alpha)
}

// SetColorMod scales the texture's color channels on blit.
func (t *Texture) SetColorMod(r, g, b uint8) error {
	if t.tex == nil {
		return ErrTextureFreed
	}
	return t.tex.SetColorMod(r, g, b)
}

// DrawTexture blits the texture unscaled with its top-left corner at
// (x, y), sized to its native dimensions.
func (c *Canvas) DrawTexture(t *Texture, x, y int32) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if t == nil || t.tex == nil {
		return ErrTextureFreed
	}
	_, _, w, h, err := t.tex.Query()
	if err != nil {
		return err
	}
	return c.renderer.Copy(t.tex, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// DrawTextureRegion blits the src sub-region of the texture scaled
// into dst. A nil src means the whole texture; a nil dst means the
// whole frame.
func (c *Canvas) DrawTextureRegion(t *Texture, src, dst *sdl.Rect) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if t == nil || t.tex == nil {
		return ErrTextureFreed
	}
	return c.renderer.Copy(t.tex, src, dst)
}
