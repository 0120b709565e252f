// Package canvas is a small synchronous 2D drawing and input layer
// over SDL2. A Canvas owns the window, renderer and font handles and
// enforces their creation order; drawing is immediate-mode against the
// renderer. Textures are the only caller-managed resources.
package canvas

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Config describes the window to open. It is fixed after New.
type Config struct {
	Width  int32
	Height int32
	Title  string
}

// Canvas owns the window, renderer and font for one host program. The
// zero value is unusable; construct with New and bring it up with Open
// or with Init, CreateWindow and CreateRenderer in that order. A
// Canvas is not safe for concurrent use; SDL wants all of this on one
// thread anyway.
type Canvas struct {
	cfg         Config
	window      *sdl.Window
	renderer    *sdl.Renderer
	font        *ttf.Font
	initialized bool

	textCache *textCache
}

// New records the window configuration. No backend state is touched
// until Init.
func New(cfg Config) *Canvas {
	return &Canvas{cfg: cfg}
}

// Init brings up the SDL video and font subsystems. On failure the
// canvas stays unusable and every later call reports ErrNotInitialized.
func (c *Canvas) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		logger().Error("sdl init failed", "error", err)
		return fmt.Errorf("canvas: sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		logger().Error("ttf init failed", "error", err)
		return fmt.Errorf("canvas: ttf init: %w", err)
	}
	c.initialized = true
	return nil
}

// CreateWindow creates the window sized and titled per the Config.
func (c *Canvas) CreateWindow() error {
	if !c.initialized {
		return ErrNotInitialized
	}
	w, err := sdl.CreateWindow(c.cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		c.cfg.Width, c.cfg.Height, sdl.WINDOW_SHOWN)
	if err != nil {
		logger().Error("create window failed", "error", err,
			"width", c.cfg.Width, "height", c.cfg.Height)
		return fmt.Errorf("canvas: create window: %w", err)
	}
	c.window = w
	return nil
}

// CreateRenderer binds a renderer to the window.
func (c *Canvas) CreateRenderer() error {
	if c.window == nil {
		return ErrNoWindow
	}
	r, err := sdl.CreateRenderer(c.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		logger().Error("create renderer failed", "error", err)
		return fmt.Errorf("canvas: create renderer: %w", err)
	}
	c.renderer = r
	return nil
}

// Open is Init, CreateWindow and CreateRenderer in sequence.
func (c *Canvas) Open() error {
	if err := c.Init(); err != nil {
		return err
	}
	if err := c.CreateWindow(); err != nil {
		return err
	}
	return c.CreateRenderer()
}

// Destroy releases everything the canvas owns in reverse creation
// order: renderer, window, font, then the font and video subsystems.
// Textures handed out by this canvas are the caller's to destroy.
// Destroy is idempotent.
func (c *Canvas) Destroy() {
	c.flushTextCache()
	if c.renderer != nil {
		c.renderer.Destroy()
		c.renderer = nil
	}
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	if c.font != nil {
		c.font.Close()
		c.font = nil
	}
	if c.initialized {
		ttf.Quit()
		sdl.Quit()
		c.initialized = false
	}
}

// Width returns the configured window width in pixels.
func (c *Canvas) Width() int32 { return c.cfg.Width }

// Height returns the configured window height in pixels.
func (c *Canvas) Height() int32 { return c.cfg.Height }

// Renderer exposes the underlying SDL renderer for hosts that need to
// reach past this layer. Nil before CreateRenderer.
func (c *Canvas) Renderer() *sdl.Renderer { return c.renderer }
