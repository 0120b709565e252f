package canvas

import "github.com/veandco/go-sdl2/sdl"

// Ticks is a monotonically non-decreasing millisecond counter since
// backend initialization.
func Ticks() uint64 {
	return sdl.GetTicks64()
}

// Delay blocks the calling thread for approximately ms milliseconds.
// This is the only intentionally blocking call in the package.
func Delay(ms uint32) {
	sdl.Delay(ms)
}

// IsKeyPressed reports whether a physical key is currently held,
// independent of the event queue. The snapshot is refreshed by event
// polling. Always false before Init.
func (c *Canvas) IsKeyPressed(sc sdl.Scancode) bool {
	if !c.initialized {
		return false
	}
	state := sdl.GetKeyboardState()
	if int(sc) >= len(state) {
		return false
	}
	return state[sc] != 0
}

// MousePosition returns the cursor position relative to the window.
func (c *Canvas) MousePosition() (x, y int32) {
	if !c.initialized {
		return 0, 0
	}
	x, y, _ = sdl.GetMouseState()
	return x, y
}

// IsMouseButtonDown reports whether the given button (sdl.BUTTON_LEFT,
// sdl.BUTTON_MIDDLE, sdl.BUTTON_RIGHT, ...) is currently held.
func (c *Canvas) IsMouseButtonDown(button uint8) bool {
	if !c.initialized || button == 0 {
		return false
	}
	_, _, state := sdl.GetMouseState()
	return state&(1<<(button-1)) != 0
}

// IsWindowFocused reports whether the window holds input focus.
func (c *Canvas) IsWindowFocused() bool {
	if c.window == nil {
		return false
	}
	return c.window.GetFlags()&sdl.WINDOW_INPUT_FOCUS != 0
}
