package canvas

import "errors"

// Out-of-order use of the canvas is a checked error, not undefined
// behavior. The lifecycle is Init, then CreateWindow, then
// CreateRenderer; each stage checks the one before it.
var (
	ErrNotInitialized = errors.New("canvas: not initialized")
	ErrNoWindow       = errors.New("canvas: no window created")
	ErrNoRenderer     = errors.New("canvas: no renderer created")
	ErrNoFont         = errors.New("canvas: no font loaded")
	ErrTextureFreed   = errors.New("canvas: texture already destroyed")
)
