package canvas

import "github.com/veandco/go-sdl2/sdl"

// Event is a discrete input or system notification dequeued from the
// backend's FIFO queue. The set of kinds is closed; switch on the
// concrete type.
type Event interface{ isEvent() }

// Quit is the window-close / interrupt request.
type Quit struct{}

// KeyDown reports a physical key press.
type KeyDown struct {
	Scancode sdl.Scancode
}

// KeyUp reports a physical key release.
type KeyUp struct {
	Scancode sdl.Scancode
}

// MouseMotion reports cursor movement with the current button mask.
type MouseMotion struct {
	X, Y    int32
	Buttons uint32
}

// MouseButtonDown reports a button press at a position.
type MouseButtonDown struct {
	X, Y   int32
	Button uint8
}

// MouseButtonUp reports a button release at a position.
type MouseButtonUp struct {
	X, Y   int32
	Button uint8
}

// WindowChange carries the backend's window sub-event code (shown,
// focus gained/lost, resized, ...).
type WindowChange struct {
	Kind uint8
}

// DeviceAdded reports a controller attaching.
type DeviceAdded struct {
	ID int32
}

// DeviceRemoved reports a controller detaching.
type DeviceRemoved struct {
	ID int32
}

// SensorUpdate reports new data from a sensor device.
type SensorUpdate struct {
	ID int32
}

func (Quit) isEvent()            {}
func (KeyDown) isEvent()         {}
func (KeyUp) isEvent()           {}
func (MouseMotion) isEvent()     {}
func (MouseButtonDown) isEvent() {}
func (MouseButtonUp) isEvent()   {}
func (WindowChange) isEvent()    {}
func (DeviceAdded) isEvent()     {}
func (DeviceRemoved) isEvent()   {}
func (SensorUpdate) isEvent()    {}

// PollEvent dequeues at most one pending event without blocking and
// returns nil when the queue is empty. Call it in a loop each frame to
// drain the queue; one call consumes at most one backend event, and a
// backend event with no mapping here yields nil for that call.
func (c *Canvas) PollEvent() Event {
	ev := sdl.PollEvent()
	if ev == nil {
		return nil
	}
	return translateEvent(ev)
}

func translateEvent(ev sdl.Event) Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Quit{}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return KeyDown{Scancode: e.Keysym.Scancode}
		}
		return KeyUp{Scancode: e.Keysym.Scancode}
	case *sdl.MouseMotionEvent:
		return MouseMotion{X: e.X, Y: e.Y, Buttons: e.State}
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return MouseButtonDown{X: e.X, Y: e.Y, Button: e.Button}
		}
		return MouseButtonUp{X: e.X, Y: e.Y, Button: e.Button}
	case *sdl.WindowEvent:
		return WindowChange{Kind: e.Event}
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			return DeviceAdded{ID: int32(e.Which)}
		case sdl.CONTROLLERDEVICEREMOVED:
			return DeviceRemoved{ID: int32(e.Which)}
		}
		return nil
	case *sdl.SensorEvent:
		return SensorUpdate{ID: e.Which}
	default:
		return nil
	}
}
