package canvas

import (
	"errors"
	"testing"
)

// The lifecycle state machine must reject out-of-order calls with a
// typed error instead of dereferencing a missing handle. None of these
// cases touch the backend, so they run headless.

func TestCreateWindowBeforeInit(t *testing.T) {
	c := New(Config{Width: 800, Height: 600, Title: "test"})
	if err := c.CreateWindow(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("CreateWindow before Init = %v, want ErrNotInitialized", err)
	}
}

func TestCreateRendererBeforeWindow(t *testing.T) {
	c := New(Config{Width: 800, Height: 600, Title: "test"})
	if err := c.CreateRenderer(); !errors.Is(err, ErrNoWindow) {
		t.Errorf("CreateRenderer before CreateWindow = %v, want ErrNoWindow", err)
	}
}

func TestDrawingBeforeRenderer(t *testing.T) {
	c := New(Config{Width: 800, Height: 600, Title: "test"})
	calls := []struct {
		name string
		call func() error
	}{
		{"Clear", func() error { return c.Clear(0, 0, 0) }},
		{"Present", func() error { return c.Present() }},
		{"DrawPoint", func() error { return c.DrawPoint(1, 1, 255, 0, 0) }},
		{"DrawLine", func() error { return c.DrawLine(0, 0, 9, 9, 255, 0, 0) }},
		{"DrawRect", func() error { return c.DrawRect(0, 0, 9, 9, 255, 0, 0) }},
		{"FillRect", func() error { return c.FillRect(0, 0, 9, 9, 255, 0, 0) }},
		{"DrawCircle", func() error { return c.DrawCircle(5, 5, 3, 255, 0, 0) }},
		{"FillCircle", func() error { return c.FillCircle(5, 5, 3, 255, 0, 0) }},
		{"DrawPolygon", func() error { return c.DrawPolygon([]Point{{0, 0}, {1, 1}, {2, 0}}, 255, 0, 0) }},
		{"DrawText", func() error { return c.DrawText("hi", 0, 0, White) }},
		{"DrawTexture", func() error { return c.DrawTexture(&Texture{}, 0, 0) }},
		{"DrawTextureRegion", func() error { return c.DrawTextureRegion(&Texture{}, nil, nil) }},
	}
	for _, tt := range calls {
		if err := tt.call(); !errors.Is(err, ErrNoRenderer) {
			t.Errorf("%s before CreateRenderer = %v, want ErrNoRenderer", tt.name, err)
		}
	}
}

func TestTextureCreationBeforeRenderer(t *testing.T) {
	c := New(Config{})
	if _, err := c.LoadTexture("missing.png"); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("LoadTexture = %v, want ErrNoRenderer", err)
	}
	if _, err := c.CreateTexture(16, 16); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("CreateTexture = %v, want ErrNoRenderer", err)
	}
	if _, err := c.TextureFromSurface(nil); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("TextureFromSurface = %v, want ErrNoRenderer", err)
	}
}

func TestFontRequiredForText(t *testing.T) {
	c := New(Config{})
	w, h, err := c.TextSize("hello")
	if !errors.Is(err, ErrNoFont) {
		t.Errorf("TextSize without font = %v, want ErrNoFont", err)
	}
	if w != 0 || h != 0 {
		t.Errorf("TextSize without font = (%d, %d), want zero size", w, h)
	}
	if err := c.LoadFont("missing.ttf", 12); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("LoadFont before Init = %v, want ErrNotInitialized", err)
	}
}

func TestAccessors(t *testing.T) {
	c := New(Config{Width: 640, Height: 480, Title: "t"})
	if c.Width() != 640 || c.Height() != 480 {
		t.Errorf("accessors = (%d, %d), want (640, 480)", c.Width(), c.Height())
	}
	if c.Renderer() != nil {
		t.Error("Renderer should be nil before CreateRenderer")
	}
}

func TestDestroyIdempotentWhenUnopened(t *testing.T) {
	c := New(Config{Width: 100, Height: 100})
	c.Destroy()
	c.Destroy()
}

func TestInputSnapshotsBeforeInit(t *testing.T) {
	c := New(Config{})
	if c.IsKeyPressed(0) {
		t.Error("IsKeyPressed should be false before Init")
	}
	if x, y := c.MousePosition(); x != 0 || y != 0 {
		t.Errorf("MousePosition before Init = (%d, %d), want (0, 0)", x, y)
	}
	if c.IsMouseButtonDown(1) {
		t.Error("IsMouseButtonDown should be false before Init")
	}
	if c.IsWindowFocused() {
		t.Error("IsWindowFocused should be false without a window")
	}
}
