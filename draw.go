package canvas

import "github.com/veandco/go-sdl2/sdl"

// Point is a pixel position, origin top-left, x right, y down.
type Point struct {
	X, Y int32
}

// Clear fills the whole frame buffer with an opaque color. Call once
// per frame before other drawing.
func (c *Canvas) Clear(r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	return c.renderer.Clear()
}

// Present flips the finished frame to the screen.
func (c *Canvas) Present() error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	c.renderer.Present()
	return nil
}

// DrawPoint plots a single pixel.
func (c *Canvas) DrawPoint(x, y int32, r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	return c.renderer.DrawPoint(x, y)
}

// DrawLine draws a line between two points, endpoints included.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int32, r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	return c.renderer.DrawLine(x1, y1, x2, y2)
}

// DrawRect draws a rectangle outline.
func (c *Canvas) DrawRect(x, y, w, h int32, r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	return c.renderer.DrawRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
}

// FillRect fills a rectangle's interior.
func (c *Canvas) FillRect(x, y, w, h int32, r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	return c.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
}

// DrawCircle draws a circle outline by the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, radius int32, r, g, b uint8) error {
	return c.plotOffsets(cx, cy, circleOutline(radius), r, g, b)
}

// FillCircle fills a circle by plotting every lattice point of the
// bounding square with x²+y² ≤ radius². O(radius²) per call.
func (c *Canvas) FillCircle(cx, cy, radius int32, r, g, b uint8) error {
	return c.plotOffsets(cx, cy, circleFill(radius), r, g, b)
}

func (c *Canvas) plotOffsets(cx, cy int32, offsets []Point, r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if len(offsets) == 0 {
		return nil
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	pts := make([]sdl.Point, len(offsets))
	for i, p := range offsets {
		pts[i] = sdl.Point{X: cx + p.X, Y: cy + p.Y}
	}
	return c.renderer.DrawPoints(pts)
}

// DrawPolygon connects consecutive points with lines in the given
// order and closes the loop back to the first point. Fewer than two
// points draws nothing.
func (c *Canvas) DrawPolygon(points []Point, r, g, b uint8) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	edges := polygonEdges(points)
	if len(edges) == 0 {
		return nil
	}
	if err := c.renderer.SetDrawColor(r, g, b, 255); err != nil {
		return err
	}
	for _, e := range edges {
		if err := c.renderer.DrawLine(e[0].X, e[0].Y, e[1].X, e[1].Y); err != nil {
			return err
		}
	}
	return nil
}

// polygonEdges enumerates the segments DrawPolygon draws: N-1
// consecutive edges plus the closing edge, N segments total for N ≥ 2.
func polygonEdges(points []Point) [][2]Point {
	if len(points) < 2 {
		return nil
	}
	edges := make([][2]Point, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		edges = append(edges, [2]Point{points[i], points[i+1]})
	}
	edges = append(edges, [2]Point{points[len(points)-1], points[0]})
	return edges
}
