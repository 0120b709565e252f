package canvas

// circleOutline walks one octant of the circle of the given radius and
// reflects each step eight ways, yielding offsets from the center. The
// walk starts at (0, radius), advances x every step, retreats y when
// the midpoint decision crosses the boundary, and terminates once
// x > y. Integer arithmetic throughout.
func circleOutline(radius int32) []Point {
	if radius < 0 {
		return nil
	}
	var pts []Point
	x, y := int32(0), radius
	d := 3 - 2*radius
	for x <= y {
		pts = append(pts,
			Point{x, y}, Point{y, x},
			Point{-x, y}, Point{-y, x},
			Point{x, -y}, Point{y, -x},
			Point{-x, -y}, Point{-y, -x},
		)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return pts
}

// circleFill yields every offset (x, y) in [-radius, radius]² with
// x²+y² ≤ radius².
func circleFill(radius int32) []Point {
	if radius < 0 {
		return nil
	}
	var pts []Point
	rr := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= rr {
				pts = append(pts, Point{x, y})
			}
		}
	}
	return pts
}
