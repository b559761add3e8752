package painter

// DrawBresenhamLine draws the segment (x1, y1) -> (x2, y2) with the integer
// Bresenham algorithm. x is a column and y a row; both endpoints are painted.
//
// Steep lines are reduced to the shallow case by swapping the axes, so the
// loop always walks the longer axis one pixel at a time. The minor axis
// advances whenever the decision variable is non-negative.
func DrawBresenhamLine[P any](s Surface[P], x1, y1, x2, y2 int, color P) {
	if empty(s) {
		return
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steep := false
	if dx < dy {
		steep = true
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		dx, dy = dy, dx
	}

	ix := -1
	if x2-x1 > 0 {
		ix = 1
	}
	iy := -1
	if y2-y1 > 0 {
		iy = 1
	}

	dy2 := dy * 2
	dydx2 := (dy - dx) * 2
	d := dy*2 - dx

	cx, cy := x1, y1
	for {
		if steep {
			s.SetPixel(cx, cy, color)
		} else {
			s.SetPixel(cy, cx, color)
		}
		if cx == x2 {
			return
		}
		if d < 0 {
			d += dy2
		} else {
			cy += iy
			d += dydx2
		}
		cx += ix
	}
}

// DrawNaiveLine draws the segment (x1, y1) -> (x2, y2) by walking the
// dominant axis from the lower endpoint and linearly interpolating the
// other axis in float32. The interpolated coordinate is truncated toward
// zero, not rounded.
func DrawNaiveLine[P any](s Surface[P], x1, y1, x2, y2 int, color P) {
	if empty(s) {
		return
	}
	interpolatedLine(s, x1, y1, x2, y2, 1, false, color)
}

// DrawDashedLine draws every step-th pixel of the naive line from
// (x1, y1) to (x2, y2) and always paints the far endpoint, even when the
// stepping does not land on it. A non-positive step draws nothing.
func DrawDashedLine[P any](s Surface[P], x1, y1, x2, y2, step int, color P) {
	if empty(s) || step <= 0 {
		return
	}
	interpolatedLine(s, x1, y1, x2, y2, step, true, color)
}

func interpolatedLine[P any](s Surface[P], x1, y1, x2, y2, step int, plotEnd bool, color P) {
	steep := false
	if abs(x1-x2) < abs(y1-y2) {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		steep = true
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	plot := func(x, y int) {
		if steep {
			s.SetPixel(x, y, color)
		} else {
			s.SetPixel(y, x, color)
		}
	}

	// Both endpoints coincide; the interpolation weight would be 0/0.
	if x1 == x2 {
		plot(x1, y1)
		return
	}

	for x := x1; x <= x2; x += step {
		plot(x, lerpTruncate(x1, y1, x2, y2, x))
	}
	if plotEnd {
		plot(x2, lerpTruncate(x1, y1, x2, y2, x2))
	}
}

// lerpTruncate returns the y of the line (x1, y1) -> (x2, y2) at x,
// computed in float32 and truncated toward zero. x1 must differ from x2.
func lerpTruncate(x1, y1, x2, y2, x int) int {
	lambda := float32(x-x1) / float32(x2-x1)
	// Explicit float32 conversions keep the products from being fused.
	return int(float32(float32(y1)*(1-lambda)) + float32(float32(y2)*lambda))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
