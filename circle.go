package painter

import "math"

// hollowRingWidth is the inner margin of DrawHollowCircle. It is slightly
// wider than one pixel so the ring has no gaps on diagonals.
const hollowRingWidth float32 = 1.1

// DrawSolidCircle paints every pixel whose distance to (cx, cy) is strictly
// less than radius. cx is a column and cy a row. Pixels off the surface are
// skipped; a non-positive radius draws nothing.
func DrawSolidCircle[P any](s Surface[P], cx, cy, radius int, color P) {
	if empty(s) || radius <= 0 {
		return
	}
	r := float32(radius)
	scanCircle(s, cx, cy, radius, func(d float32) bool { return d < r }, color)
}

// DrawHollowCircle paints a ring about one pixel wide: every pixel whose
// distance to (cx, cy) lies in the open interval (radius-1.1, radius).
func DrawHollowCircle[P any](s Surface[P], cx, cy, radius int, color P) {
	if empty(s) || radius <= 0 {
		return
	}
	outer := float32(radius)
	inner := outer - hollowRingWidth
	scanCircle(s, cx, cy, radius, func(d float32) bool { return d < outer && d > inner }, color)
}

// scanCircle tests every pixel of the bounding box of the circle, clipped
// to the surface, and paints those accepted by hit. Distances are rounded to
// float32 before the test.
func scanCircle[P any](s Surface[P], cx, cy, radius int, hit func(d float32) bool, color P) {
	y0 := max(cy-radius, 0)
	y1 := min(cy+radius, s.Rows()-1)
	x0 := max(cx-radius, 0)
	x1 := min(cx+radius, s.Cols()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if hit(float32(math.Hypot(float64(y-cy), float64(x-cx)))) {
				s.SetPixel(y, x, color)
			}
		}
	}
}
