package painter

// DrawSolidRectangle fills the box [x, x+width) x [y, y+height), where x
// is a column and y a row. Cells outside the surface are skipped.
// A negative width or height draws nothing.
func DrawSolidRectangle[P any](s Surface[P], x, y, width, height int, color P) {
	if empty(s) || width < 0 || height < 0 {
		return
	}
	rows, cols := s.Rows(), s.Cols()
	for u := max(x, 0); u < x+width && u < cols; u++ {
		for v := max(y, 0); v < y+height && v < rows; v++ {
			s.SetPixel(v, u, color)
		}
	}
}

// DrawHollowRectangle draws the outline of the box spanned by (x, y) and
// (x+width, y+height). The top and bottom edges cover columns
// [x, x+width), the left and right edges cover rows [y, y+height), so the
// far corner itself is left unpainted.
//
// Unlike DrawSolidRectangle the edges are not clipped here: the surface
// writer is expected to ignore out-of-range writes.
func DrawHollowRectangle[P any](s Surface[P], x, y, width, height int, color P) {
	if empty(s) || width < 0 || height < 0 {
		return
	}
	x1 := x + width
	y1 := y + height
	for u := x; u < x1; u++ {
		s.SetPixel(y, u, color)
		s.SetPixel(y1, u, color)
	}
	for v := y; v < y1; v++ {
		s.SetPixel(v, x, color)
		s.SetPixel(v, x1, color)
	}
}
