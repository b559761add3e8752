package painter

// Surface is an addressable grid of pixels of type P.
//
// Rows and Cols report the surface size. SetPixel writes a single cell;
// implementations decide whether writes outside [0, Rows) x [0, Cols)
// are ignored. GrayImage and RGBImage ignore them.
//
// The rasterizers never read pixels back, so any type that can store a
// value at (row, col) can be painted on.
type Surface[P any] interface {
	Rows() int
	Cols() int
	SetPixel(row, col int, value P)
}

// empty reports whether s has no addressable pixels.
func empty[P any](s Surface[P]) bool {
	return s == nil || s.Rows() <= 0 || s.Cols() <= 0
}

