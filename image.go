package painter

import (
	"image"
	"image/color"
)

// GrayImage is a single channel 8-bit pixel buffer stored row-major.
type GrayImage struct {
	rows int
	cols int
	data []uint8
}

// NewGrayImage creates a zeroed gray image with the given dimensions.
// Non-positive dimensions produce an empty image.
func NewGrayImage(rows, cols int) *GrayImage {
	if rows <= 0 || cols <= 0 {
		return &GrayImage{}
	}
	return &GrayImage{
		rows: rows,
		cols: cols,
		data: make([]uint8, rows*cols),
	}
}

// GrayImageFromBytes wraps existing row-major data without copying.
// It returns nil when data is shorter than rows*cols.
func GrayImageFromBytes(data []uint8, rows, cols int) *GrayImage {
	if rows <= 0 || cols <= 0 || len(data) < rows*cols {
		return nil
	}
	return &GrayImage{rows: rows, cols: cols, data: data[:rows*cols]}
}

// Rows returns the image height in pixels.
func (g *GrayImage) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the image width in pixels.
func (g *GrayImage) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// Data returns the raw pixel data, or nil for an empty image.
func (g *GrayImage) Data() []uint8 {
	if g == nil {
		return nil
	}
	return g.data
}

// SetPixel sets a single pixel. Writes outside the image are ignored.
func (g *GrayImage) SetPixel(row, col int, v uint8) {
	if g == nil || row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.data[row*g.cols+col] = v
}

// Pixel returns the value at (row, col), or 0 outside the image.
func (g *GrayImage) Pixel(row, col int) uint8 {
	if g == nil || row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0
	}
	return g.data[row*g.cols+col]
}

// Fill sets every pixel to v.
func (g *GrayImage) Fill(v uint8) {
	for i := range g.Data() {
		g.data[i] = v
	}
}

// At implements the image.Image interface.
func (g *GrayImage) At(x, y int) color.Color {
	return color.Gray{Y: g.Pixel(y, x)}
}

// Bounds implements the image.Image interface.
func (g *GrayImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Cols(), g.Rows())
}

// ColorModel implements the image.Image interface.
func (g *GrayImage) ColorModel() color.Model {
	return color.GrayModel
}

// RGBImage is a 3-channel 8-bit pixel buffer stored row-major,
// 3 bytes per pixel in R, G, B order.
type RGBImage struct {
	rows int
	cols int
	data []uint8
}

// NewRGBImage creates a black RGB image with the given dimensions.
// Non-positive dimensions produce an empty image.
func NewRGBImage(rows, cols int) *RGBImage {
	if rows <= 0 || cols <= 0 {
		return &RGBImage{}
	}
	return &RGBImage{
		rows: rows,
		cols: cols,
		data: make([]uint8, rows*cols*3),
	}
}

// RGBImageFromImage copies any image.Image into a new RGBImage.
// Alpha is discarded.
func RGBImageFromImage(img image.Image) *RGBImage {
	b := img.Bounds()
	out := NewRGBImage(b.Dy(), b.Dx())
	for row := 0; row < out.rows; row++ {
		for col := 0; col < out.cols; col++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.RGBA)
			out.SetPixel(row, col, RGBPixel{R: c.R, G: c.G, B: c.B})
		}
	}
	return out
}

// Rows returns the image height in pixels.
func (m *RGBImage) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the image width in pixels.
func (m *RGBImage) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Data returns the raw pixel data (packed RGB), or nil for an empty image.
func (m *RGBImage) Data() []uint8 {
	if m == nil {
		return nil
	}
	return m.data
}

// SetPixel sets a single pixel. Writes outside the image are ignored.
func (m *RGBImage) SetPixel(row, col int, c RGBPixel) {
	if m == nil || row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return
	}
	i := (row*m.cols + col) * 3
	m.data[i+0] = c.R
	m.data[i+1] = c.G
	m.data[i+2] = c.B
}

// Pixel returns the color at (row, col), or Black outside the image.
func (m *RGBImage) Pixel(row, col int) RGBPixel {
	if m == nil || row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return Black
	}
	i := (row*m.cols + col) * 3
	return RGBPixel{R: m.data[i+0], G: m.data[i+1], B: m.data[i+2]}
}

// Fill sets every pixel to c.
func (m *RGBImage) Fill(c RGBPixel) {
	data := m.Data()
	for i := 0; i+2 < len(data); i += 3 {
		data[i+0] = c.R
		data[i+1] = c.G
		data[i+2] = c.B
	}
}

// At implements the image.Image interface.
func (m *RGBImage) At(x, y int) color.Color {
	return m.Pixel(y, x).Color()
}

// Bounds implements the image.Image interface.
func (m *RGBImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Cols(), m.Rows())
}

// ColorModel implements the image.Image interface.
func (m *RGBImage) ColorModel() color.Model {
	return color.RGBAModel
}
