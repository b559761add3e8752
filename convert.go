package painter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NaNMarker is the value written on the diagonal of the block of a NaN
// matrix cell by ConvertMatrixToGray and ConvertMatrixToRGB.
const NaNMarker uint8 = 127

// DefaultMaxValue and DefaultScale are the usual parameters of the matrix
// conversions.
const (
	DefaultMaxValue = 1e3
	DefaultScale    = 4
)

// ConvertValueToUint8 maps |value| linearly onto a gray level: 0 becomes
// 255 and values at or above maxValue become 0. NaN maps to 0.
func ConvertValueToUint8[F ~float32 | ~float64](value, maxValue F) uint8 {
	if value != value {
		return 0
	}
	if value < 0 {
		value = -value
	}
	if value >= maxValue {
		return 0
	}
	step := maxValue / 256
	return 255 - uint8(value/step)
}

// ConvertMatrixToGray renders m into img, one scale x scale block of
// pixels per matrix cell, quantized with ConvertValueToUint8. NaN cells
// additionally get NaNMarker along the block diagonal.
//
// img must be exactly (rows*scale) x (cols*scale). On error img is left
// untouched.
func ConvertMatrixToGray(m mat.Matrix, img *GrayImage, maxValue float64, scale int) error {
	if err := checkConversion(m, img.Rows(), img.Cols(), scale); err != nil {
		Logger().Warn("painter: matrix to gray conversion rejected", "err", err)
		return err
	}

	rows, cols := m.Dims()
	data := img.Data()
	stride := img.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v := m.At(row, col)
			level := ConvertValueToUint8(v, maxValue)
			top, left := row*scale, col*scale
			for i := 0; i < scale; i++ {
				line := data[(top+i)*stride+left : (top+i)*stride+left+scale]
				for k := range line {
					line[k] = level
				}
			}
			if math.IsNaN(v) {
				for i := 0; i < scale; i++ {
					data[(top+i)*stride+left+i] = NaNMarker
				}
			}
		}
	}
	return nil
}

// ConvertMatrixToRGB is ConvertMatrixToGray for an RGB destination; every
// channel receives the same level.
func ConvertMatrixToRGB(m mat.Matrix, img *RGBImage, maxValue float64, scale int) error {
	if err := checkConversion(m, img.Rows(), img.Cols(), scale); err != nil {
		Logger().Warn("painter: matrix to rgb conversion rejected", "err", err)
		return err
	}

	rows, cols := m.Dims()
	data := img.Data()
	stride := img.Cols() * 3
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v := m.At(row, col)
			level := ConvertValueToUint8(v, maxValue)
			top, left := row*scale, col*scale*3
			for i := 0; i < scale; i++ {
				line := data[(top+i)*stride+left : (top+i)*stride+left+scale*3]
				for k := range line {
					line[k] = level
				}
			}
			if math.IsNaN(v) {
				for i := 0; i < scale; i++ {
					img.SetPixel(top+i, col*scale+i, RGBPixel{R: NaNMarker, G: NaNMarker, B: NaNMarker})
				}
			}
		}
	}
	return nil
}

func checkConversion(m mat.Matrix, imgRows, imgCols, scale int) error {
	if imgRows <= 0 || imgCols <= 0 {
		return ErrEmptySurface
	}
	if scale <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	if m == nil {
		return fmt.Errorf("%w: nil matrix", ErrSizeMismatch)
	}
	rows, cols := m.Dims()
	if imgRows != rows*scale || imgCols != cols*scale {
		return fmt.Errorf("%w: surface %dx%d, matrix %dx%d at scale %d",
			ErrSizeMismatch, imgRows, imgCols, rows, cols, scale)
	}
	return nil
}

// GrayToRGB replicates each gray byte into three RGB bytes.
func GrayToRGB(gray, rgb []uint8) error {
	if len(rgb) < 3*len(gray) {
		return ErrShortBuffer
	}
	for i, v := range gray {
		rgb[3*i+0] = v
		rgb[3*i+1] = v
		rgb[3*i+2] = v
	}
	return nil
}

// RGBToGray converts packed RGB to luma with the 0.299/0.587/0.114 weights.
// len(gray) pixels are converted.
func RGBToGray(rgb, gray []uint8) error {
	if len(rgb) < 3*len(gray) {
		return ErrShortBuffer
	}
	for i := range gray {
		gray[i] = RGBPixel{R: rgb[3*i], G: rgb[3*i+1], B: rgb[3*i+2]}.Gray()
	}
	return nil
}

// GrayToRGBFlipped is GrayToRGB that also mirrors the rows, so the first
// gray row becomes the last RGB row.
func GrayToRGBFlipped(gray, rgb []uint8, rows, cols int) error {
	if rows < 0 || cols < 0 || len(gray) < rows*cols || len(rgb) < 3*rows*cols {
		return ErrShortBuffer
	}
	for row := 0; row < rows; row++ {
		dst := (rows - row - 1) * cols * 3
		if err := GrayToRGB(gray[row*cols:(row+1)*cols], rgb[dst:dst+cols*3]); err != nil {
			return err
		}
	}
	return nil
}

// RGBToBGR swaps the red and blue channels of a rows x cols image into dst.
func RGBToBGR(rgb, dst []uint8, rows, cols int) error {
	return swapRB(rgb, dst, rows, cols, false)
}

// RGBToBGRFlipped is RGBToBGR that also mirrors the rows.
func RGBToBGRFlipped(rgb, dst []uint8, rows, cols int) error {
	return swapRB(rgb, dst, rows, cols, true)
}

func swapRB(rgb, dst []uint8, rows, cols int, flip bool) error {
	n := 3 * rows * cols
	if rows < 0 || cols < 0 || len(rgb) < n || len(dst) < n {
		return ErrShortBuffer
	}
	stride := cols * 3
	for row := 0; row < rows; row++ {
		outRow := row
		if flip {
			outRow = rows - row - 1
		}
		for col := 0; col < cols; col++ {
			src := row*stride + 3*col
			out := outRow*stride + 3*col
			r, g, b := rgb[src], rgb[src+1], rgb[src+2]
			dst[out], dst[out+1], dst[out+2] = b, g, r
		}
	}
	return nil
}

// ToRGB returns a copy of g with every channel set to the gray level.
func (g *GrayImage) ToRGB() *RGBImage {
	out := NewRGBImage(g.Rows(), g.Cols())
	_ = GrayToRGB(g.Data(), out.Data())
	return out
}

// ToGray returns the luma of m as a new gray image.
func (m *RGBImage) ToGray() *GrayImage {
	out := NewGrayImage(m.Rows(), m.Cols())
	_ = RGBToGray(m.Data(), out.Data())
	return out
}
