package painter

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestConvertValueToUint8(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		want  uint8
	}{
		{"zero", 0, 1000, 255},
		{"half", 500, 1000, 127},
		{"negative half", -500, 1000, 127},
		{"quarter", 250, 1000, 191},
		{"just below max", 999.9, 1000, 0},
		{"at max", 1000, 1000, 0},
		{"above max", 2000, 1000, 0},
		{"nan", math.NaN(), 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertValueToUint8(tt.value, tt.max); got != tt.want {
				t.Errorf("ConvertValueToUint8(%v, %v) = %d, want %d", tt.value, tt.max, got, tt.want)
			}
		})
	}
}

func TestConvertValueToUint8Float32(t *testing.T) {
	if got := ConvertValueToUint8[float32](250, 1000); got != 191 {
		t.Errorf("ConvertValueToUint8[float32](250, 1000) = %d, want 191", got)
	}
}

func TestConvertMatrixToGray(t *testing.T) {
	for _, scale := range []int{1, 2, DefaultScale} {
		m := mat.NewDense(2, 3, nil)
		img := NewGrayImage(2*scale, 3*scale)
		if err := ConvertMatrixToGray(m, img, DefaultMaxValue, scale); err != nil {
			t.Fatalf("ConvertMatrixToGray(scale %d) error = %v", scale, err)
		}
		for i, v := range img.Data() {
			if v != 255 {
				t.Fatalf("scale %d: pixel %d = %d, want 255", scale, i, v)
			}
		}
	}
}

func TestConvertMatrixToGrayNaN(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		0, math.NaN(),
		500, 0,
	})
	img := NewGrayImage(6, 6)
	if err := ConvertMatrixToGray(m, img, DefaultMaxValue, 3); err != nil {
		t.Fatalf("ConvertMatrixToGray() error = %v", err)
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			var want uint8
			switch {
			case row < 3 && col >= 3:
				// NaN block: zero with the marker along its diagonal.
				if row == col-3 {
					want = NaNMarker
				}
			case row >= 3 && col < 3:
				want = 127
			default:
				want = 255
			}
			if got := img.Pixel(row, col); got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestConvertMatrixToGrayErrors(t *testing.T) {
	tests := []struct {
		name  string
		m     mat.Matrix
		img   *GrayImage
		scale int
		want  error
	}{
		{"empty image", mat.NewDense(1, 1, nil), NewGrayImage(0, 0), 1, ErrEmptySurface},
		{"nil image", mat.NewDense(1, 1, nil), nil, 1, ErrEmptySurface},
		{"zero scale", mat.NewDense(2, 2, nil), NewGrayImage(4, 4), 0, ErrInvalidScale},
		{"negative scale", mat.NewDense(2, 2, nil), NewGrayImage(4, 4), -2, ErrInvalidScale},
		{"nil matrix", nil, NewGrayImage(4, 4), 2, ErrSizeMismatch},
		{"wrong size", mat.NewDense(2, 3, nil), NewGrayImage(4, 4), 2, ErrSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.img.Fill(9)
			err := ConvertMatrixToGray(tt.m, tt.img, DefaultMaxValue, tt.scale)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ConvertMatrixToGray() error = %v, want %v", err, tt.want)
			}
			for i, v := range tt.img.Data() {
				if v != 9 {
					t.Fatalf("pixel %d modified to %d on error", i, v)
				}
			}
		})
	}
}

func TestConvertMatrixToRGB(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{500, math.NaN()})
	img := NewRGBImage(2, 4)
	if err := ConvertMatrixToRGB(m, img, DefaultMaxValue, 2); err != nil {
		t.Fatalf("ConvertMatrixToRGB() error = %v", err)
	}
	half := RGB(127, 127, 127)
	marker := RGB(NaNMarker, NaNMarker, NaNMarker)
	want := [2][4]RGBPixel{
		{half, half, marker, Black},
		{half, half, Black, marker},
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if got := img.Pixel(row, col); got != want[row][col] {
				t.Errorf("pixel (%d, %d) = %v, want %v", row, col, got, want[row][col])
			}
		}
	}

	err := ConvertMatrixToRGB(m, NewRGBImage(3, 4), DefaultMaxValue, 2)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("ConvertMatrixToRGB() error = %v, want %v", err, ErrSizeMismatch)
	}
}

func TestGrayToRGB(t *testing.T) {
	rgb := make([]uint8, 6)
	if err := GrayToRGB([]uint8{7, 200}, rgb); err != nil {
		t.Fatalf("GrayToRGB() error = %v", err)
	}
	if want := []uint8{7, 7, 7, 200, 200, 200}; !reflect.DeepEqual(rgb, want) {
		t.Errorf("GrayToRGB() = %v, want %v", rgb, want)
	}
	if err := GrayToRGB([]uint8{1, 2}, make([]uint8, 5)); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("GrayToRGB() short buffer error = %v", err)
	}
}

func TestRGBToGray(t *testing.T) {
	gray := make([]uint8, 4)
	rgb := []uint8{
		100, 0, 0,
		0, 100, 0,
		0, 0, 100,
		0, 0, 0,
	}
	if err := RGBToGray(rgb, gray); err != nil {
		t.Fatalf("RGBToGray() error = %v", err)
	}
	if want := []uint8{29, 58, 11, 0}; !reflect.DeepEqual(gray, want) {
		t.Errorf("RGBToGray() = %v, want %v", gray, want)
	}
	if err := RGBToGray(rgb[:5], gray); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("RGBToGray() short buffer error = %v", err)
	}
}

func TestGrayToRGBFlipped(t *testing.T) {
	rgb := make([]uint8, 12)
	if err := GrayToRGBFlipped([]uint8{1, 2, 3, 4}, rgb, 2, 2); err != nil {
		t.Fatalf("GrayToRGBFlipped() error = %v", err)
	}
	want := []uint8{3, 3, 3, 4, 4, 4, 1, 1, 1, 2, 2, 2}
	if !reflect.DeepEqual(rgb, want) {
		t.Errorf("GrayToRGBFlipped() = %v, want %v", rgb, want)
	}
}

func TestRGBToBGR(t *testing.T) {
	src := []uint8{1, 2, 3, 4, 5, 6}
	tests := []struct {
		name       string
		fn         func(rgb, dst []uint8, rows, cols int) error
		rows, cols int
		want       []uint8
	}{
		{"row", RGBToBGR, 1, 2, []uint8{3, 2, 1, 6, 5, 4}},
		{"column flipped", RGBToBGRFlipped, 2, 1, []uint8{6, 5, 4, 3, 2, 1}},
		{"row flipped", RGBToBGRFlipped, 1, 2, []uint8{3, 2, 1, 6, 5, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]uint8, 6)
			if err := tt.fn(src, dst, tt.rows, tt.cols); err != nil {
				t.Fatalf("error = %v", err)
			}
			if !reflect.DeepEqual(dst, tt.want) {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
	if err := RGBToBGR(src, make([]uint8, 3), 1, 2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("RGBToBGR() short buffer error = %v", err)
	}
}

func TestImageConversions(t *testing.T) {
	g := NewGrayImage(1, 2)
	g.SetPixel(0, 1, 42)
	rgb := g.ToRGB()
	if got := rgb.Pixel(0, 1); got != RGB(42, 42, 42) {
		t.Errorf("ToRGB() pixel = %v, want 42 on every channel", got)
	}

	m := NewRGBImage(1, 1)
	m.SetPixel(0, 0, RGB(0, 100, 0))
	if got := m.ToGray().Pixel(0, 0); got != 58 {
		t.Errorf("ToGray() = %d, want 58", got)
	}
}
