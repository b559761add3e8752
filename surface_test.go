package painter

import (
	"sort"
	"testing"
)

type cell struct{ row, col int }

// recorder is a Surface that remembers every write, including writes that
// fall outside its nominal size.
type recorder struct {
	rows, cols int
	writes     map[cell]uint8
	outside    int
}

func newRecorder(rows, cols int) *recorder {
	return &recorder{rows: rows, cols: cols, writes: make(map[cell]uint8)}
}

func (r *recorder) Rows() int { return r.rows }
func (r *recorder) Cols() int { return r.cols }

func (r *recorder) SetPixel(row, col int, v uint8) {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		r.outside++
	}
	r.writes[cell{row, col}] = v
}

func (r *recorder) has(row, col int) bool {
	_, ok := r.writes[cell{row, col}]
	return ok
}

func (r *recorder) cells() []cell {
	out := make([]cell, 0, len(r.writes))
	for c := range r.writes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].row != out[j].row {
			return out[i].row < out[j].row
		}
		return out[i].col < out[j].col
	})
	return out
}

// countSet returns the number of non-zero pixels of g.
func countSet(g *GrayImage) int {
	n := 0
	for _, v := range g.Data() {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestEmptySurfaceDrawsNothing(t *testing.T) {
	var nilImage *GrayImage
	empties := []Surface[uint8]{nilImage, NewGrayImage(0, 10), NewGrayImage(10, -1)}
	for _, s := range empties {
		DrawSolidRectangle(s, 0, 0, 5, 5, 255)
		DrawHollowRectangle(s, 0, 0, 5, 5, 255)
		DrawBresenhamLine(s, 0, 0, 5, 5, 255)
		DrawNaiveLine(s, 0, 0, 5, 5, 255)
		DrawDashedLine(s, 0, 0, 5, 5, 2, 255)
		DrawSolidCircle(s, 2, 2, 2, 255)
		DrawHollowCircle(s, 2, 2, 2, 255)
		DrawMidBresenhamEllipse(s, 2, 2, 2, 1, 255)
	}
}
