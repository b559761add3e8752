package painter

import "testing"

// TestNewCanvasDefault tests the options applied when none are given.
func TestNewCanvasDefault(t *testing.T) {
	img := NewGrayImage(10, 10)
	c := NewCanvas[uint8](img)

	if c.Surface() != Surface[uint8](img) {
		t.Error("Surface() is not the image passed to NewCanvas")
	}
	if c.SigmaScale() != DefaultSigmaScale {
		t.Errorf("SigmaScale() = %v, want %v", c.SigmaScale(), DefaultSigmaScale)
	}
	if c.pointRadius != 1 {
		t.Errorf("pointRadius = %d, want 1", c.pointRadius)
	}
	if c.glyphs != nil {
		t.Error("glyph table resolved before first use")
	}
}

// TestNewCanvasWithGlyphTable tests dependency injection of a glyph table.
func TestNewCanvasWithGlyphTable(t *testing.T) {
	table := testGlyphs()
	c := NewCanvas[uint8](NewGrayImage(10, 10), WithGlyphTable(table))

	got, ok := c.glyphTable().(fakeGlyphs)
	if !ok || len(got) != len(table) {
		t.Errorf("glyphTable() = %T, want the injected table", c.glyphTable())
	}
}

// TestWithSigmaScale tests that only positive scales are accepted.
func TestWithSigmaScale(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2, 2},
		{0.5, 0.5},
		{0, DefaultSigmaScale},
		{-1, DefaultSigmaScale},
	}
	for _, tt := range tests {
		c := NewCanvas[uint8](NewGrayImage(1, 1), WithSigmaScale(tt.in))
		if got := c.SigmaScale(); got != tt.want {
			t.Errorf("WithSigmaScale(%v): SigmaScale() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestWithPointRadius tests that only positive radii are accepted.
func TestWithPointRadius(t *testing.T) {
	if c := NewCanvas[uint8](NewGrayImage(1, 1), WithPointRadius(4)); c.pointRadius != 4 {
		t.Errorf("pointRadius = %d, want 4", c.pointRadius)
	}
	if c := NewCanvas[uint8](NewGrayImage(1, 1), WithPointRadius(-4)); c.pointRadius != 1 {
		t.Errorf("pointRadius = %d, want 1", c.pointRadius)
	}
}

// TestOptionsApplyInOrder tests that later options win.
func TestOptionsApplyInOrder(t *testing.T) {
	c := NewCanvas[uint8](NewGrayImage(1, 1), WithSigmaScale(2), WithSigmaScale(5))
	if c.SigmaScale() != 5 {
		t.Errorf("SigmaScale() = %v, want 5", c.SigmaScale())
	}
}
