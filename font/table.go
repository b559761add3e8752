package font

import (
	"fmt"
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// inkThreshold is the minimum coverage for a pixel to become a set bit.
const inkThreshold = 0x80

// Table is an immutable set of glyph bitmaps keyed by font size and
// character index. The zero value and nil are valid empty tables.
type Table struct {
	glyphs map[int][][]byte
}

// Glyph returns the bitmap of character ' '+index at the given size, or nil
// when the table has none. The returned slice must not be modified.
func (t *Table) Glyph(size, index int) []byte {
	if t == nil {
		return nil
	}
	g := t.glyphs[NormalizeSize(size)]
	if index < 0 || index >= len(g) {
		return nil
	}
	return g[index]
}

// NewTable builds a table from raw glyph data. glyphs maps each font size
// to GlyphCount bitmaps of BitmapLen(size) bytes. The data is copied.
func NewTable(glyphs map[int][][]byte) (*Table, error) {
	t := &Table{glyphs: make(map[int][][]byte, len(glyphs))}
	for size, set := range glyphs {
		if NormalizeSize(size) != size {
			return nil, fmt.Errorf("%w: unsupported size %d", ErrInvalidTable, size)
		}
		if len(set) != GlyphCount {
			return nil, fmt.Errorf("%w: size %d has %d glyphs, want %d", ErrInvalidTable, size, len(set), GlyphCount)
		}
		n := BitmapLen(size)
		cp := make([][]byte, GlyphCount)
		for i, g := range set {
			if len(g) != n {
				return nil, fmt.Errorf("%w: glyph %q at size %d has %d bytes, want %d",
					ErrInvalidTable, rune(' '+i), size, len(g), n)
			}
			cp[i] = append([]byte(nil), g...)
		}
		t.glyphs[size] = cp
	}
	return t, nil
}

// Parse rasterizes the printable ASCII range of a TrueType or OpenType
// font into a table with every supported size.
func Parse(data []byte) (*Table, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	t := &Table{glyphs: make(map[int][][]byte, len(Sizes))}
	for _, size := range Sizes {
		set, err := rasterize(f, size)
		if err != nil {
			return nil, err
		}
		t.glyphs[size] = set
	}
	return t, nil
}

var (
	asciiOnce  sync.Once
	asciiTable *Table
)

// ASCII returns the built-in table rasterized from Go Mono. It is built on
// first use. If the embedded font cannot be parsed the table is empty and
// text draws nothing.
func ASCII() *Table {
	asciiOnce.Do(func() {
		t, err := Parse(gomono.TTF)
		if err != nil {
			logger().Error("font: building ASCII table", "err", err)
			asciiTable = &Table{}
			return
		}
		logger().Info("font: ASCII table ready", "sizes", len(t.glyphs), "glyphs", GlyphCount)
		asciiTable = t
	})
	return asciiTable
}

// rasterize draws every printable character into a Size/2 x Size cell and
// packs the coverage into column-major bitmaps.
func rasterize(f *opentype.Font, size int) ([][]byte, error) {
	w, h := Advance(size), size
	face, err := fitFace(f, w, h)
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := ascent + (h-ascent-descent)/2
	if baseline > h-descent {
		baseline = h - descent
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	set := make([][]byte, GlyphCount)
	for i := range set {
		clear(dst.Pix)
		r := rune(' ' + i)
		adv, _ := face.GlyphAdvance(r)
		d := xfont.Drawer{
			Dst:  dst,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.Point26_6{X: (fixed.I(w) - adv) / 2, Y: fixed.I(baseline)},
		}
		d.DrawString(string(r))
		set[i] = pack(dst, size)
	}
	logger().Debug("font: rasterized size", "size", size, "ascent", ascent, "descent", descent)
	return set, nil
}

// fitFace returns a face of f scaled so that a monospaced advance fits in
// w pixels and ascent plus descent fits in h pixels.
func fitFace(f *opentype.Font, w, h int) (xfont.Face, error) {
	opts := &opentype.FaceOptions{Size: float64(h), DPI: 72, Hinting: xfont.HintingFull}
	unscaled, err := opentype.NewFace(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	adv, _ := unscaled.GlyphAdvance('M')
	m := unscaled.Metrics()
	_ = unscaled.Close()

	scale := 1.0
	if a := fixedToFloat64(adv); a > float64(w) {
		scale = float64(w) / a
	}
	if v := fixedToFloat64(m.Ascent + m.Descent); v*scale > float64(h) {
		scale = float64(h) / v
	}

	opts.Size = float64(h) * scale
	face, err := opentype.NewFace(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return face, nil
}

// pack converts the coverage mask into the column-major bit layout.
func pack(mask *image.Alpha, size int) []byte {
	bpc := BytesPerColumn(size)
	out := make([]byte, BitmapLen(size))
	for col := 0; col < Advance(size); col++ {
		for row := 0; row < size; row++ {
			if mask.AlphaAt(col, row).A >= inkThreshold {
				out[col*bpc+row/8] |= 0x80 >> (row % 8)
			}
		}
	}
	return out
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
