// Package font provides the fixed-cell bitmap glyphs used by painter to
// draw text.
//
// A glyph table holds the 95 printable ASCII characters (' ' to '~') at
// three sizes: 12, 16 and 24 pixels high. A glyph is Size/2 pixels wide and
// is stored column by column, each column taking ceil(Size/8) bytes with
// the most significant bit on top.
//
// The built-in table returned by ASCII is rasterized once from the Go Mono
// TrueType font and is read-only afterwards, so it may be shared freely
// between goroutines.
package font

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// GlyphCount is the number of printable ASCII characters in a table.
const GlyphCount = 95

// DefaultSize is the font size used when an unsupported size is requested.
const DefaultSize = 12

// Sizes lists the supported font sizes in pixels.
var Sizes = [...]int{12, 16, 24}

// Errors returned when building tables.
var (
	// ErrInvalidTable is returned when glyph data has the wrong shape.
	ErrInvalidTable = errors.New("font: invalid glyph table")

	// ErrParse is returned when a TrueType font cannot be used.
	ErrParse = errors.New("font: cannot parse font")
)

// NormalizeSize maps size to a supported font size, falling back to
// DefaultSize.
func NormalizeSize(size int) int {
	for _, s := range Sizes {
		if s == size {
			return size
		}
	}
	return DefaultSize
}

// BitmapLen returns the number of bytes in one glyph of the given size.
func BitmapLen(size int) int {
	return BytesPerColumn(size) * Advance(size)
}

// BytesPerColumn returns ceil(size/8).
func BytesPerColumn(size int) int {
	n := size >> 3
	if size%8 != 0 {
		n++
	}
	return n
}

// Advance returns the glyph width, which is also the pen advance, in pixels.
func Advance(size int) int {
	return size >> 1
}

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used while building glyph tables.
// painter.SetLogger forwards its logger here.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	return loggerPtr.Load()
}
