package painter

import "github.com/imgpaint/painter/font"

// GlyphTable looks up the bitmap of a printable ASCII character.
//
// index is the character minus ' ' and lies in [0, 95). fontSize is one of
// 12, 16 or 24. The returned bitmap is column-major: each column of the
// glyph takes ceil(fontSize/8) bytes, most significant bit on top, and the
// glyph is fontSize/2 columns wide. A nil or short result is treated as
// blank.
type GlyphTable interface {
	Glyph(fontSize, index int) []byte
}

// DrawCharacter paints the glyph of ch with its top-left corner at column x
// and row y. Unsupported font sizes fall back to 12. Characters outside the
// printable ASCII range draw nothing.
func (c *Canvas[P]) DrawCharacter(ch byte, x, y int, color P, fontSize int) {
	if empty(c.surface) {
		return
	}
	fontSize = font.NormalizeSize(fontSize)
	idx := int(ch) - ' '
	if idx < 0 || idx >= font.GlyphCount {
		return
	}
	bitmap := c.glyphTable().Glyph(fontSize, idx)
	size := font.BitmapLen(fontSize)

	y0 := y
	for i := 0; i < size && i < len(bitmap); i++ {
		item := bitmap[i]
		for j := 0; j < 8; j++ {
			if item&0x80 != 0 {
				c.surface.SetPixel(y, x, color)
			}
			item <<= 1
			y++
			if y-y0 == fontSize {
				y = y0
				x++
				break
			}
		}
	}
}

// DrawString paints text left to right starting at column x and row y,
// advancing fontSize/2 pixels per character. There is no kerning and no
// wrapping; characters running off the surface are clipped by the surface.
//
// Text is folded to printable ASCII first: accents are stripped and any
// other character becomes '?'.
func (c *Canvas[P]) DrawString(text string, x, y int, color P, fontSize int) {
	if empty(c.surface) {
		return
	}
	fontSize = font.NormalizeSize(fontSize)
	dx := font.Advance(fontSize)
	folded := font.Fold(text)
	for i := 0; i < len(folded); i++ {
		c.DrawCharacter(folded[i], x, y, color, fontSize)
		x += dx
	}
}
