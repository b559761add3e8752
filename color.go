package painter

import "image/color"

// RGBPixel is an opaque 8-bit RGB color.
type RGBPixel struct {
	R, G, B uint8
}

// Color converts the pixel to the standard color.Color interface.
func (c RGBPixel) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Gray returns the luma of c using the 0.299/0.587/0.114 weights.
func (c RGBPixel) Gray() uint8 {
	return uint8(float32(c.R)*0.299 + float32(c.G)*0.587 + float32(c.B)*0.114)
}

// RGB creates a pixel from its components.
func RGB(r, g, b uint8) RGBPixel {
	return RGBPixel{R: r, G: g, B: b}
}

// Hex creates a pixel from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// The second return value is false when the string cannot be parsed.
func Hex(hex string) (RGBPixel, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	ok := true
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	default:
		return Black, false
	}
	if !ok {
		return Black, false
	}
	return RGBPixel{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black     = RGB(0, 0, 0)
	White     = RGB(255, 255, 255)
	Gray      = RGB(127, 127, 127)
	Red       = RGB(255, 0, 0)
	Green     = RGB(0, 255, 0)
	Blue      = RGB(0, 0, 255)
	Yellow    = RGB(255, 255, 0)
	Cyan      = RGB(0, 255, 255)
	Magenta   = RGB(255, 0, 255)
	Violet    = RGB(238, 130, 238)
	OrangeRed = RGB(255, 69, 0)
)

// namedColors maps lower-case color names to their values.
var namedColors = map[string]RGBPixel{
	"black":     Black,
	"white":     White,
	"gray":      Gray,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"cyan":      Cyan,
	"magenta":   Magenta,
	"violet":    Violet,
	"orangered": OrangeRed,
}

// ParseColor accepts a color name ("red", "orangered", ...) or a hex string.
func ParseColor(s string) (RGBPixel, bool) {
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	return Hex(s)
}
