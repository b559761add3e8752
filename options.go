package painter

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default glyph table and sigma scale
//	c := painter.NewCanvas[uint8](img)
//
//	// Custom glyph table (dependency injection)
//	c := painter.NewCanvas[uint8](img, painter.WithGlyphTable(table))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	glyphs      GlyphTable
	sigmaScale  float64
	pointRadius int
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		glyphs:      nil, // resolved to font.ASCII on first use
		sigmaScale:  DefaultSigmaScale,
		pointRadius: 1,
	}
}

// WithGlyphTable sets the glyph table used by DrawCharacter and DrawString.
// A nil table keeps the built-in ASCII table.
func WithGlyphTable(t GlyphTable) CanvasOption {
	return func(o *canvasOptions) {
		o.glyphs = t
	}
}

// WithSigmaScale sets the confidence scale of trust-region ellipses drawn
// by DrawTrustRegionOfGaussian and RenderEllipseInCameraView.
// Non-positive values are ignored.
func WithSigmaScale(scale float64) CanvasOption {
	return func(o *canvasOptions) {
		if scale > 0 {
			o.sigmaScale = scale
		}
	}
}

// WithPointRadius sets the default marker radius reported by
// Canvas.PointRadius, for callers whose points carry no radius.
func WithPointRadius(radius int) CanvasOption {
	return func(o *canvasOptions) {
		if radius > 0 {
			o.pointRadius = radius
		}
	}
}
