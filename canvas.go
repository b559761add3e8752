package painter

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/imgpaint/painter/font"
)

// Canvas binds a Surface to the collaborators the higher-level drawing
// calls need: a glyph table for text and the trust-region scale for
// ellipses. A Canvas holds no pixel state of its own and is not safe for
// concurrent use on the same surface.
type Canvas[P any] struct {
	surface     Surface[P]
	glyphs      GlyphTable
	sigmaScale  float64
	pointRadius int
}

// NewCanvas creates a canvas that paints onto s.
func NewCanvas[P any](s Surface[P], opts ...CanvasOption) *Canvas[P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas[P]{
		surface:     s,
		glyphs:      o.glyphs,
		sigmaScale:  o.sigmaScale,
		pointRadius: o.pointRadius,
	}
}

// Surface returns the surface the canvas paints onto.
func (c *Canvas[P]) Surface() Surface[P] {
	return c.surface
}

// SigmaScale returns the configured trust-region confidence scale.
func (c *Canvas[P]) SigmaScale() float64 {
	return c.sigmaScale
}

// PointRadius returns the marker radius configured with WithPointRadius.
func (c *Canvas[P]) PointRadius() int {
	return c.pointRadius
}

// glyphTable returns the injected table or the built-in ASCII table.
func (c *Canvas[P]) glyphTable() GlyphTable {
	if c.glyphs == nil {
		c.glyphs = font.ASCII()
	}
	return c.glyphs
}

// DrawSolidRectangle fills a rectangle. See the package function.
func (c *Canvas[P]) DrawSolidRectangle(x, y, width, height int, color P) {
	DrawSolidRectangle(c.surface, x, y, width, height, color)
}

// DrawHollowRectangle outlines a rectangle. See the package function.
func (c *Canvas[P]) DrawHollowRectangle(x, y, width, height int, color P) {
	DrawHollowRectangle(c.surface, x, y, width, height, color)
}

// DrawBresenhamLine draws an integer Bresenham line.
func (c *Canvas[P]) DrawBresenhamLine(x1, y1, x2, y2 int, color P) {
	DrawBresenhamLine(c.surface, x1, y1, x2, y2, color)
}

// DrawNaiveLine draws an interpolated line.
func (c *Canvas[P]) DrawNaiveLine(x1, y1, x2, y2 int, color P) {
	DrawNaiveLine(c.surface, x1, y1, x2, y2, color)
}

// DrawDashedLine draws every step-th pixel of an interpolated line.
func (c *Canvas[P]) DrawDashedLine(x1, y1, x2, y2, step int, color P) {
	DrawDashedLine(c.surface, x1, y1, x2, y2, step, color)
}

// DrawSolidCircle fills a circle.
func (c *Canvas[P]) DrawSolidCircle(cx, cy, radius int, color P) {
	DrawSolidCircle(c.surface, cx, cy, radius, color)
}

// DrawHollowCircle outlines a circle.
func (c *Canvas[P]) DrawHollowCircle(cx, cy, radius int, color P) {
	DrawHollowCircle(c.surface, cx, cy, radius, color)
}

// DrawMidBresenhamEllipse outlines an axis-aligned ellipse.
func (c *Canvas[P]) DrawMidBresenhamEllipse(cx, cy, radiusX, radiusY int, color P) {
	DrawMidBresenhamEllipse(c.surface, cx, cy, radiusX, radiusY, color)
}

// DrawTrustRegionOfGaussian outlines a Gaussian confidence ellipse at the
// canvas sigma scale.
func (c *Canvas[P]) DrawTrustRegionOfGaussian(center r2.Vec, cov mat.Symmetric, color P) {
	DrawTrustRegionOfGaussian(c.surface, center, cov, color, c.sigmaScale)
}
