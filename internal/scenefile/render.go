package scenefile

import (
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/imgpaint/painter"
	"github.com/imgpaint/painter/camera"
)

// View returns the camera described by c. A missing rotation is the
// identity and a missing position is the world origin.
func (c Camera) View() camera.View {
	v := camera.NewView(c.Fx, c.Fy, c.Cx, c.Cy)
	if len(c.Position) == 3 {
		v.PWC = vec3(c.Position)
	}
	if len(c.Rotation) == 4 {
		v.QWC = quat.Number{Real: c.Rotation[0], Imag: c.Rotation[1], Jmag: c.Rotation[2], Kmag: c.Rotation[3]}
	}
	return v
}

// Render draws s into a new RGB image. 2D shapes are painted first, then
// ellipses, segments, points and labels, so markers stay on top.
func Render(s *Scene, opts ...painter.CanvasOption) (*painter.RGBImage, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	img := painter.NewRGBImage(s.Height, s.Width)
	img.Fill(colorOr(s.Background, painter.Black))

	if s.SigmaScale > 0 {
		opts = append(opts, painter.WithSigmaScale(s.SigmaScale))
	}
	if s.PointRadius > 0 {
		opts = append(opts, painter.WithPointRadius(s.PointRadius))
	}
	c := painter.NewCanvas[painter.RGBPixel](img, opts...)
	cam := s.Camera.View()

	for _, sh := range s.Shapes {
		drawShape(c, sh, s.FontSize)
	}
	for _, e := range s.Ellipses {
		cov := mat.NewSymDense(3, symmetrize(e.Covariance, 3))
		c.RenderEllipseInCameraView(cam, vec3(e.Mean), cov, colorOr(e.Color, painter.White))
	}
	for _, seg := range s.Segments {
		col := colorOr(seg.Color, painter.White)
		if seg.DotStep > 0 {
			c.RenderDashedLineSegmentInCameraView(cam, vec3(seg.Start), vec3(seg.End), seg.DotStep, col)
			continue
		}
		c.RenderLineSegmentInCameraView(cam, vec3(seg.Start), vec3(seg.End), col)
	}
	for _, p := range s.Points {
		radius := p.Radius
		if radius == 0 {
			radius = c.PointRadius()
		}
		c.RenderPointInCameraView(cam, vec3(p.Position), colorOr(p.Color, painter.White), radius)
	}
	for _, t := range s.Texts {
		size := t.Size
		if size == 0 {
			size = s.FontSize
		}
		c.RenderTextInCameraView(cam, vec3(t.Position), t.Text, colorOr(t.Color, painter.White), size)
	}

	painter.Logger().Debug("scene rendered",
		"width", s.Width, "height", s.Height,
		"shapes", len(s.Shapes), "points", len(s.Points),
		"segments", len(s.Segments), "texts", len(s.Texts), "ellipses", len(s.Ellipses))
	return img, nil
}

func drawShape(c *painter.Canvas[painter.RGBPixel], sh Shape, fontSize int) {
	col := colorOr(sh.Color, painter.White)
	switch sh.Kind {
	case KindRectangle:
		c.DrawSolidRectangle(sh.X, sh.Y, sh.Width, sh.Height, col)
	case KindHollowRectangle:
		c.DrawHollowRectangle(sh.X, sh.Y, sh.Width, sh.Height, col)
	case KindLine:
		c.DrawBresenhamLine(sh.X, sh.Y, sh.X2, sh.Y2, col)
	case KindNaiveLine:
		c.DrawNaiveLine(sh.X, sh.Y, sh.X2, sh.Y2, col)
	case KindDashedLine:
		c.DrawDashedLine(sh.X, sh.Y, sh.X2, sh.Y2, sh.Step, col)
	case KindCircle:
		c.DrawSolidCircle(sh.X, sh.Y, sh.Radius, col)
	case KindHollowCircle:
		c.DrawHollowCircle(sh.X, sh.Y, sh.Radius, col)
	case KindEllipse:
		c.DrawMidBresenhamEllipse(sh.X, sh.Y, sh.RX, sh.RY, col)
	case KindGaussian:
		xx, xy, yy := sh.Covariance[0], sh.Covariance[1], sh.Covariance[2]
		cov := mat.NewSymDense(2, []float64{xx, xy, xy, yy})
		c.DrawTrustRegionOfGaussian(r2.Vec{X: float64(sh.X), Y: float64(sh.Y)}, cov, col)
	case KindText:
		size := sh.Size
		if size == 0 {
			size = fontSize
		}
		c.DrawString(sh.Text, sh.X, sh.Y, col, size)
	}
}

func parseColor(s string) (painter.RGBPixel, bool) {
	return painter.ParseColor(strings.ToLower(strings.TrimSpace(s)))
}

func colorOr(s string, fallback painter.RGBPixel) painter.RGBPixel {
	if s == "" {
		return fallback
	}
	if c, ok := parseColor(s); ok {
		return c
	}
	return fallback
}

func vec3(v []float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// symmetrize averages a row-major n x n matrix with its transpose.
func symmetrize(v []float64, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = 0.5 * (v[i*n+j] + v[j*n+i])
		}
	}
	return out
}
