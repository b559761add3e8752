package painter

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/imgpaint/painter/camera"
)

// RenderTextInCameraView draws text anchored at the projection of the world
// point pw. Nothing is drawn when pw is not in front of the camera.
func (c *Canvas[P]) RenderTextInCameraView(cam camera.View, pw r3.Vec, text string, color P, fontSize int) {
	px, ok := cam.ProjectPoint(pw)
	if !ok {
		return
	}
	col, row, ok := camera.Truncate(px)
	if !ok {
		return
	}
	c.DrawString(text, col, row, color, fontSize)
}

// RenderPointInCameraView draws a solid disc of the given radius at the
// projection of pw. A non-positive radius draws nothing.
func (c *Canvas[P]) RenderPointInCameraView(cam camera.View, pw r3.Vec, color P, radius int) {
	if radius <= 0 {
		return
	}
	px, ok := cam.ProjectPoint(pw)
	if !ok {
		return
	}
	col, row, ok := camera.Truncate(px)
	if !ok {
		return
	}
	DrawSolidCircle(c.surface, col, row, radius, color)
}

// RenderLineSegmentInCameraView draws the world segment start-end with the
// Bresenham rasterizer after clipping it at the camera near plane.
func (c *Canvas[P]) RenderLineSegmentInCameraView(cam camera.View, start, end r3.Vec, color P) {
	x1, y1, x2, y2, ok := projectSegment(cam, start, end)
	if !ok {
		return
	}
	DrawBresenhamLine(c.surface, x1, y1, x2, y2, color)
}

// RenderDashedLineSegmentInCameraView is RenderLineSegmentInCameraView with
// the dashed rasterizer, painting every dotStep-th pixel.
func (c *Canvas[P]) RenderDashedLineSegmentInCameraView(cam camera.View, start, end r3.Vec, dotStep int, color P) {
	x1, y1, x2, y2, ok := projectSegment(cam, start, end)
	if !ok {
		return
	}
	DrawDashedLine(c.surface, x1, y1, x2, y2, dotStep, color)
}

// RenderEllipseInCameraView projects a world Gaussian (mean and 3x3
// covariance) into the image and outlines its trust region at the canvas
// sigma scale. The ellipse is skipped entirely when the mean is not in
// front of the camera.
func (c *Canvas[P]) RenderEllipseInCameraView(cam camera.View, mean r3.Vec, cov mat.Symmetric, color P) {
	center, cov2, ok := cam.ProjectGaussian(mean, cov)
	if !ok {
		Logger().Debug("painter: ellipse mean not visible", "mean", mean)
		return
	}
	DrawTrustRegionOfGaussian(c.surface, center, cov2, color, c.sigmaScale)
}

func projectSegment(cam camera.View, start, end r3.Vec) (x1, y1, x2, y2 int, ok bool) {
	var pi, pj r2.Vec
	if pi, pj, ok = cam.ProjectSegment(start, end); !ok {
		return 0, 0, 0, 0, false
	}
	x1, y1, ok1 := camera.Truncate(pi)
	x2, y2, ok2 := camera.Truncate(pj)
	return x1, y1, x2, y2, ok1 && ok2
}
