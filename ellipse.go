package painter

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultSigmaScale is the confidence scale used for trust-region ellipses
// when none is configured.
const DefaultSigmaScale = 3.0

// trustRegionSweep is the upper bound of the boundary parameter. It falls
// slightly short of 2*pi, so the last few degrees of the outline may stay open.
const trustRegionSweep float32 = 6.28

// DrawMidBresenhamEllipse draws an axis-aligned ellipse centred on
// (cx, cy) with horizontal semi-axis radiusX and vertical semi-axis radiusY
// using the two-region midpoint algorithm. Decision variables are float32.
// Every step paints the four symmetric points about the centre.
// A non-positive semi-axis draws nothing.
func DrawMidBresenhamEllipse[P any](s Surface[P], cx, cy, radiusX, radiusY int, color P) {
	if empty(s) || radiusX <= 0 || radiusY <= 0 {
		return
	}

	plot4 := func(x, y int) {
		s.SetPixel(cy+y, cx+x, color)
		s.SetPixel(cy-y, cx-x, color)
		s.SetPixel(cy-y, cx+x, color)
		s.SetPixel(cy+y, cx-x, color)
	}

	x, y := radiusX, 0
	a := float32(radiusY)
	b := float32(radiusX)
	a2 := a * a
	b2 := b * b
	plot4(x, y)

	// Every product is rounded to float32 before it is summed.
	d1 := b2 + float32(a2*(0.5-b))
	for float32(b2*float32(y+1)) < float32(a2*(float32(x)-0.5)) {
		if d1 <= 0 {
			d1 += float32(b2 * float32(2*y+3))
		} else {
			d1 += float32(b2*float32(2*y+3)) + float32(a2*float32(2-2*x))
			x--
		}
		y++
		plot4(x, y)
	}

	fy := float32(y) + 0.5
	fx := float32(x - 1)
	d2 := float32(float32(b2*fy)*fy) + float32(float32(a2*fx)*fx) - float32(a2*b2)
	for x > 0 {
		if d2 <= 0 {
			d2 += float32(b2*float32(2*y+2)) + float32(a2*float32(3-2*x))
			y++
		} else {
			d2 += float32(a2 * float32(3-2*x))
		}
		x--
		plot4(x, y)
	}
}

// DrawTrustRegionOfGaussian outlines the confidence ellipse of a 2D
// Gaussian with the given mean (X is a column, Y a row) and 2x2 covariance.
//
// The semi-axes are sqrt(eigenvalue) * 0.5 * sigmaScale. The boundary is
// sampled with an angular step of 1/max(a, b) radians so neighbouring
// samples land about one pixel apart, and each sample is rounded half up.
// Non-finite covariances, a failed decomposition or a zero-sized ellipse
// draw nothing.
func DrawTrustRegionOfGaussian[P any](s Surface[P], center r2.Vec, cov mat.Symmetric, color P, sigmaScale float64) {
	if empty(s) || cov == nil || cov.SymmetricDim() != 2 || !finiteSym(cov) {
		return
	}

	var es mat.EigenSym
	if !es.Factorize(cov, true) {
		Logger().Debug("painter: covariance decomposition failed")
		return
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	// Values are ascending: the minor axis b follows the first eigenvector,
	// the major axis a is perpendicular to it.
	cosTheta := float32(vectors.At(0, 0))
	sinTheta := float32(vectors.At(1, 0))
	scale := float32(sigmaScale)
	a := sqrt32(float32(math.Max(values[1], 0))) * 0.5 * scale
	b := sqrt32(float32(math.Max(values[0], 0))) * 0.5 * scale

	step := 1 / max(a, b)
	if math.IsInf(float64(step), 0) || math.IsNaN(float64(step)) {
		Logger().Debug("painter: degenerate trust region", "a", a, "b", b)
		return
	}

	cx := float32(center.X)
	cy := float32(center.Y)
	for angle := float32(0); angle < trustRegionSweep; angle += step {
		cosA := float32(math.Cos(float64(angle)))
		sinA := float32(math.Sin(float64(angle)))
		x := cx + float32(b*cosA*cosTheta) - float32(a*sinA*sinTheta)
		y := cy + float32(b*cosA*sinTheta) + float32(a*sinA*cosTheta)
		s.SetPixel(roundHalfUp(y), roundHalfUp(x), color)
	}
}

// roundHalfUp truncates v and bumps the result when the remaining fraction
// exceeds one half. Negative values are never bumped.
func roundHalfUp(v float32) int {
	i := int(v)
	if v-float32(i) > 0.5 {
		return i + 1
	}
	return i
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func finiteSym(m mat.Symmetric) bool {
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
