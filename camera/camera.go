// Package camera projects world-frame geometry into pixel coordinates with
// a pinhole camera model.
//
// A View holds the intrinsics (focal lengths Fx, Fy and principal point
// Cx, Cy) and the pose of the camera in the world: its origin PWC and the
// unit quaternion QWC whose rotation takes camera axes into the world frame.
// A world point p is seen in the camera frame as conj(QWC) * (p - PWC).
//
// Geometry closer to the image plane than MinValidDepth is not projected:
// single points are dropped, segments are clipped at the near plane and
// Gaussians are dropped when their mean is too close.
package camera

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// MinValidDepth is the nearest camera-frame depth that is projected.
const MinValidDepth = 0.1

// View is a pinhole camera: intrinsics plus the camera pose in the world.
type View struct {
	Fx, Fy float64
	Cx, Cy float64

	// PWC is the camera origin in the world frame.
	PWC r3.Vec
	// QWC rotates camera-frame vectors into the world frame.
	// It must be a unit quaternion; this is not checked. The zero value
	// is treated as the identity.
	QWC quat.Number
}

// Identity is the unit quaternion with no rotation.
var Identity = quat.Number{Real: 1}

// NewView returns a view at the world origin looking down +Z.
func NewView(fx, fy, cx, cy float64) View {
	return View{Fx: fx, Fy: fy, Cx: cx, Cy: cy, QWC: Identity}
}

// ToCamera transforms a world point into the camera frame.
func (v View) ToCamera(pw r3.Vec) r3.Vec {
	return r3.Rotation(quat.Conj(v.rotation())).Rotate(r3.Sub(pw, v.PWC))
}

// Pixel projects a camera-frame point onto the image plane. The result is
// (column, row) as floats; it is meaningless when pc is not Valid.
func (v View) Pixel(pc r3.Vec) r2.Vec {
	return r2.Vec{
		X: pc.X/pc.Z*v.Fx + v.Cx,
		Y: pc.Y/pc.Z*v.Fy + v.Cy,
	}
}

// Valid reports whether a camera-frame point lies at or beyond the near plane.
func Valid(pc r3.Vec) bool {
	return pc.Z >= MinValidDepth
}

// ProjectPoint projects a world point. ok is false when the point is too
// close to or behind the camera.
func (v View) ProjectPoint(pw r3.Vec) (px r2.Vec, ok bool) {
	pc := v.ToCamera(pw)
	if !Valid(pc) {
		return r2.Vec{}, false
	}
	return v.Pixel(pc), true
}

// ClipSegment clips the camera-frame segment pi-pj against the near plane.
// When exactly one endpoint is in front of the plane, the other is moved to
// where the segment crosses it. ok is false when both endpoints are behind.
func ClipSegment(pi, pj r3.Vec) (ci, cj r3.Vec, ok bool) {
	vi, vj := Valid(pi), Valid(pj)
	switch {
	case !vi && !vj:
		return pi, pj, false
	case vi && vj:
		return pi, pj, true
	}

	w := (pi.Z - MinValidDepth) / (pi.Z - pj.Z)
	mid := r3.Add(r3.Scale(w, pj), r3.Scale(1-w, pi))
	if !vi {
		return mid, pj, true
	}
	return pi, mid, true
}

// ProjectSegment clips the world segment pwi-pwj at the near plane and
// projects both endpoints. ok is false when nothing of it is visible.
func (v View) ProjectSegment(pwi, pwj r3.Vec) (pxi, pxj r2.Vec, ok bool) {
	ci, cj, ok := ClipSegment(v.ToCamera(pwi), v.ToCamera(pwj))
	if !ok {
		return r2.Vec{}, r2.Vec{}, false
	}
	return v.Pixel(ci), v.Pixel(cj), true
}

// Focal returns the focal length shared by both axes when propagating
// covariances: the mean of Fx and Fy.
func (v View) Focal() float64 {
	return 0.5 * (v.Fx + v.Fy)
}

// RotationMatrix returns the 3x3 matrix of QWC, camera to world.
func (v View) RotationMatrix() *mat.Dense {
	rot := r3.Rotation(v.rotation())
	m := mat.NewDense(3, 3, nil)
	for j, axis := range [...]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		col := rot.Rotate(axis)
		m.Set(0, j, col.X)
		m.Set(1, j, col.Y)
		m.Set(2, j, col.Z)
	}
	return m
}

// ProjectGaussian projects a world-frame Gaussian with the given mean and
// 3x3 covariance into a pixel-space Gaussian.
//
// The covariance is rotated into the camera frame and pushed through the
// Jacobian of the projection, evaluated at the mean with the shared focal
// length. ok is false when the mean is not in front of the near plane;
// there is no partial clipping of ellipsoids.
func (v View) ProjectGaussian(mean r3.Vec, cov mat.Symmetric) (center r2.Vec, cov2 *mat.SymDense, ok bool) {
	if cov == nil || cov.SymmetricDim() != 3 {
		return r2.Vec{}, nil, false
	}
	pc := v.ToCamera(mean)
	if !Valid(pc) {
		return r2.Vec{}, nil, false
	}

	rwc := v.RotationMatrix()
	var rotated, covC mat.Dense
	rotated.Mul(rwc.T(), cov)
	covC.Mul(&rotated, rwc)

	focal := v.Focal()
	invDepth := 1 / pc.Z
	jac := mat.NewDense(2, 3, nil)
	if !math.IsNaN(invDepth) && !math.IsInf(invDepth, 0) {
		invDepth2 := invDepth * invDepth
		jac.Set(0, 0, invDepth*focal)
		jac.Set(0, 2, -pc.X*invDepth2*focal)
		jac.Set(1, 1, invDepth*focal)
		jac.Set(1, 2, -pc.Y*invDepth2*focal)
	}

	var tmp, out mat.Dense
	tmp.Mul(jac, &covC)
	out.Mul(&tmp, jac.T())

	off := 0.5 * (out.At(0, 1) + out.At(1, 0))
	cov2 = mat.NewSymDense(2, []float64{out.At(0, 0), off, off, out.At(1, 1)})
	center = r2.Vec{
		X: pc.X*invDepth*focal + v.Cx,
		Y: pc.Y*invDepth*focal + v.Cy,
	}
	return center, cov2, true
}

// Truncate converts a projected pixel to integer (column, row) by
// truncation toward zero. ok is false for non-finite coordinates.
func Truncate(px r2.Vec) (col, row int, ok bool) {
	if !finite(px.X) || !finite(px.Y) {
		return 0, 0, false
	}
	return int(px.X), int(px.Y), true
}

// rotation returns QWC, treating the zero quaternion as the identity.
func (v View) rotation() quat.Number {
	if v.QWC == (quat.Number{}) {
		return Identity
	}
	return v.QWC
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
