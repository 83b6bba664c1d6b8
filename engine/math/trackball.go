package math

import (
	"github.com/chewxy/math32"
)

const (
	// Radius of the virtual trackball in normalised window units.
	TRACKBALL_SIZE float32 = 0.8
	// Number of compositions between renormalisations of the accumulated rotation.
	TRACKBALL_RENORM_COUNT = 97
)

// Trackball turns mouse drags into an accumulated rotation. Coordinates passed to
// it are normalised to [-1, 1] with Y pointing up; see NormalizeMousePosition.
type Trackball struct {
	size     float32
	rotation Quaternion
	count    int

	dragging bool
	lastX    float32
	lastY    float32
}

func NewTrackball() *Trackball {
	return &Trackball{
		size:     TRACKBALL_SIZE,
		rotation: NewQuatIdentity(),
	}
}

// NormalizeMousePosition maps window pixels to [-1, 1] on both axes, Y up.
func NormalizeMousePosition(x, y, width, height float32) (float32, float32) {
	if width == 0 || height == 0 {
		return 0, 0
	}
	return (2*x - width) / width, (height - 2*y) / height
}

// projectToSphere lifts a point onto a sphere of radius r, or onto a hyperbolic
// sheet once the point leaves the sphere's inner region.
func projectToSphere(r, x, y float32) float32 {
	d := math32.Sqrt(x*x + y*y)
	if d < r*K_SQRT_ONE_OVER_TWO {
		return math32.Sqrt(r*r - d*d)
	}
	t := r / K_SQRT_TWO
	return t * t / d
}

/**
 * @brief Computes the rotation that carries the first point to the second on
 * a virtual trackball of the given size. Identical points yield the identity.
 */
func TrackballRotation(p1x, p1y, p2x, p2y, size float32) Quaternion {
	if p1x == p2x && p1y == p2y {
		return NewQuatIdentity()
	}

	p1 := Vec3{p1x, p1y, projectToSphere(size, p1x, p1y)}
	p2 := Vec3{p2x, p2y, projectToSphere(size, p2x, p2y)}

	axis := p1.Cross(p2)
	if axis.LengthSquared() == 0 {
		return NewQuatIdentity()
	}

	t := p1.Sub(p2).Length() / (2.0 * size)
	t = Clamp(t, -1.0, 1.0)
	phi := 2.0 * math32.Asin(t)

	return NewQuatFromAxisAngle(axis, phi, true)
}

// Begin anchors a drag at the given normalised point.
func (tb *Trackball) Begin(x, y float32) {
	tb.dragging = true
	tb.lastX, tb.lastY = x, y
}

// Drag composes the rotation from the previous point to (x, y). It does nothing
// when no drag is in progress.
func (tb *Trackball) Drag(x, y float32) {
	if !tb.dragging {
		return
	}
	tb.Compose(TrackballRotation(tb.lastX, tb.lastY, x, y, tb.size))
	tb.lastX, tb.lastY = x, y
}

func (tb *Trackball) End() {
	tb.dragging = false
}

func (tb *Trackball) IsDragging() bool {
	return tb.dragging
}

// Compose applies increment after the rotation accumulated so far.
func (tb *Trackball) Compose(increment Quaternion) {
	tb.rotation = increment.Mul(tb.rotation)
	tb.count++
	if tb.count > TRACKBALL_RENORM_COUNT {
		tb.count = 0
		tb.rotation = tb.rotation.Normalize()
	}
}

func (tb *Trackball) Rotation() Quaternion {
	return tb.rotation
}

func (tb *Trackball) Matrix() Mat4 {
	return tb.rotation.ToMat4()
}

func (tb *Trackball) Reset() {
	tb.rotation = NewQuatIdentity()
	tb.count = 0
	tb.dragging = false
}
