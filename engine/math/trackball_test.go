package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestQuaternionMulMatchesHamiltonProduct(t *testing.T) {
	a := NewQuatFromAxisAngle(Vec3{1, 2, 3}, 0.8, true)
	b := NewQuatFromAxisAngle(Vec3{-1, 0, 1}, -1.3, true)

	ga := mgl32.QuatRotate(0.8, mgl32.Vec3{1, 2, 3}.Normalize())
	gb := mgl32.QuatRotate(-1.3, mgl32.Vec3{-1, 0, 1}.Normalize())
	expected := ga.Mul(gb)

	actual := a.Mul(b)
	assert.InDeltaSlice(t,
		[]float32{expected.V[0], expected.V[1], expected.V[2], expected.W},
		[]float32{actual.X, actual.Y, actual.Z, actual.W}, tolerance)
}

func TestQuaternionToMat4(t *testing.T) {
	q := NewQuatFromAxisAngle(Vec3{0.3, -1, 0.5}, 2.1, true)
	expected := mgl32.QuatRotate(2.1, mgl32.Vec3{0.3, -1, 0.5}.Normalize()).Mat4()
	assertMat4(t, expected, q.ToMat4())

	assertMat4(t, mgl32.Ident4(), NewQuatIdentity().ToMat4())
	assertMat4(t, mgl32.HomogRotate3DY(0.6), NewQuatFromAxisAngle(NewVec3Up(), 0.6, false).ToMat4())
}

func TestQuaternionProductComposesMatrices(t *testing.T) {
	a := NewQuatFromAxisAngle(Vec3{1, 0, 0}, 0.4, false)
	b := NewQuatFromAxisAngle(Vec3{0, 0, 1}, 1.2, false)

	// a.Mul(b) applies b first, so its matrix is b's followed by a's.
	expected := b.ToMat4().Mul(a.ToMat4())
	assert.True(t, expected.Compare(a.Mul(b).ToMat4(), tolerance))
}

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternion{2, 0, 0, 0}.Normalize()
	assert.InDelta(t, 1.0, q.Normal(), tolerance)
	assert.Equal(t, NewQuatIdentity(), Quaternion{}.Normalize())
}

func TestNormalizeMousePosition(t *testing.T) {
	x, y := NormalizeMousePosition(480, 320, 960, 640)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	x, y = NormalizeMousePosition(0, 0, 960, 640)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)

	x, y = NormalizeMousePosition(960, 640, 960, 640)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(-1), y)

	x, y = NormalizeMousePosition(10, 10, 0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestTrackballRotationIdenticalPoints(t *testing.T) {
	assert.Equal(t, NewQuatIdentity(), TrackballRotation(0.2, -0.4, 0.2, -0.4, TRACKBALL_SIZE))
}

func TestTrackballRotationFollowsDrag(t *testing.T) {
	q := TrackballRotation(0, 0, 0.1, 0, TRACKBALL_SIZE)

	// dragging right turns the front of the model toward +X about +Y
	front := Vec3{0, 0, 1}.Transform(q.ToMat4())
	assert.Greater(t, front.X, float32(0))
	assert.InDelta(t, 0, front.Y, tolerance)

	p1 := Vec3{0, 0, TRACKBALL_SIZE}
	p2 := Vec3{0.1, 0, math32.Sqrt(TRACKBALL_SIZE*TRACKBALL_SIZE - 0.01)}
	phi := 2 * math32.Asin(p1.Sub(p2).Length()/(2*TRACKBALL_SIZE))
	assert.InDelta(t, math32.Cos(phi/2), q.W, tolerance)
	assert.InDelta(t, math32.Sin(phi/2), q.Y, tolerance)

	// dragging up tips the front toward +Y
	front = Vec3{0, 0, 1}.Transform(TrackballRotation(0, 0, 0, 0.1, TRACKBALL_SIZE).ToMat4())
	assert.Greater(t, front.Y, float32(0))
}

func TestTrackballRotationOutsideSphere(t *testing.T) {
	q := TrackballRotation(0.9, 0.9, -0.9, 0.9, TRACKBALL_SIZE)
	assert.InDelta(t, 1.0, q.Normal(), tolerance)
	assert.False(t, q.Compare(NewQuatIdentity(), tolerance))
}

func TestTrackballCompositionIsAssociative(t *testing.T) {
	a := TrackballRotation(0, 0, 0.2, 0.1, TRACKBALL_SIZE)
	b := TrackballRotation(0.2, 0.1, 0.1, 0.5, TRACKBALL_SIZE)
	c := TrackballRotation(0.1, 0.5, -0.3, 0.2, TRACKBALL_SIZE)

	tb := NewTrackball()
	tb.Compose(a)
	tb.Compose(b)
	tb.Compose(c)

	left := c.Mul(b).Mul(a)
	right := c.Mul(b.Mul(a))
	assert.True(t, left.Compare(right, tolerance))
	assert.True(t, tb.Rotation().Compare(left, tolerance))
	assert.True(t, tb.Matrix().Compare(a.ToMat4().Mul(b.ToMat4()).Mul(c.ToMat4()), tolerance))
}

func TestTrackballDragSequence(t *testing.T) {
	tb := NewTrackball()

	tb.Drag(0.5, 0.5)
	assert.Equal(t, NewQuatIdentity(), tb.Rotation(), "drag without an anchor")

	tb.Begin(0, 0)
	assert.True(t, tb.IsDragging())
	tb.Drag(0.1, 0)
	tb.Drag(0.2, 0.1)
	tb.End()
	assert.False(t, tb.IsDragging())

	expected := TrackballRotation(0.1, 0, 0.2, 0.1, TRACKBALL_SIZE).Mul(TrackballRotation(0, 0, 0.1, 0, TRACKBALL_SIZE))
	assert.True(t, tb.Rotation().Compare(expected, tolerance))

	tb.Drag(0.9, 0.9)
	assert.True(t, tb.Rotation().Compare(expected, tolerance), "drag after release")

	tb.Reset()
	assert.Equal(t, NewQuatIdentity(), tb.Rotation())
}

func TestTrackballRenormalizes(t *testing.T) {
	tb := NewTrackball()
	drift := Quaternion{0, 0, 0, 1.001}
	for i := 0; i < TRACKBALL_RENORM_COUNT; i++ {
		tb.Compose(drift)
	}
	assert.Greater(t, tb.Rotation().Normal(), float32(1.05))

	tb.Compose(drift)
	assert.InDelta(t, 1.0, tb.Rotation().Normal(), tolerance)
}
