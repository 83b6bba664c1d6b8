package orrery

import (
	gomath "math"

	"github.com/spaghettifunk/orrery/engine/math"
)

const (
	FieldOfView = 40.0
	NearClip    = 0.1
	FarClip     = 1000.0
	// Degrees about X that tip the orbital plane towards the viewer.
	ViewTilt = 20.0
	// Distance of the eye from the origin along +Z.
	EyeDistance = 100.0
	// Half extent of the view the Earth-Moon system is fitted into.
	ViewExtent = 50.0
)

// Scales turn real sizes into display sizes. Body radii would be invisible at
// the scale of the orbits otherwise.
type Scales struct {
	Sun       float64
	Planet    float64
	MoonOrbit float64
}

func (s Scales) size(b *Body) float64 {
	if b.Star {
		return b.Radius * s.Sun
	}
	return b.Radius * s.Planet
}

func (s Scales) orbit(b *Body) float64 {
	if b.Parent != nil {
		return b.OrbitalRadius * s.MoonOrbit
	}
	return b.OrbitalRadius
}

// OrbitPhase is the angle in degrees the body has covered on its orbit.
func OrbitPhase(b *Body, day float64) float64 {
	if b.Period == 0 {
		return 0
	}
	return gomath.Mod(day*360.0/b.Period, 360.0)
}

// SpinAngle is the angle in degrees the body has turned about its own axis.
func SpinAngle(b *Body, day float64) float64 {
	if b.SpinPeriod == 0 {
		return 0
	}
	return gomath.Mod(day*360.0/b.SpinPeriod, 360.0)
}

func rotY(degrees float64) math.Mat4 {
	return math.NewMat4EulerY(math.DegToRad(float32(degrees)))
}

func rotZ(degrees float64) math.Mat4 {
	return math.NewMat4EulerZ(math.DegToRad(float32(degrees)))
}

func translateX(x float64) math.Mat4 {
	return math.NewMat4Translation(math.NewVec3(float32(x), 0, 0))
}

// OrbitFrame is the frame whose origin the body circles: the identity for
// bodies orbiting the Sun, the parent's tilted, moving frame for satellites.
func (s Scales) OrbitFrame(b *Body, day float64) math.Mat4 {
	p := b.Parent
	if p == nil {
		return math.NewMat4Identity()
	}
	return rotZ(p.Tilt).
		Mul(translateX(s.orbit(p))).
		Mul(rotY(OrbitPhase(p, day))).
		Mul(s.OrbitFrame(p, day))
}

// BodyMatrix places the unit sphere of b for the given day.
func (s Scales) BodyMatrix(b *Body, day float64) math.Mat4 {
	counter := 0.0
	for a := b; a != nil; a = a.Parent {
		counter += OrbitPhase(a, day)
	}
	return rotY(SpinAngle(b, day)).
		Mul(math.NewMat4UniformScale(float32(s.size(b)))).
		Mul(rotZ(b.Tilt)).
		Mul(rotY(-counter)).
		Mul(translateX(s.orbit(b))).
		Mul(rotY(OrbitPhase(b, day))).
		Mul(s.OrbitFrame(b, day))
}

// RingMatrix places the unit circle on the orbit of b.
func (s Scales) RingMatrix(b *Body, day float64) math.Mat4 {
	return math.NewMat4UniformScale(float32(s.orbit(b))).Mul(s.OrbitFrame(b, day))
}

// GlobalScale fits the outermost orbit, Earth's plus the Moon's, into the view.
func (s Scales) GlobalScale() float64 {
	return ViewExtent / (Earth.OrbitalRadius + Moon.OrbitalRadius + (Earth.Radius+2*Moon.Radius)*s.Planet)
}

// CommonTransform is applied after every body and ring matrix.
func (s Scales) CommonTransform(trackball math.Mat4) math.Mat4 {
	eye := math.NewVec3(0, 0, EyeDistance)
	return trackball.
		Mul(math.NewMat4UniformScale(float32(s.GlobalScale()))).
		Mul(math.NewMat4EulerX(math.DegToRad(ViewTilt))).
		Mul(math.NewMat4LookAt(eye, math.NewVec3Zero(), math.NewVec3Up()))
}

func Projection(aspect float32) math.Mat4 {
	return math.NewMat4Perspective(math.DegToRad(FieldOfView), aspect, NearClip, FarClip)
}
