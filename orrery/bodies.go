package orrery

import "github.com/spaghettifunk/orrery/engine/math"

// Body is a sphere in the model. Distances are kilometres, periods Earth days
// and angles degrees.
type Body struct {
	Name string
	// Texture name under the texture asset directory.
	Texture       string
	Radius        float64
	OrbitalRadius float64
	// Orbital period, 0 for a body that does not orbit.
	Period float64
	// Axial tilt about Z.
	Tilt float64
	// Rotation period about its own axis, 0 for none.
	SpinPeriod float64
	Colour     math.Vec3
	// The body it orbits. Nil for the Sun and the planets.
	Parent *Body
	// Scaled with the sun multiplier instead of the planet multiplier.
	Star bool
}

var (
	Sun = &Body{
		Name:    "Sun",
		Texture: "sun",
		Radius:  696000,
		Colour:  math.NewVec3(1, 1, 0),
		Star:    true,
	}
	Mercury = &Body{
		Name:          "Mercury",
		Texture:       "mercury",
		Radius:        2440,
		OrbitalRadius: 57909050,
		Period:        88,
		Colour:        math.NewVec3(1, 0.5, 0.5),
	}
	Venus = &Body{
		Name:          "Venus",
		Texture:       "venus",
		Radius:        6052,
		OrbitalRadius: 108208000,
		Period:        225,
		Colour:        math.NewVec3(0.5, 1, 0.5),
	}
	Earth = &Body{
		Name:          "Earth",
		Texture:       "earth",
		Radius:        6371,
		OrbitalRadius: 149598261,
		Period:        365,
		Tilt:          23.5,
		SpinPeriod:    1,
		Colour:        math.NewVec3(0.5, 0.5, 1),
	}
	Moon = &Body{
		Name:          "Moon",
		Texture:       "moon",
		Radius:        1737,
		OrbitalRadius: 384399,
		Period:        27,
		Colour:        math.NewVec3(1, 1, 1),
		Parent:        Earth,
	}
)

// Bodies lists every body in drawing order.
func Bodies() []*Body {
	return []*Body{Sun, Mercury, Venus, Earth, Moon}
}

// Orbits reports whether the body moves around a centre, and so has a ring.
func (b *Body) Orbits() bool {
	return b.Period > 0
}
