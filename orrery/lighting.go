package orrery

import (
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

const (
	LightAmbient = 0.4
	Shininess    = 100.0
	// Step of one key press on a light channel, in percent.
	LightStep = 10
)

// Light position in eye space.
var LightPosition = math.NewVec4(1, 1, 1, 1)

// Every body reflects the light unchanged.
var materialColour = math.NewVec4One()

type LightChannel int

const (
	LightRed LightChannel = iota
	LightGreen
	LightBlue
)

// Light is the light colour as three percentages.
type Light struct {
	R, G, B int
}

// Adjust moves one channel by delta percent, staying within [0, 100].
func (l *Light) Adjust(channel LightChannel, delta int) {
	var c *int
	switch channel {
	case LightRed:
		c = &l.R
	case LightGreen:
		c = &l.G
	case LightBlue:
		c = &l.B
	default:
		return
	}
	*c = math.Clamp(*c+delta, 0, 100)
}

func (l Light) Colour() math.Vec4 {
	return math.NewVec4(float32(l.R)/100, float32(l.G)/100, float32(l.B)/100, 1)
}

// BodyLighting is light times material for the lit spheres.
func (l Light) BodyLighting() metadata.Lighting {
	colour := l.Colour()
	return metadata.Lighting{
		Ambient:   math.NewVec4(LightAmbient, LightAmbient, LightAmbient, 1).Mul(materialColour),
		Diffuse:   colour.Mul(materialColour),
		Specular:  colour.Mul(materialColour),
		Shininess: Shininess,
	}
}

// RingLighting leaves the ring colour as is, whatever the light.
func RingLighting() metadata.Lighting {
	return metadata.Lighting{
		Ambient:   math.NewVec4One(),
		Diffuse:   math.NewVec4(0, 0, 0, 1),
		Specular:  math.NewVec4(0, 0, 0, 1),
		Shininess: Shininess,
	}
}
