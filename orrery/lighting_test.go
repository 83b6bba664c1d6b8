package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/orrery/engine/math"
)

func TestLightAdjustClamps(t *testing.T) {
	l := Light{R: 100, G: 50, B: 0}

	l.Adjust(LightRed, LightStep)
	l.Adjust(LightGreen, -LightStep)
	l.Adjust(LightBlue, -LightStep)
	assert.Equal(t, Light{R: 100, G: 40, B: 0}, l)

	for i := 0; i < 20; i++ {
		l.Adjust(LightBlue, LightStep)
	}
	assert.Equal(t, 100, l.B)

	l.Adjust(LightChannel(7), LightStep)
	assert.Equal(t, Light{R: 100, G: 40, B: 100}, l)
}

func TestBodyLighting(t *testing.T) {
	lighting := Light{R: 100, G: 50, B: 20}.BodyLighting()

	assert.Equal(t, math.NewVec4(0.4, 0.4, 0.4, 1), lighting.Ambient)
	diffuse := lighting.Diffuse.Elements()
	assert.InDeltaSlice(t, []float32{1, 0.5, 0.2, 1}, diffuse[:], 1e-6)
	assert.Equal(t, lighting.Diffuse, lighting.Specular)
	assert.Equal(t, float32(100), lighting.Shininess)
}

func TestRingLighting(t *testing.T) {
	lighting := RingLighting()
	assert.Equal(t, math.NewVec4One(), lighting.Ambient)
	assert.Equal(t, math.NewVec4(0, 0, 0, 1), lighting.Diffuse)
	assert.Equal(t, math.NewVec4(0, 0, 0, 1), lighting.Specular)
}
