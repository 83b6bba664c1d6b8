package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayCounterTicks(t *testing.T) {
	d := NewDayCounter(0.0625, 1000.0/30.0)

	assert.False(t, d.Advance(20))
	assert.Equal(t, 0.0, d.Day)
	assert.True(t, d.Advance(20))
	assert.Equal(t, 0.0625, d.Day)

	// a long frame still takes a single tick
	assert.True(t, d.Advance(500))
	assert.Equal(t, 0.125, d.Day)
	assert.False(t, d.Advance(1))
}

func TestDayCounterPaused(t *testing.T) {
	d := NewDayCounter(1, 10)
	d.Animate = false

	assert.False(t, d.Advance(50))
	assert.Equal(t, 0.0, d.Day)

	d.Animate = true
	assert.True(t, d.Advance(0))
	assert.Equal(t, 1.0, d.Day)
}

func TestDayCounterSpeed(t *testing.T) {
	d := NewDayCounter(0.0625, 10)
	d.Double()
	d.Double()
	assert.Equal(t, 0.25, d.DaysPerTick)
	d.Halve()
	d.Halve()
	d.Halve()
	assert.Equal(t, 0.03125, d.DaysPerTick)
}

func TestDayCounterLabel(t *testing.T) {
	d := NewDayCounter(0.0625, 10)
	assert.Equal(t, "Day 0", d.Label())

	d.Advance(10)
	d.Advance(10)
	d.Advance(10)
	assert.Equal(t, "Day 0.1875", d.Label())

	d.Day = 365
	assert.Equal(t, "Day 365", d.Label())

	d.ShowDay = false
	assert.Empty(t, d.Label())
}
