package orrery

import (
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
)

// Controls maps keyboard and mouse events onto the simulation.
//
//	D           toggle the day display
//	O           toggle the orbit rings
//	Space       toggle the animation
//	Up, =       double the days per tick
//	Down, -     halve the days per tick
//	R, G, B     raise a light channel, lower it with Shift
//	Home        reset the trackball
//	left drag   rotate the trackball
type Controls struct {
	sim   *Simulation
	input *core.InputState
	// Size of the space cursor positions are reported in.
	windowSize func() (uint32, uint32)
}

func NewControls(sim *Simulation, input *core.InputState, windowSize func() (uint32, uint32)) *Controls {
	return &Controls{
		sim:        sim,
		input:      input,
		windowSize: windowSize,
	}
}

func (c *Controls) Register(bus *core.EventBus) {
	bus.Register(core.EVENT_CODE_KEY_PRESSED, c, c.OnKey)
	bus.Register(core.EVENT_CODE_BUTTON_PRESSED, c, c.OnButton)
	bus.Register(core.EVENT_CODE_BUTTON_RELEASED, c, c.OnButton)
	bus.Register(core.EVENT_CODE_MOUSE_MOVED, c, c.OnMouseMoved)
}

func (c *Controls) Unregister(bus *core.EventBus) {
	bus.Unregister(core.EVENT_CODE_KEY_PRESSED, c)
	bus.Unregister(core.EVENT_CODE_BUTTON_PRESSED, c)
	bus.Unregister(core.EVENT_CODE_BUTTON_RELEASED, c)
	bus.Unregister(core.EVENT_CODE_MOUSE_MOVED, c)
}

func (c *Controls) OnKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}

	step := LightStep
	if c.input != nil && c.input.IsShiftDown() {
		step = -LightStep
	}

	switch ke.KeyCode {
	case core.KEY_D:
		c.sim.Days.ShowDay = !c.sim.Days.ShowDay
	case core.KEY_O:
		c.sim.ShowOrbits = !c.sim.ShowOrbits
	case core.KEY_SPACE:
		c.sim.Days.Animate = !c.sim.Days.Animate
	case core.KEY_UP, core.KEY_PLUS:
		c.sim.Days.Double()
		core.LogDebug("%g days per tick", c.sim.Days.DaysPerTick)
	case core.KEY_DOWN, core.KEY_MINUS:
		c.sim.Days.Halve()
		core.LogDebug("%g days per tick", c.sim.Days.DaysPerTick)
	case core.KEY_R:
		c.sim.Light.Adjust(LightRed, step)
	case core.KEY_G:
		c.sim.Light.Adjust(LightGreen, step)
	case core.KEY_B:
		c.sim.Light.Adjust(LightBlue, step)
	case core.KEY_HOME:
		c.sim.Trackball.Reset()
	default:
		return false
	}
	return true
}

func (c *Controls) OnButton(context core.EventContext) bool {
	me, ok := context.Data.(*core.MouseEvent)
	if !ok || me.Button != core.BUTTON_LEFT {
		return false
	}
	if context.Type == core.EVENT_CODE_BUTTON_RELEASED {
		c.sim.Trackball.End()
		return true
	}
	x, y := c.normalize(me.PosX, me.PosY)
	c.sim.Trackball.Begin(x, y)
	return true
}

func (c *Controls) OnMouseMoved(context core.EventContext) bool {
	me, ok := context.Data.(*core.MouseEvent)
	if !ok || !c.sim.Trackball.IsDragging() {
		return false
	}
	x, y := c.normalize(me.PosX, me.PosY)
	c.sim.Trackball.Drag(x, y)
	return true
}

func (c *Controls) normalize(x, y float64) (float32, float32) {
	w, h := c.windowSize()
	return math.NormalizeMousePosition(float32(x), float32(y), float32(w), float32(h))
}
