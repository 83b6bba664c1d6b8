package orrery

import "strconv"

// DayCounter advances simulated days in fixed ticks of wall-clock time. At
// most one tick is taken per Advance, however much time has passed.
type DayCounter struct {
	Day         float64
	DaysPerTick float64
	TickMS      float64
	Animate     bool
	ShowDay     bool

	elapsedMS float64
}

func NewDayCounter(daysPerTick, tickMS float64) *DayCounter {
	return &DayCounter{
		DaysPerTick: daysPerTick,
		TickMS:      tickMS,
		Animate:     true,
		ShowDay:     true,
	}
}

// Advance adds elapsedMS of wall-clock time and reports whether the day moved.
// While paused the time keeps accumulating, so the first tick after resuming
// comes immediately.
func (d *DayCounter) Advance(elapsedMS float64) bool {
	d.elapsedMS += elapsedMS
	if d.elapsedMS < d.TickMS || !d.Animate {
		return false
	}
	d.Day += d.DaysPerTick
	d.elapsedMS = 0
	return true
}

func (d *DayCounter) Double() {
	d.DaysPerTick *= 2
}

func (d *DayCounter) Halve() {
	d.DaysPerTick *= 0.5
}

// Label is the text of the day display, empty while it is switched off.
func (d *DayCounter) Label() string {
	if !d.ShowDay {
		return ""
	}
	return "Day " + strconv.FormatFloat(d.Day, 'f', -1, 64)
}
