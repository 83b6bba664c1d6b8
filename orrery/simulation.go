package orrery

import (
	"github.com/spaghettifunk/orrery/engine/config"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

var (
	ClearColour = math.NewVec4(0.85, 0.85, 0.85, 1)
	RingColour  = math.NewVec4(0.2, 0.2, 0.2, 1)
)

// Simulation is everything that changes while the orrery runs.
type Simulation struct {
	Bodies     []*Body
	Scales     Scales
	Days       *DayCounter
	Light      Light
	ShowOrbits bool
	Trackball  *math.Trackball
}

func NewSimulation(cfg *config.Config) *Simulation {
	days := NewDayCounter(cfg.Simulation.DaysPerTick, cfg.Simulation.TickMS)
	days.Animate = cfg.Simulation.Animate
	days.ShowDay = cfg.Simulation.ShowDay

	return &Simulation{
		Bodies: Bodies(),
		Scales: Scales{
			Sun:       float64(cfg.Scene.SunMultiplier),
			Planet:    float64(cfg.Scene.PlanetMultiplier),
			MoonOrbit: float64(cfg.Scene.MoonOrbitMultiplier),
		},
		Days:       days,
		Light:      Light{R: cfg.Light.R, G: cfg.Light.G, B: cfg.Light.B},
		ShowOrbits: cfg.Simulation.ShowOrbits,
		Trackball:  math.NewTrackball(),
	}
}

/**
 * @brief Builds the draw list for the current day: the orbit rings first when
 * shown, then the bodies. Bodies whose texture is missing from textures, or not
 * uploaded yet, are drawn in their plain colour.
 */
func (s *Simulation) DrawList(sphere, circle *metadata.Geometry, textures map[string]*metadata.Texture) []metadata.GeometryRenderData {
	day := s.Days.Day
	common := s.Scales.CommonTransform(s.Trackball.Matrix())
	list := make([]metadata.GeometryRenderData, 0, 2*len(s.Bodies))

	if s.ShowOrbits {
		ringLighting := RingLighting()
		for _, b := range s.Bodies {
			if !b.Orbits() {
				continue
			}
			list = append(list, metadata.GeometryRenderData{
				ModelView: s.Scales.RingMatrix(b, day).Mul(common),
				Geometry:  circle,
				Colour:    RingColour,
				Lighting:  ringLighting,
			})
		}
	}

	bodyLighting := s.Light.BodyLighting()
	for _, b := range s.Bodies {
		list = append(list, metadata.GeometryRenderData{
			ModelView: s.Scales.BodyMatrix(b, day).Mul(common),
			Geometry:  sphere,
			Texture:   textures[b.Texture],
			Colour:    b.Colour.ToVec4(1),
			Lighting:  bodyLighting,
		})
	}
	return list
}
