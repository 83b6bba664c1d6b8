package orrery

import (
	"fmt"

	"github.com/spaghettifunk/orrery/engine"
	"github.com/spaghettifunk/orrery/engine/config"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
	"github.com/spaghettifunk/orrery/engine/systems"
)

const (
	WorldShaderName = "phong"
	UIShaderName    = "text"
	SphereName      = "sphere"
	CircleName      = "circle"
	FontName        = "mono"
)

var dayTextPosition = math.NewVec2(10, 10)

type Orrery struct {
	*engine.Game
	cfg *config.Config
}

type gameState struct {
	sim      *Simulation
	controls *Controls

	worldShader *metadata.Shader
	uiShader    *metadata.Shader
	sphere      *metadata.Geometry
	circle      *metadata.Geometry
	textures    map[string]*metadata.Texture
	dayText     *metadata.UIText

	width  uint32
	height uint32
}

func NewOrrery(cfg *config.Config) *Orrery {
	o := &Orrery{
		Game: &engine.Game{
			ApplicationConfig: engine.NewApplicationConfig(cfg),
			State: &gameState{
				sim:      NewSimulation(cfg),
				textures: make(map[string]*metadata.Texture),
				width:    cfg.Window.Width,
				height:   cfg.Window.Height,
			},
		},
		cfg: cfg,
	}

	o.FnInitialize = o.Initialize
	o.FnUpdate = o.Update
	o.FnRender = o.Render
	o.FnOnResize = o.OnResize
	o.FnShutdown = o.Shutdown
	o.FnStatus = o.Status

	return o
}

func (o *Orrery) state() *gameState {
	return o.State.(*gameState)
}

func (o *Orrery) Initialize() error {
	core.LogDebug("Orrery Initialize fn....")

	if o.SystemManager == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}
	state := o.state()
	sm := o.SystemManager

	var err error
	if state.worldShader, err = sm.ShaderSystem.Create(shaderConfig(WorldShaderName)); err != nil {
		return err
	}
	if state.uiShader, err = sm.ShaderSystem.Create(shaderConfig(UIShaderName)); err != nil {
		return err
	}

	scene := o.cfg.Scene
	sphereConfig, err := systems.GenerateSphereConfig(SphereName, scene.LatitudeBands, scene.LongitudeBands, 1)
	if err != nil {
		return err
	}
	if state.sphere, err = sm.GeometrySystem.AcquireFromConfig(sphereConfig); err != nil {
		return err
	}
	circleConfig, err := systems.GenerateCircleConfig(CircleName, scene.CircleIncrement)
	if err != nil {
		return err
	}
	if state.circle, err = sm.GeometrySystem.AcquireFromConfig(circleConfig); err != nil {
		return err
	}

	// Textures arrive over the next frames; bodies are drawn in their colour until then.
	for _, b := range state.sim.Bodies {
		t, err := sm.TextureSystem.Acquire(b.Texture)
		if err != nil {
			core.LogWarn("no texture for %s: %s", b.Name, err)
			continue
		}
		state.textures[b.Texture] = t
	}

	if _, err := sm.FontSystem.LoadBitmapFont(FontName); err != nil {
		core.LogWarn("day display disabled: %s", err)
	} else {
		state.dayText, err = sm.FontSystem.CreateText(FontName, state.sim.Days.Label(), dayTextPosition, math.NewVec4(0, 0, 0, 1))
		if err != nil {
			return err
		}
	}

	var windowSize func() (uint32, uint32)
	if o.Platform != nil {
		windowSize = o.Platform.WindowSize
	} else {
		windowSize = func() (uint32, uint32) { return state.width, state.height }
	}
	state.controls = NewControls(state.sim, o.Input, windowSize)
	state.controls.Register(o.Bus)

	return nil
}

func shaderConfig(name string) *metadata.ShaderConfig {
	return &metadata.ShaderConfig{
		Name: name,
		StageFiles: map[metadata.ShaderStage]string{
			metadata.ShaderStageVertex:   name + ".vert",
			metadata.ShaderStageFragment: name + ".frag",
		},
	}
}

func (o *Orrery) Update(deltaTime float64) error {
	state := o.state()
	state.sim.Days.Advance(deltaTime * 1000)

	if state.dayText != nil {
		return o.SystemManager.FontSystem.SetText(state.dayText, state.sim.Days.Label())
	}
	return nil
}

func (o *Orrery) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := o.state()

	packet.ClearColour = ClearColour
	packet.WorldShader = state.worldShader
	packet.Projection = Projection(aspectRatio(state.width, state.height))
	packet.LightPosition = LightPosition
	packet.Geometries = state.sim.DrawList(state.sphere, state.circle, state.textures)

	packet.UIShader = state.uiShader
	packet.UIProjection = math.NewMat4Orthographic(0, float32(state.width), float32(state.height), 0, -1, 1)
	if state.dayText != nil {
		packet.Texts = append(packet.Texts, state.dayText)
	}
	return nil
}

func aspectRatio(width, height uint32) float32 {
	if width == 0 || height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (o *Orrery) OnResize(width uint32, height uint32) error {
	state := o.state()
	state.width = width
	state.height = height
	return nil
}

func (o *Orrery) Status() string {
	return o.state().sim.Days.Label()
}

func (o *Orrery) Shutdown() error {
	state := o.state()
	if state.controls != nil && o.Bus != nil {
		state.controls.Unregister(o.Bus)
	}
	core.LogInfo("stopped at day %g", state.sim.Days.Day)
	return nil
}
