package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/orrery/engine/core"
)

const DefaultPath = "orrery.toml"

type WindowConfig struct {
	// The application name used in windowing.
	Title string `toml:"title"`
	// Window starting width.
	Width uint32 `toml:"width"`
	// Window starting height.
	Height uint32 `toml:"height"`
	// Window starting position x axis.
	X uint32 `toml:"x"`
	// Window starting position y axis.
	Y     uint32 `toml:"y"`
	VSync bool   `toml:"vsync"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
	// Watch reloads textures and shaders when their files change on disk.
	Watch bool `toml:"watch"`
}

type SimulationConfig struct {
	DaysPerTick float64 `toml:"days_per_tick"`
	TickMS      float64 `toml:"tick_ms"`
	Animate     bool    `toml:"animate"`
	ShowOrbits  bool    `toml:"show_orbits"`
	ShowDay     bool    `toml:"show_day"`
}

type SceneConfig struct {
	LatitudeBands       uint32  `toml:"latitude_bands"`
	LongitudeBands      uint32  `toml:"longitude_bands"`
	CircleIncrement     float32 `toml:"circle_increment"`
	SunMultiplier       float32 `toml:"sun_multiplier"`
	PlanetMultiplier    float32 `toml:"planet_multiplier"`
	MoonOrbitMultiplier float32 `toml:"moon_orbit_multiplier"`
}

// LightConfig holds the light colour as percentages.
type LightConfig struct {
	R int `toml:"r"`
	G int `toml:"g"`
	B int `toml:"b"`
}

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Log        LogConfig        `toml:"log"`
	Assets     AssetsConfig     `toml:"assets"`
	Simulation SimulationConfig `toml:"simulation"`
	Scene      SceneConfig      `toml:"scene"`
	Light      LightConfig      `toml:"light"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Orrery",
			Width:  960,
			Height: 640,
			X:      100,
			Y:      100,
			VSync:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Assets: AssetsConfig{
			Dir:   "assets",
			Watch: false,
		},
		Simulation: SimulationConfig{
			DaysPerTick: 0.0625,
			TickMS:      1000.0 / 30.0,
			Animate:     true,
			ShowOrbits:  true,
			ShowDay:     true,
		},
		Scene: SceneConfig{
			LatitudeBands:       50,
			LongitudeBands:      50,
			CircleIncrement:     0.1,
			SunMultiplier:       45,
			PlanetMultiplier:    2000,
			MoonOrbitMultiplier: 50,
		},
		Light: LightConfig{R: 100, G: 100, B: 100},
	}
}

// Load reads the TOML file at path over the defaults. A missing file yields the
// defaults; an unreadable or invalid one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogInfo("no configuration at %s, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", core.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := core.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("%w: assets.dir is empty", core.ErrInvalidConfig)
	}
	if c.Simulation.TickMS <= 0 {
		return fmt.Errorf("%w: simulation.tick_ms must be positive, got %f", core.ErrInvalidConfig, c.Simulation.TickMS)
	}
	if c.Simulation.DaysPerTick <= 0 {
		return fmt.Errorf("%w: simulation.days_per_tick must be positive, got %f", core.ErrInvalidConfig, c.Simulation.DaysPerTick)
	}
	if c.Scene.LatitudeBands == 0 || c.Scene.LongitudeBands == 0 {
		return fmt.Errorf("%w: scene bands must be positive, got %dx%d", core.ErrInvalidConfig, c.Scene.LatitudeBands, c.Scene.LongitudeBands)
	}
	if c.Scene.CircleIncrement <= 0 {
		return fmt.Errorf("%w: scene.circle_increment must be positive", core.ErrInvalidConfig)
	}
	if c.Scene.SunMultiplier <= 0 || c.Scene.PlanetMultiplier <= 0 || c.Scene.MoonOrbitMultiplier <= 0 {
		return fmt.Errorf("%w: scene multipliers must be positive", core.ErrInvalidConfig)
	}
	for name, v := range map[string]int{"r": c.Light.R, "g": c.Light.G, "b": c.Light.B} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: light.%s must be within [0, 100], got %d", core.ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// LogLevel returns the parsed log level. Validate has already checked it.
func (c *Config) LogLevel() core.LogLevel {
	level, _ := core.ParseLogLevel(c.Log.Level)
	return level
}
