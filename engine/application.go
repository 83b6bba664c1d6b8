package engine

import (
	"github.com/spaghettifunk/orrery/engine/config"
	"github.com/spaghettifunk/orrery/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	VSync    bool
	LogLevel core.LogLevel
	// Directory holding the textures, shaders and fonts.
	AssetsDir   string
	WatchAssets bool
}

func NewApplicationConfig(cfg *config.Config) *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   cfg.Window.X,
		StartPosY:   cfg.Window.Y,
		StartWidth:  cfg.Window.Width,
		StartHeight: cfg.Window.Height,
		Name:        cfg.Window.Title,
		VSync:       cfg.Window.VSync,
		LogLevel:    cfg.LogLevel(),
		AssetsDir:   cfg.Assets.Dir,
		WatchAssets: cfg.Assets.Watch,
	}
}
