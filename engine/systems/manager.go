package systems

import (
	"path/filepath"
	"runtime"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type SystemManager struct {
	RendererSystem *RendererSystem
	TextureSystem  *TextureSystem
	GeometrySystem *GeometrySystem
	ShaderSystem   *ShaderSystem
	FontSystem     *FontSystem

	jobSystem    *JobSystem
	assetManager *assets.AssetManager
	bus          *core.EventBus
}

func NewSystemManager(appName string, appWidth, appHeight uint32, backend renderer.RendererBackend, am *assets.AssetManager, bus *core.EventBus) (*SystemManager, error) {
	js, err := NewJobSystem(runtime.NumCPU(), 64)
	if err != nil {
		return nil, err
	}
	rs, err := NewRendererSystem(appName, appWidth, appHeight, backend)
	if err != nil {
		return nil, err
	}
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: 64,
	}, js, am, backend, bus)
	if err != nil {
		return nil, err
	}
	gs, err := NewGeometrySystem(&GeometrySystemConfig{
		MaxGeometryCount: 256,
	}, backend)
	if err != nil {
		return nil, err
	}
	ssys, err := NewShaderSystem(am, backend)
	if err != nil {
		return nil, err
	}
	fs, err := NewFontSystem(ts, gs, am)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		RendererSystem: rs,
		TextureSystem:  ts,
		GeometrySystem: gs,
		ShaderSystem:   ssys,
		FontSystem:     fs,
		jobSystem:      js,
		assetManager:   am,
		bus:            bus,
	}, nil
}

func (sm *SystemManager) Initialize() error {
	return sm.RendererSystem.Initialize()
}

/**
 * @brief Applies asset changes seen on disk and uploads decoded textures.
 * Runs once per frame on the render thread.
 */
func (sm *SystemManager) Update() {
drain:
	for {
		select {
		case change := <-sm.assetManager.Changes():
			sm.applyAssetChange(change)
		default:
			break drain
		}
	}
	sm.TextureSystem.ProcessPending()
}

func (sm *SystemManager) applyAssetChange(change assets.AssetChange) {
	switch change.Type {
	case metadata.ResourceTypeImage:
		if n := sm.TextureSystem.Reload(change.Path); n > 0 {
			core.LogInfo("reloading %d texture(s) from %s", n, change.Path)
		}
	case metadata.ResourceTypeShader:
		// failures are logged by the shader system and the old program stays
		_, _ = sm.ShaderSystem.ReloadByPath(change.Path)
	}
	sm.bus.Fire(core.EventContext{
		Type: core.EVENT_CODE_ASSET_CHANGED,
		Data: &core.AssetEvent{Name: filepath.Base(change.Path), Path: change.Path},
	})
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.jobSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.FontSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.GeometrySystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.ShaderSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.TextureSystem.Shutdown(); err != nil {
		return err
	}
	return sm.RendererSystem.Shutdown()
}
