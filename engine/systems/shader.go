package systems

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type ShaderSystem struct {
	// A lookup table for shader name->shader
	shaders map[string]*metadata.Shader
	// sub systems
	assetManager *assets.AssetManager
	backend      renderer.RendererBackend
}

func NewShaderSystem(am *assets.AssetManager, backend renderer.RendererBackend) (*ShaderSystem, error) {
	return &ShaderSystem{
		shaders:      make(map[string]*metadata.Shader),
		assetManager: am,
		backend:      backend,
	}, nil
}

/**
 * @brief Creates a new shader with the given config. The stage sources are
 * read from the shader asset directory.
 *
 * @param config The configuration to be used when creating the shader.
 * @return The linked shader.
 */
func (shaderSystem *ShaderSystem) Create(config *metadata.ShaderConfig) (*metadata.Shader, error) {
	if _, ok := shaderSystem.shaders[config.Name]; ok {
		return nil, fmt.Errorf("shader %s already exists", config.Name)
	}

	loaded, err := shaderSystem.loadSources(config)
	if err != nil {
		return nil, err
	}

	shader := &metadata.Shader{
		ID:   uuid.New(),
		Name: config.Name,
	}
	if err := shaderSystem.backend.ShaderCreate(shader, loaded); err != nil {
		core.LogError("failed to create shader %s: %s", config.Name, err)
		return nil, err
	}
	shader.Config = loaded
	shaderSystem.shaders[config.Name] = shader
	core.LogDebug("shader %s created", config.Name)
	return shader, nil
}

// loadSources returns a copy of config with StageSources read from disk.
func (shaderSystem *ShaderSystem) loadSources(config *metadata.ShaderConfig) (*metadata.ShaderConfig, error) {
	loaded := &metadata.ShaderConfig{
		Name:         config.Name,
		StageFiles:   make(map[metadata.ShaderStage]string, len(config.StageFiles)),
		StageSources: make(map[metadata.ShaderStage]string, len(config.StageFiles)),
	}
	for stage, file := range config.StageFiles {
		res, err := shaderSystem.assetManager.LoadAsset(file, metadata.ResourceTypeShader, nil)
		if err != nil {
			return nil, fmt.Errorf("shader %s %s stage: %w", config.Name, stage, err)
		}
		loaded.StageFiles[stage] = file
		loaded.StageSources[stage] = res.Data.(string)
	}
	return loaded, nil
}

func (shaderSystem *ShaderSystem) Get(name string) (*metadata.Shader, bool) {
	s, ok := shaderSystem.shaders[name]
	return s, ok
}

/**
 * @brief Rebuilds every shader that uses the file at path. A shader that fails
 * to rebuild keeps its previous program.
 * @return The number of shaders rebuilt.
 */
func (shaderSystem *ShaderSystem) ReloadByPath(path string) (int, error) {
	rebuilt := 0
	var firstErr error
	for _, shader := range shaderSystem.shaders {
		if !shaderSystem.uses(shader, path) {
			continue
		}
		loaded, err := shaderSystem.loadSources(shader.Config)
		if err == nil {
			err = shaderSystem.backend.ShaderCreate(shader, loaded)
		}
		if err != nil {
			core.LogError("shader %s not reloaded, keeping the previous program: %s", shader.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		shader.Config = loaded
		shader.Generation++
		rebuilt++
		core.LogInfo("shader %s reloaded", shader.Name)
	}
	return rebuilt, firstErr
}

func (shaderSystem *ShaderSystem) uses(shader *metadata.Shader, path string) bool {
	for _, file := range shader.Config.StageFiles {
		p, err := shaderSystem.assetManager.Resolve(file, metadata.ResourceTypeShader)
		if err == nil && p == path {
			return true
		}
	}
	return false
}

func (shaderSystem *ShaderSystem) Shutdown() error {
	for name, s := range shaderSystem.shaders {
		shaderSystem.backend.ShaderDestroy(s)
		delete(shaderSystem.shaders, name)
	}
	return nil
}
