package systems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

func phongConfig() *metadata.ShaderConfig {
	return &metadata.ShaderConfig{
		Name: "phong",
		StageFiles: map[metadata.ShaderStage]string{
			metadata.ShaderStageVertex:   "phong.vert",
			metadata.ShaderStageFragment: "phong.frag",
		},
	}
}

func TestShaderSystemCreate(t *testing.T) {
	am := newTestAssetManager(t)
	backend := newRecordingBackend()
	ss, err := NewShaderSystem(am, backend)
	require.NoError(t, err)

	shader, err := ss.Create(phongConfig())
	require.NoError(t, err)
	assert.Equal(t, "vertex v1", shader.Config.StageSources[metadata.ShaderStageVertex])
	assert.Equal(t, "fragment v1", shader.InternalData)

	_, err = ss.Create(phongConfig())
	assert.Error(t, err, "duplicate name")

	got, ok := ss.Get("phong")
	assert.True(t, ok)
	assert.Same(t, shader, got)
}

func TestShaderSystemMissingStage(t *testing.T) {
	ss, err := NewShaderSystem(newTestAssetManager(t), newRecordingBackend())
	require.NoError(t, err)

	config := phongConfig()
	config.StageFiles[metadata.ShaderStageFragment] = "missing.frag"
	_, err = ss.Create(config)
	assert.True(t, assets.IsNotFound(err))
}

func TestShaderReloadKeepsProgramOnFailure(t *testing.T) {
	am := newTestAssetManager(t)
	backend := newRecordingBackend()
	ss, err := NewShaderSystem(am, backend)
	require.NoError(t, err)
	shader, err := ss.Create(phongConfig())
	require.NoError(t, err)

	frag := filepath.Join(am.BaseDir(), assets.SHADERS_DIR, "phong.frag")
	require.NoError(t, os.WriteFile(frag, []byte("fragment v2"), 0o644))

	n, err := ss.ReloadByPath(frag)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint32(1), shader.Generation)
	assert.Equal(t, "fragment v2", shader.InternalData)

	require.NoError(t, os.WriteFile(frag, []byte("fragment v3"), 0o644))
	backend.failShader = true
	n, err = ss.ReloadByPath(frag)
	assert.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, uint32(1), shader.Generation)
	assert.Equal(t, "fragment v2", shader.InternalData)
	assert.Equal(t, "fragment v2", shader.Config.StageSources[metadata.ShaderStageFragment])

	n, err = ss.ReloadByPath(filepath.Join(am.BaseDir(), assets.SHADERS_DIR, "text.frag"))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, ss.Shutdown())
	assert.Nil(t, shader.InternalData)
}
