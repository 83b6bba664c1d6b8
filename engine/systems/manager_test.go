package systems

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/core"
)

func TestSystemManagerAppliesAssetChanges(t *testing.T) {
	am := newTestAssetManager(t)
	backend := newRecordingBackend()
	bus := core.NewEventBus()

	sm, err := NewSystemManager("test", 960, 640, backend, am, bus)
	require.NoError(t, err)
	require.NoError(t, sm.Initialize())

	shader, err := sm.ShaderSystem.Create(phongConfig())
	require.NoError(t, err)
	earth, err := sm.TextureSystem.Acquire("earth")
	require.NoError(t, err)

	var changed []string
	bus.Register(core.EVENT_CODE_ASSET_CHANGED, t, func(ctx core.EventContext) bool {
		changed = append(changed, ctx.Data.(*core.AssetEvent).Name)
		return false
	})

	require.NoError(t, am.Watch())
	frag := filepath.Join(am.BaseDir(), assets.SHADERS_DIR, "phong.frag")
	require.NoError(t, os.WriteFile(frag, []byte("fragment v2"), 0o644))

	deadline := time.Now().Add(5 * time.Second)
	for shader.Generation == 0 || !earth.IsLoaded() {
		if time.Now().After(deadline) {
			t.Fatal("asset change not applied")
		}
		sm.Update()
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, "fragment v2", shader.InternalData)
	assert.Contains(t, changed, "phong.frag")

	require.NoError(t, sm.Shutdown())
	assert.Equal(t, "shutdown", backend.Calls()[len(backend.Calls())-1])
	assert.Nil(t, shader.InternalData)
}
