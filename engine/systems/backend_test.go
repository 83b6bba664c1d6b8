package systems

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

var _ renderer.RendererBackend = (*recordingBackend)(nil)

type drawCall struct {
	geometry *metadata.Geometry
	texture  *metadata.Texture
	uniforms map[string]interface{}
	overlay  bool
}

// recordingBackend stands in for a GPU. Calls may come from any goroutine.
type recordingBackend struct {
	mutex sync.Mutex

	calls    []string
	textures map[*metadata.Texture][]uint8
	uniforms map[string]interface{}
	bound    *metadata.Texture
	overlay  bool
	draws    []drawCall

	failShader bool
	nextID     uint32
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{
		textures: make(map[*metadata.Texture][]uint8),
		uniforms: make(map[string]interface{}),
	}
}

func (b *recordingBackend) record(call string) {
	b.calls = append(b.calls, call)
}

func (b *recordingBackend) Calls() []string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *recordingBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("initialize")
	return nil
}

func (b *recordingBackend) Shutdown() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("shutdown")
	return nil
}

func (b *recordingBackend) Resized(width, height uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("resized")
	return nil
}

func (b *recordingBackend) BeginFrame(clearColour math.Vec4) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("begin")
	b.draws = nil
	return nil
}

func (b *recordingBackend) EndFrame() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("end")
	return nil
}

func (b *recordingBackend) SetOverlay(enabled bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.overlay = enabled
}

func (b *recordingBackend) TextureCreate(pixels []uint8, texture *metadata.Texture) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("texture " + texture.Name)
	b.textures[texture] = append([]uint8(nil), pixels...)
	b.nextID++
	texture.InternalData = b.nextID
	return nil
}

func (b *recordingBackend) TextureDestroy(texture *metadata.Texture) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	delete(b.textures, texture)
	texture.InternalData = nil
}

func (b *recordingBackend) TextureBind(texture *metadata.Texture, unit uint32) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.bound = texture
}

func (b *recordingBackend) CreateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if len(vertices) == 0 {
		return errors.New("no vertices")
	}
	b.record("geometry " + geometry.Name)
	geometry.InternalData = len(vertices)
	return nil
}

func (b *recordingBackend) UpdateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("update " + geometry.Name)
	geometry.InternalData = len(vertices)
	return nil
}

func (b *recordingBackend) DestroyGeometry(geometry *metadata.Geometry) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.record("destroy " + geometry.Name)
	geometry.InternalData = nil
}

func (b *recordingBackend) DrawGeometry(geometry *metadata.Geometry) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	u := make(map[string]interface{}, len(b.uniforms))
	for k, v := range b.uniforms {
		u[k] = v
	}
	b.draws = append(b.draws, drawCall{geometry: geometry, texture: b.bound, uniforms: u, overlay: b.overlay})
	return nil
}

func (b *recordingBackend) ShaderCreate(shader *metadata.Shader, config *metadata.ShaderConfig) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.failShader {
		return errors.New("syntax error")
	}
	b.record("shader " + config.Name)
	shader.InternalData = config.StageSources[metadata.ShaderStageFragment]
	return nil
}

func (b *recordingBackend) ShaderDestroy(shader *metadata.Shader) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	shader.InternalData = nil
}

func (b *recordingBackend) ShaderUse(shader *metadata.Shader) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.uniforms = make(map[string]interface{})
	return nil
}

func (b *recordingBackend) SetUniform(shader *metadata.Shader, name string, value interface{}) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.uniforms[name] = value
	return nil
}

const testFont = `info face="Test" size=16 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=18 base=14 scaleW=64 scaleH=32 pages=1 packed=0 alphaChnl=0 redChnl=0 greenChnl=0 blueChnl=0
page id=0 file="test_0.png"
chars count=2
char id=65 x=0 y=0 width=8 height=10 xoffset=0 yoffset=4 xadvance=9 page=0 chnl=15
char id=66 x=8 y=0 width=8 height=10 xoffset=1 yoffset=4 xadvance=10 page=0 chnl=15
kernings count=1
kerning first=65 second=66 amount=-1
`

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(y), G: uint8(x), B: 9, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// newTestAssetManager lays out a small asset tree in a temporary directory.
func newTestAssetManager(t *testing.T) *assets.AssetManager {
	t.Helper()
	dir := t.TempDir()
	for _, d := range []string{assets.TEXTURES_DIR, assets.SHADERS_DIR, assets.FONTS_DIR} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0o755))
	}
	writePNG(t, filepath.Join(dir, assets.TEXTURES_DIR, "earth.png"), 4, 2)
	writePNG(t, filepath.Join(dir, assets.TEXTURES_DIR, "moon.png"), 2, 2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.TEXTURES_DIR, "broken.png"), []byte("not a png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.SHADERS_DIR, "phong.vert"), []byte("vertex v1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.SHADERS_DIR, "phong.frag"), []byte("fragment v1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.FONTS_DIR, "test.fnt"), []byte(testFont), 0o644))
	writePNG(t, filepath.Join(dir, assets.FONTS_DIR, "test_0.png"), 64, 32)

	am, err := assets.NewAssetManager(dir)
	require.NoError(t, err)
	t.Cleanup(func() { am.Shutdown() })
	return am
}
