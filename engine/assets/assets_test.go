package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

const testFont = `info face="Test" size=16 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=18 base=14 scaleW=64 scaleH=64 pages=1 packed=0 alphaChnl=0 redChnl=0 greenChnl=0 blueChnl=0
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
			img.Set(x, y, color.RGBA{R: uint8(y), G: uint8(x), B: 7, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newTestAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, d := range []string{TEXTURES_DIR, SHADERS_DIR, FONTS_DIR} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0o755))
	}
	writePNG(t, filepath.Join(dir, TEXTURES_DIR, "earth.png"), 4, 2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SHADERS_DIR, "phong.vert"), []byte("#version 410 core\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FONTS_DIR, "test.fnt"), []byte(testFont), 0o644))
	writePNG(t, filepath.Join(dir, FONTS_DIR, "test_0.png"), 64, 64)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644))
	return dir
}

func TestNewAssetManagerIndexesKnownFiles(t *testing.T) {
	am, err := NewAssetManager(newTestAssets(t))
	require.NoError(t, err)
	assert.Equal(t, 4, am.Count())

	_, err = NewAssetManager(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, core.ErrAssetNotFound)
}

func TestResolve(t *testing.T) {
	dir := newTestAssets(t)
	am, err := NewAssetManager(dir)
	require.NoError(t, err)

	path, err := am.Resolve("earth", metadata.ResourceTypeImage)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, TEXTURES_DIR, "earth.png"), path)

	path, err = am.Resolve("earth.png", metadata.ResourceTypeImage)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, TEXTURES_DIR, "earth.png"), path)

	path, err = am.Resolve("test", metadata.ResourceTypeBitmapFont)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FONTS_DIR, "test.fnt"), path)

	_, err = am.Resolve("mars", metadata.ResourceTypeImage)
	assert.True(t, IsNotFound(err))

	_, err = am.Resolve("earth", metadata.ResourceTypeNone)
	assert.ErrorIs(t, err, core.ErrUnsupportedAsset)
}

func TestLoadImageFlipped(t *testing.T) {
	am, err := NewAssetManager(newTestAssets(t))
	require.NoError(t, err)

	res, err := am.LoadAsset("earth", metadata.ResourceTypeImage, &metadata.ImageResourceParams{FlipY: true})
	require.NoError(t, err)
	assert.Equal(t, "earth", res.Name)

	img, ok := res.Data.(*metadata.ImageResourceData)
	require.True(t, ok)
	assert.Equal(t, uint32(4), img.Width)
	assert.Equal(t, uint32(2), img.Height)
	assert.Equal(t, uint8(4), img.ChannelCount)
	assert.Len(t, img.Pixels, 4*2*4)

	// first row is the bottom row of the picture (y = 1)
	assert.Equal(t, []uint8{1, 0, 7, 255}, img.Pixels[0:4])
	assert.Equal(t, []uint8{0, 3, 7, 255}, img.Pixels[4*4+3*4:4*4+4*4])
}

func TestLoadShader(t *testing.T) {
	am, err := NewAssetManager(newTestAssets(t))
	require.NoError(t, err)

	res, err := am.LoadAsset("phong.vert", metadata.ResourceTypeShader, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Data.(string), "#version 410 core")
}

func TestLoadBitmapFont(t *testing.T) {
	dir := newTestAssets(t)
	am, err := NewAssetManager(dir)
	require.NoError(t, err)

	res, err := am.LoadAsset("test", metadata.ResourceTypeBitmapFont, nil)
	require.NoError(t, err)

	data, ok := res.Data.(*metadata.BitmapFontResourceData)
	require.True(t, ok)
	assert.Equal(t, "Test", data.Data.Face)
	assert.Equal(t, int32(18), data.Data.LineHeight)
	assert.Equal(t, int32(14), data.Data.Baseline)
	assert.Equal(t, int32(64), data.Data.AtlasSizeX)
	require.Len(t, data.Pages, 1)
	assert.Equal(t, filepath.Join(dir, FONTS_DIR, "test_0.png"), data.Pages[0].File)

	require.Contains(t, data.Data.Glyphs, int32('B'))
	b := data.Data.Glyphs['B']
	assert.Equal(t, uint16(8), b.X)
	assert.Equal(t, int16(1), b.XOffset)
	assert.Equal(t, int16(10), b.XAdvance)
	assert.Equal(t, int16(-1), data.Data.Kernings[[2]int32{'A', 'B'}])
}

func TestLoadMissingFile(t *testing.T) {
	am, err := NewAssetManager(newTestAssets(t))
	require.NoError(t, err)

	_, err = am.LoadPath(filepath.Join(am.BaseDir(), TEXTURES_DIR, "nope.png"), metadata.ResourceTypeImage, nil)
	assert.ErrorIs(t, err, core.ErrAssetNotFound)
}

func TestWatchPublishesChanges(t *testing.T) {
	dir := newTestAssets(t)
	am, err := NewAssetManager(dir)
	require.NoError(t, err)
	require.NoError(t, am.Watch())
	defer am.Shutdown()

	target := filepath.Join(dir, SHADERS_DIR, "phong.vert")
	require.NoError(t, os.WriteFile(target, []byte("#version 410 core\n// edited\n"), 0o644))

	select {
	case change := <-am.Changes():
		assert.Equal(t, target, change.Path)
		assert.Equal(t, metadata.ResourceTypeShader, change.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no change published")
	}
}

func TestDetermineAssetType(t *testing.T) {
	assert.Equal(t, metadata.ResourceTypeImage, determineAssetType("a/b/sun.JPG"))
	assert.Equal(t, metadata.ResourceTypeImage, determineAssetType("moon.webp"))
	assert.Equal(t, metadata.ResourceTypeShader, determineAssetType("phong.frag"))
	assert.Equal(t, metadata.ResourceTypeBitmapFont, determineAssetType("mono.fnt"))
	assert.Equal(t, metadata.ResourceTypeNone, determineAssetType("notes.md"))
}
