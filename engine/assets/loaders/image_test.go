package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(10 * y), G: uint8(10 * x), B: 200, A: 255})
		}
	}
	return img
}

func TestDecodeImageFormats(t *testing.T) {
	src := gradient(3, 2)
	encoders := map[string]func(*bytes.Buffer) error{
		"png": func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp": func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}
	for name, encode := range encoders {
		var buf bytes.Buffer
		require.NoError(t, encode(&buf), name)

		rgba, err := DecodeImage(&buf, false)
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 3, 2), rgba.Rect, name)
		assert.Equal(t, []uint8{10, 20, 200, 255}, rgba.Pix[rgba.PixOffset(2, 1):rgba.PixOffset(2, 1)+4], name)
	}
}

func TestDecodeImageGIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, gradient(4, 4), nil))
	rgba, err := DecodeImage(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, 4*4*4, len(rgba.Pix))
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("not an image")), false)
	assert.Error(t, err)
}

func TestFlipV(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.Pix[y*img.Stride] = uint8(y)
	}
	FlipV(img)
	assert.Equal(t, uint8(2), img.Pix[0])
	assert.Equal(t, uint8(1), img.Pix[img.Stride])
	assert.Equal(t, uint8(0), img.Pix[2*img.Stride])
}

func TestImageLoaderMissingFile(t *testing.T) {
	_, err := (&ImageLoader{}).Load(filepath.Join(t.TempDir(), "nope.png"), nil)
	assert.ErrorIs(t, err, core.ErrAssetNotFound)
}

func TestShaderLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.frag")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}"), 0o644))

	res, err := (&ShaderLoader{}).Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, metadata.ResourceTypeShader, res.Type)
	assert.Equal(t, "a.frag", res.Name)
	assert.Equal(t, "void main() {}", res.Data)
	assert.Equal(t, uint64(14), res.DataSize)
}
