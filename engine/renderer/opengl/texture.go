package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

func glFilter(f metadata.TextureFilter) int32 {
	switch f {
	case metadata.TextureFilterModeNearest:
		return gl.NEAREST
	case metadata.TextureFilterModeLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	default:
		return gl.LINEAR
	}
}

// TextureCreate uploads RGBA8 pixels. Re-uploading into a texture that already
// has a GL object reuses it.
func (r *OpenGLRenderer) TextureCreate(pixels []uint8, texture *metadata.Texture) error {
	expected := int(texture.Width) * int(texture.Height) * 4
	if len(pixels) < expected || expected == 0 {
		return fmt.Errorf("texture %s: expected %d bytes of RGBA pixels, got %d", texture.Name, expected, len(pixels))
	}

	id, ok := texture.InternalData.(uint32)
	if !ok {
		gl.GenTextures(1, &id)
		texture.InternalData = id
	}
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(texture.Width), int32(texture.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(texture.FilterMagnify))
	minify := texture.FilterMinify
	if !texture.Mipmaps && minify == metadata.TextureFilterModeLinearMipmapNearest {
		minify = metadata.TextureFilterModeLinear
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(minify))
	if texture.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (r *OpenGLRenderer) TextureDestroy(texture *metadata.Texture) {
	id, ok := texture.InternalData.(uint32)
	if !ok {
		return
	}
	gl.DeleteTextures(1, &id)
	texture.InternalData = nil
}

// TextureBind binds the texture to the given unit, or unbinds the unit when the
// texture has not been uploaded.
func (r *OpenGLRenderer) TextureBind(texture *metadata.Texture, unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if texture == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	id, _ := texture.InternalData.(uint32)
	gl.BindTexture(gl.TEXTURE_2D, id)
}
