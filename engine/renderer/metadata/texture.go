package metadata

import "github.com/google/uuid"

// InvalidGeneration marks a handle whose data has not reached the GPU yet.
const InvalidGeneration uint32 = 0xFFFFFFFF

/**
 * @brief Represents supported texture filtering modes.
 */
type TextureFilter int

const (
	/** @brief Linear (i.e smooth) filtering */
	TextureFilterModeLinear TextureFilter = iota
	/** @brief Nearest-neighbor filtering. */
	TextureFilterModeNearest
	/** @brief Linear within a level, nearest mipmap level. Minification only. */
	TextureFilterModeLinearMipmapNearest
)

/**
 * @brief Represents a texture.
 */
type Texture struct {
	/** @brief The unique texture identifier. */
	ID uuid.UUID
	/** @brief The texture Name. */
	Name string
	/** @brief The file the pixels came from, if any. */
	Path string
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	/** @brief The number of channels in the texture. */
	ChannelCount uint8
	/** @brief The texture Generation. Incremented every time the data is reloaded. */
	Generation uint32
	/** @brief The filter used when the texture is magnified. */
	FilterMagnify TextureFilter
	/** @brief The filter used when the texture is minified. */
	FilterMinify TextureFilter
	/** @brief Generate mipmaps on upload. */
	Mipmaps bool
	/** @brief Backend specific data. */
	InternalData interface{}
}

func NewTexture(name string) *Texture {
	return &Texture{
		ID:            uuid.New(),
		Name:          name,
		Generation:    InvalidGeneration,
		FilterMagnify: TextureFilterModeLinear,
		FilterMinify:  TextureFilterModeLinearMipmapNearest,
		Mipmaps:       true,
	}
}

// IsLoaded reports whether pixels have been uploaded for this texture.
func (t *Texture) IsLoaded() bool {
	return t != nil && t.Generation != InvalidGeneration
}
