package metadata

type ResourceType int

const (
	/** @brief Not a resource the engine knows how to load. */
	ResourceTypeNone ResourceType = iota
	/** @brief Image resource type, decoded to RGBA pixels. */
	ResourceTypeImage
	/** @brief GLSL shader source. */
	ResourceTypeShader
	/** @brief Bitmap font descriptor (.fnt). */
	ResourceTypeBitmapFont
)

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeImage:
		return "image"
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeBitmapFont:
		return "bitmap font"
	}
	return "none"
}

type Resource struct {
	/** @brief The Name of the resource. */
	Name string
	/** @brief The full file path to the resource. */
	FullPath string
	/** @brief The type of the resource. */
	Type ResourceType
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. Its concrete type depends on Type. */
	Data interface{}
}

/**
 * @brief A structure to hold image resource data.
 */
type ImageResourceData struct {
	/** @brief The number of channels. Always 4: pixels are RGBA8. */
	ChannelCount uint8
	/** @brief The width of the image. */
	Width uint32
	/** @brief The height of the image. */
	Height uint32
	/** @brief The pixel data of the image, rows tightly packed. */
	Pixels []uint8
}

type ImageResourceParams struct {
	/** @brief Indicates if the image should be flipped on the y-axis when loaded. */
	FlipY bool
}
