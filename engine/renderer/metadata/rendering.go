package metadata

import "github.com/spaghettifunk/orrery/engine/math"

/**
 * @brief Lighting products for one draw: light colour times material colour.
 */
type Lighting struct {
	Ambient   math.Vec4
	Diffuse   math.Vec4
	Specular  math.Vec4
	Shininess float32
}

/**
 * @brief Everything the renderer needs to draw one geometry.
 */
type GeometryRenderData struct {
	/** @brief The model-view matrix. */
	ModelView math.Mat4
	Geometry  *Geometry
	/** @brief Optional. Drawn with Colour alone until the texture is loaded. */
	Texture *Texture
	Colour  math.Vec4
	/** @brief Phong lighting products. */
	Lighting Lighting
}

/**
 * @brief A frame's worth of work for the renderer.
 */
type RenderPacket struct {
	DeltaTime   float64
	ClearColour math.Vec4

	WorldShader *Shader
	Projection  math.Mat4
	/** @brief Light position in eye space. */
	LightPosition math.Vec4
	Geometries    []GeometryRenderData

	UIShader     *Shader
	UIProjection math.Mat4
	Texts        []*UIText
}
