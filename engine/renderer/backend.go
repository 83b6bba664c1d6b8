package renderer

import (
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(clearColour math.Vec4) error
	EndFrame() error
	// SetOverlay switches between depth-tested opaque drawing and alpha-blended
	// drawing on top of the scene.
	SetOverlay(enabled bool)
	TextureCreate(pixels []uint8, texture *metadata.Texture) error
	TextureDestroy(texture *metadata.Texture)
	TextureBind(texture *metadata.Texture, unit uint32)
	CreateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error
	UpdateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error
	DestroyGeometry(geometry *metadata.Geometry)
	DrawGeometry(geometry *metadata.Geometry) error
	ShaderCreate(shader *metadata.Shader, config *metadata.ShaderConfig) error
	ShaderDestroy(shader *metadata.Shader)
	ShaderUse(shader *metadata.Shader) error
	// SetUniform accepts math.Mat4, [9]float32, math.Vec4, math.Vec3, math.Vec2,
	// float32, int32 and bool. Uniforms the program does not use are ignored.
	SetUniform(shader *metadata.Shader, name string, value interface{}) error
}
