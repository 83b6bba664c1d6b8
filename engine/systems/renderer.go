package systems

import (
	"fmt"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

// Uniform names shared by the world and overlay shaders.
const (
	UniformProjection      = "u_projMatrix"
	UniformModelView       = "u_mvMatrix"
	UniformNormalMatrix    = "u_nMatrix"
	UniformLightPosition   = "u_lightPosition"
	UniformAmbientProduct  = "u_ambientProduct"
	UniformDiffuseProduct  = "u_diffuseProduct"
	UniformSpecularProduct = "u_specularProduct"
	UniformShininess       = "u_shininess"
	UniformColour          = "u_color"
	UniformUseTexture      = "u_useTexture"
	UniformSampler         = "u_TextureSampler"
)

type RendererSystem struct {
	backend renderer.RendererBackend

	// application
	AppName   string
	AppWidth  uint32
	AppHeight uint32

	// The current window framebuffer width.
	FramebufferWidth uint32
	// The current window framebuffer height.
	FramebufferHeight uint32
}

func NewRendererSystem(appName string, appWidth, appHeight uint32, backend renderer.RendererBackend) (*RendererSystem, error) {
	if backend == nil {
		return nil, fmt.Errorf("renderer system needs a backend")
	}
	return &RendererSystem{
		backend:           backend,
		AppName:           appName,
		AppWidth:          appWidth,
		AppHeight:         appHeight,
		FramebufferWidth:  appWidth,
		FramebufferHeight: appHeight,
	}, nil
}

func (r *RendererSystem) Initialize() error {
	if err := r.backend.Initialize(r.AppName, r.AppWidth, r.AppHeight); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	return nil
}

func (r *RendererSystem) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *RendererSystem) OnResized(width, height uint32) error {
	r.FramebufferWidth = width
	r.FramebufferHeight = height
	return r.backend.Resized(width, height)
}

// AspectRatio of the framebuffer, 1 while it has no area.
func (r *RendererSystem) AspectRatio() float32 {
	if r.FramebufferWidth == 0 || r.FramebufferHeight == 0 {
		return 1
	}
	return float32(r.FramebufferWidth) / float32(r.FramebufferHeight)
}

/**
 * @brief Draws a frame: the world geometries in order, then the overlay texts
 * on top, then presents.
 */
func (r *RendererSystem) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.ClearColour); err != nil {
		return err
	}

	if packet.WorldShader != nil && len(packet.Geometries) > 0 {
		if err := r.drawWorld(packet); err != nil {
			return err
		}
	}
	if packet.UIShader != nil && len(packet.Texts) > 0 {
		if err := r.drawUI(packet); err != nil {
			return err
		}
	}

	return r.backend.EndFrame()
}

func (r *RendererSystem) drawWorld(packet *metadata.RenderPacket) error {
	shader := packet.WorldShader
	if err := r.backend.ShaderUse(shader); err != nil {
		return err
	}
	globals := map[string]interface{}{
		UniformProjection:    packet.Projection,
		UniformLightPosition: packet.LightPosition,
		UniformSampler:       int32(0),
	}
	if err := r.setUniforms(shader, globals); err != nil {
		return err
	}

	for i := range packet.Geometries {
		d := &packet.Geometries[i]
		if d.Geometry == nil {
			continue
		}
		textured := d.Texture.IsLoaded()
		instance := map[string]interface{}{
			UniformModelView:       d.ModelView,
			UniformNormalMatrix:    d.ModelView.NormalMatrix(),
			UniformColour:          d.Colour,
			UniformAmbientProduct:  d.Lighting.Ambient,
			UniformDiffuseProduct:  d.Lighting.Diffuse,
			UniformSpecularProduct: d.Lighting.Specular,
			UniformShininess:       d.Lighting.Shininess,
			UniformUseTexture:      textured,
		}
		if err := r.setUniforms(shader, instance); err != nil {
			return err
		}
		if textured {
			r.backend.TextureBind(d.Texture, 0)
		} else {
			r.backend.TextureBind(nil, 0)
		}
		if err := r.backend.DrawGeometry(d.Geometry); err != nil {
			return err
		}
	}
	return nil
}

func (r *RendererSystem) drawUI(packet *metadata.RenderPacket) error {
	shader := packet.UIShader
	r.backend.SetOverlay(true)
	defer r.backend.SetOverlay(false)

	if err := r.backend.ShaderUse(shader); err != nil {
		return err
	}
	globals := map[string]interface{}{
		UniformProjection: packet.UIProjection,
		UniformSampler:    int32(0),
	}
	if err := r.setUniforms(shader, globals); err != nil {
		return err
	}

	for _, t := range packet.Texts {
		if t.Text == "" || t.Geometry == nil || t.Font == nil || !t.Font.Atlas.IsLoaded() {
			continue
		}
		model := math.NewMat4Translation(math.NewVec3(t.Position.X, t.Position.Y, 0))
		if err := r.setUniforms(shader, map[string]interface{}{
			UniformModelView: model,
			UniformColour:    t.Colour,
		}); err != nil {
			return err
		}
		r.backend.TextureBind(t.Font.Atlas, 0)
		if err := r.backend.DrawGeometry(t.Geometry); err != nil {
			return err
		}
	}
	return nil
}

func (r *RendererSystem) setUniforms(shader *metadata.Shader, uniforms map[string]interface{}) error {
	for name, value := range uniforms {
		if err := r.backend.SetUniform(shader, name, value); err != nil {
			return err
		}
	}
	return nil
}
