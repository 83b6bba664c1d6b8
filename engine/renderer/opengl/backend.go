package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/platform"
)

type OpenGLRenderer struct {
	platform    *platform.Platform
	FrameNumber uint64

	framebufferWidth  uint32
	framebufferHeight uint32
	initialized       bool
}

func New(p *platform.Platform) *OpenGLRenderer {
	return &OpenGLRenderer{
		platform: p,
	}
}

// Initialize loads the GL entry points for the context current on the
// platform window. It must run on the thread that owns that context.
func (r *OpenGLRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %s", core.ErrGraphicsUnavailable, err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	glsl := gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	core.LogInfo("%s: OpenGL %s, GLSL %s", appName, version, glsl)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w, h := appWidth, appHeight
	if r.platform != nil && r.platform.Window != nil {
		w, h = r.platform.FramebufferSize()
	}
	if err := r.Resized(w, h); err != nil {
		return err
	}
	r.initialized = true
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	if !r.initialized {
		return nil
	}
	gl.Finish()
	r.initialized = false
	return nil
}

func (r *OpenGLRenderer) Resized(width, height uint32) error {
	r.framebufferWidth = width
	r.framebufferHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))
	core.LogDebug("OpenGL renderer resized: %dx%d", width, height)
	return nil
}

func (r *OpenGLRenderer) BeginFrame(clearColour math.Vec4) error {
	gl.ClearColor(clearColour.X, clearColour.Y, clearColour.Z, clearColour.W)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.SetOverlay(false)
	return nil
}

func (r *OpenGLRenderer) EndFrame() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		core.LogWarn("OpenGL error 0x%x in frame %d", code, r.FrameNumber)
	}
	if r.platform != nil {
		r.platform.SwapBuffers()
	}
	r.FrameNumber++
	return nil
}

func (r *OpenGLRenderer) SetOverlay(enabled bool) {
	if enabled {
		gl.Disable(gl.DEPTH_TEST)
		gl.Enable(gl.BLEND)
		return
	}
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
