package renderer

import (
	"fmt"

	"github.com/spaghettifunk/orrery/engine/platform"
	"github.com/spaghettifunk/orrery/engine/renderer/opengl"
)

var _ RendererBackend = (*opengl.OpenGLRenderer)(nil)

type RendererType uint8

const (
	OpenGL RendererType = iota
	Vulkan
	DirectX
	Metal
)

func (rt RendererType) String() string {
	switch rt {
	case OpenGL:
		return "opengl"
	case Vulkan:
		return "vulkan"
	case DirectX:
		return "directx"
	case Metal:
		return "metal"
	}
	return "unknown"
}

// NewBackend creates the backend of the given type on top of the platform window.
func NewBackend(rendererType RendererType, p *platform.Platform) (RendererBackend, error) {
	switch rendererType {
	case OpenGL:
		return opengl.New(p), nil
	default:
		return nil, fmt.Errorf("renderer backend %s is not supported", rendererType)
	}
}
