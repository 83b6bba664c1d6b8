package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

// Interleaved position, normal, texcoord.
const vertexStride = int32(unsafe.Sizeof(math.Vertex3D{}))

type glGeometry struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	mode  uint32
}

func (r *OpenGLRenderer) CreateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error {
	if len(vertices) == 0 {
		return fmt.Errorf("geometry %s has no vertices", geometry.Name)
	}
	g := &glGeometry{}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	if geometry.Topology == metadata.GeometryTopologyTriangles {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	}

	geometry.InternalData = g
	if err := r.UpdateGeometry(geometry, vertices, indices); err != nil {
		gl.BindVertexArray(0)
		r.DestroyGeometry(geometry)
		return err
	}
	gl.BindVertexArray(0)
	return nil
}

// UpdateGeometry replaces the buffer contents of an existing geometry.
func (r *OpenGLRenderer) UpdateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error {
	g, ok := geometry.InternalData.(*glGeometry)
	if !ok {
		return fmt.Errorf("geometry %s was not created by the OpenGL backend", geometry.Name)
	}
	if len(vertices) == 0 {
		return fmt.Errorf("geometry %s has no vertices", geometry.Name)
	}

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)

	switch geometry.Topology {
	case metadata.GeometryTopologyTriangles:
		if len(indices) == 0 {
			gl.BindVertexArray(0)
			return fmt.Errorf("geometry %s has no indices", geometry.Name)
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.DYNAMIC_DRAW)
		g.count = int32(len(indices))
		g.mode = gl.TRIANGLES
	case metadata.GeometryTopologyLineLoop:
		g.count = int32(len(vertices))
		g.mode = gl.LINE_LOOP
	}
	gl.BindVertexArray(0)

	geometry.VertexCount = uint32(len(vertices))
	geometry.IndexCount = uint32(len(indices))
	return nil
}

func (r *OpenGLRenderer) DestroyGeometry(geometry *metadata.Geometry) {
	g, ok := geometry.InternalData.(*glGeometry)
	if !ok {
		return
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
	geometry.InternalData = nil
}

func (r *OpenGLRenderer) DrawGeometry(geometry *metadata.Geometry) error {
	g, ok := geometry.InternalData.(*glGeometry)
	if !ok {
		return fmt.Errorf("geometry %s is not uploaded", geometry.Name)
	}
	gl.BindVertexArray(g.vao)
	if g.mode == gl.TRIANGLES {
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(g.mode, 0, g.count)
	}
	gl.BindVertexArray(0)
	return nil
}
