package metadata

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/orrery/engine/math"
)

/**
 * @brief How the vertices of a geometry are assembled into primitives.
 */
type GeometryTopology int

const (
	/** @brief Indexed triangle list. */
	GeometryTopologyTriangles GeometryTopology = iota
	/** @brief Closed line strip through every vertex, no indices. */
	GeometryTopologyLineLoop
)

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name string
	/** @brief The primitive topology. */
	Topology GeometryTopology
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D
	/** @brief An array of Indices. Empty for line loops. */
	Indices []uint32
}

/**
 * @brief Represents actual geometry uploaded to the GPU.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uuid.UUID
	/** @brief The geometry name. */
	Name string
	/** @brief The geometry generation. Incremented every time the geometry changes. */
	Generation uint32
	Topology   GeometryTopology
	/** @brief The number of vertices uploaded. */
	VertexCount uint32
	/** @brief The number of indices uploaded. */
	IndexCount uint32
	/** @brief Backend specific data. */
	InternalData interface{}
}
