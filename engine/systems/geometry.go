package systems

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type GeometrySystemConfig struct {
	/** @brief The maximum number of geometries that can be uploaded at once. */
	MaxGeometryCount uint32
}

type GeometrySystem struct {
	Config     *GeometrySystemConfig
	geometries map[string]*metadata.Geometry
	backend    renderer.RendererBackend
}

func NewGeometrySystem(config *GeometrySystemConfig, backend renderer.RendererBackend) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0")
		core.LogWarn(err.Error())
		return nil, err
	}
	return &GeometrySystem{
		Config:     config,
		geometries: make(map[string]*metadata.Geometry),
		backend:    backend,
	}, nil
}

/**
 * @brief Uploads the geometry described by config. A geometry with the same
 * name that already exists is returned as is.
 *
 * @param config The geometry configuration.
 * @return The uploaded geometry.
 */
func (gs *GeometrySystem) AcquireFromConfig(config metadata.GeometryConfig) (*metadata.Geometry, error) {
	if g, ok := gs.geometries[config.Name]; ok {
		return g, nil
	}
	if uint32(len(gs.geometries)) >= gs.Config.MaxGeometryCount {
		return nil, fmt.Errorf("geometry system is full (%d geometries), cannot upload %s", gs.Config.MaxGeometryCount, config.Name)
	}

	g := &metadata.Geometry{
		ID:       uuid.New(),
		Name:     config.Name,
		Topology: config.Topology,
	}
	if err := gs.backend.CreateGeometry(g, config.Vertices, config.Indices); err != nil {
		return nil, fmt.Errorf("failed to upload geometry %s: %w", config.Name, err)
	}
	g.VertexCount = uint32(len(config.Vertices))
	g.IndexCount = uint32(len(config.Indices))
	gs.geometries[config.Name] = g
	core.LogDebug("geometry %s uploaded (%d vertices, %d indices)", g.Name, g.VertexCount, g.IndexCount)
	return g, nil
}

func (gs *GeometrySystem) Get(name string) (*metadata.Geometry, bool) {
	g, ok := gs.geometries[name]
	return g, ok
}

// Update replaces the vertices and indices of an uploaded geometry.
func (gs *GeometrySystem) Update(g *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error {
	if err := gs.backend.UpdateGeometry(g, vertices, indices); err != nil {
		return fmt.Errorf("failed to update geometry %s: %w", g.Name, err)
	}
	g.VertexCount = uint32(len(vertices))
	g.IndexCount = uint32(len(indices))
	g.Generation++
	return nil
}

func (gs *GeometrySystem) Release(name string) {
	g, ok := gs.geometries[name]
	if !ok {
		return
	}
	gs.backend.DestroyGeometry(g)
	delete(gs.geometries, name)
}

func (gs *GeometrySystem) Shutdown() error {
	for name := range gs.geometries {
		gs.Release(name)
	}
	return nil
}

/**
 * @brief Generates the configuration of a UV sphere.
 *
 * @param name The name of the geometry.
 * @param latitudeBands The number of bands from pole to pole.
 * @param longitudeBands The number of bands around the equator.
 * @param radius The sphere radius.
 * @return A geometry configuration ready for AcquireFromConfig.
 */
func GenerateSphereConfig(name string, latitudeBands, longitudeBands uint32, radius float32) (metadata.GeometryConfig, error) {
	vertices, indices, err := math.GenerateSphere(latitudeBands, longitudeBands, radius)
	if err != nil {
		return metadata.GeometryConfig{}, err
	}
	return metadata.GeometryConfig{
		Name:     name,
		Topology: metadata.GeometryTopologyTriangles,
		Vertices: vertices,
		Indices:  indices,
	}, nil
}

// GenerateCircleConfig generates a unit circle in the XZ plane drawn as a line loop.
func GenerateCircleConfig(name string, increment float32) (metadata.GeometryConfig, error) {
	vertices, err := math.GenerateCircle(increment)
	if err != nil {
		return metadata.GeometryConfig{}, err
	}
	return metadata.GeometryConfig{
		Name:     name,
		Topology: metadata.GeometryTopologyLineLoop,
		Vertices: vertices,
	}, nil
}
