package math

import (
	"fmt"
	stdmath "math"

	"github.com/chewxy/math32"
)

/**
 * @brief Generates a UV sphere sampled on latitude and longitude bands.
 * Normals point outward and equal the unit position. Texture coordinates come
 * straight from the band fractions, so the seam and poles are not corrected.
 *
 * @param latitudeBands The number of bands from pole to pole. Must be at least 1.
 * @param longitudeBands The number of bands around the equator. Must be at least 1.
 * @param radius The radius of the sphere.
 * @return (latitudeBands+1)*(longitudeBands+1) vertices and 6*latitudeBands*longitudeBands indices.
 */
func GenerateSphere(latitudeBands, longitudeBands uint32, radius float32) ([]Vertex3D, []uint32, error) {
	if latitudeBands < 1 || longitudeBands < 1 {
		return nil, nil, fmt.Errorf("sphere needs at least one band, got %dx%d", latitudeBands, longitudeBands)
	}

	vertices := make([]Vertex3D, 0, (latitudeBands+1)*(longitudeBands+1))
	for lat := uint32(0); lat <= latitudeBands; lat++ {
		theta := float32(lat) * K_PI / float32(latitudeBands)
		sinTheta := math32.Sin(theta)
		cosTheta := math32.Cos(theta)

		for lon := uint32(0); lon <= longitudeBands; lon++ {
			phi := float32(lon) * K_PI_2 / float32(longitudeBands)
			sinPhi := math32.Sin(phi)
			cosPhi := math32.Cos(phi)

			normal := Vec3{
				X: cosPhi * sinTheta,
				Y: cosTheta,
				Z: sinPhi * sinTheta,
			}
			vertices = append(vertices, Vertex3D{
				Position: normal.MulScalar(radius),
				Normal:   normal,
				Texcoord: Vec2{
					X: 1 - float32(lon)/float32(longitudeBands),
					Y: 1 - float32(lat)/float32(latitudeBands),
				},
			})
		}
	}

	stride := longitudeBands + 1
	indices := make([]uint32, 0, 6*latitudeBands*longitudeBands)
	for lat := uint32(0); lat < latitudeBands; lat++ {
		for lon := uint32(0); lon < longitudeBands; lon++ {
			first := lat*stride + lon
			second := first + stride
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return vertices, indices, nil
}

/**
 * @brief Generates a unit circle in the XZ plane, meant to be drawn as a line loop.
 * Points sit at angle θ+increment for θ = 0, increment, 2*increment... while θ < 2π.
 * Normals point up.
 */
func GenerateCircle(increment float32) ([]Vertex3D, error) {
	if increment <= 0 {
		return nil, fmt.Errorf("circle increment must be positive, got %f", increment)
	}

	step := float64(increment)
	vertices := []Vertex3D{}
	for i := 0; float64(i)*step < 2*stdmath.Pi; i++ {
		angle := float32(float64(i+1) * step)
		vertices = append(vertices, Vertex3D{
			Position: Vec3{X: math32.Cos(angle), Y: 0, Z: math32.Sin(angle)},
			Normal:   NewVec3Up(),
		})
	}
	return vertices, nil
}
