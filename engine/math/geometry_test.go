package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSphereCounts(t *testing.T) {
	tests := []struct {
		lat, lon uint32
	}{
		{1, 1},
		{2, 3},
		{50, 50},
	}
	for _, tt := range tests {
		vertices, indices, err := GenerateSphere(tt.lat, tt.lon, 1)
		require.NoError(t, err)
		assert.Len(t, vertices, int((tt.lat+1)*(tt.lon+1)))
		assert.Len(t, indices, int(6*tt.lat*tt.lon))

		for _, i := range indices {
			assert.Less(t, i, uint32(len(vertices)))
		}
	}
}

func TestGenerateSphereRejectsZeroBands(t *testing.T) {
	_, _, err := GenerateSphere(0, 10, 1)
	assert.Error(t, err)
	_, _, err = GenerateSphere(10, 0, 1)
	assert.Error(t, err)
}

func TestGenerateSphereVertices(t *testing.T) {
	vertices, _, err := GenerateSphere(50, 50, 2)
	require.NoError(t, err)

	for _, v := range vertices {
		assert.InDelta(t, 1.0, v.Normal.Length(), tolerance)
		assert.True(t, v.Position.Compare(v.Normal.MulScalar(2), tolerance))
	}

	// north pole first, south pole last
	assert.True(t, vertices[0].Position.Compare(Vec3{0, 2, 0}, tolerance))
	assert.True(t, vertices[len(vertices)-1].Position.Compare(Vec3{0, -2, 0}, tolerance))

	assert.Equal(t, Vec2{1, 1}, vertices[0].Texcoord)
	assert.Equal(t, Vec2{0, 1}, vertices[50].Texcoord)
	assert.Equal(t, Vec2{1, 0}, vertices[51*50].Texcoord)
	assert.Equal(t, Vec2{0, 0}, vertices[len(vertices)-1].Texcoord)
}

func TestGenerateSphereIndexLayout(t *testing.T) {
	_, indices, err := GenerateSphere(2, 3, 1)
	require.NoError(t, err)

	// first quad: first=0, second=4
	assert.Equal(t, []uint32{0, 4, 1, 4, 5, 1}, indices[:6])
	// last quad: first=1*4+2=6, second=10
	assert.Equal(t, []uint32{6, 10, 7, 10, 11, 7}, indices[len(indices)-6:])
}

func TestGenerateCircle(t *testing.T) {
	vertices, err := GenerateCircle(0.1)
	require.NoError(t, err)
	assert.Len(t, vertices, 63)

	for _, v := range vertices {
		assert.InDelta(t, 1.0, v.Position.Length(), tolerance)
		assert.Zero(t, v.Position.Y)
		assert.Equal(t, NewVec3Up(), v.Normal)
	}
	assert.InDelta(t, math32.Cos(0.1), vertices[0].Position.X, tolerance)
	assert.InDelta(t, math32.Sin(0.1), vertices[0].Position.Z, tolerance)

	quarter, err := GenerateCircle(K_HALF_PI)
	require.NoError(t, err)
	assert.Len(t, quarter, 4)
}

func TestGenerateCircleRejectsNonPositiveIncrement(t *testing.T) {
	_, err := GenerateCircle(0)
	assert.Error(t, err)
	_, err = GenerateCircle(-0.1)
	assert.Error(t, err)
}
