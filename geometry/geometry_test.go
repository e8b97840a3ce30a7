package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gosh/sh"
)

func TestTriangulateDirections(t *testing.T) {
	// 1) Four corners of a convex quad triangulate into two triangles
	// covering every vertex
	quad := []sh.Point{
		{Theta: 0, Phi: 0},
		{Theta: 1.25, Phi: 0},
		{Theta: 1, Phi: 1},
		{Theta: 0, Phi: 0.75},
	}
	gm := TriangulateDirections(quad)
	require.Len(t, gm.TriVerts, 2)
	require.Len(t, gm.XY, 8)
	seen := make(map[int64]bool)
	for _, tri := range gm.TriVerts {
		assert.NotEqual(t, tri[0], tri[1])
		assert.NotEqual(t, tri[1], tri[2])
		assert.NotEqual(t, tri[2], tri[0])
		for n := 0; n < 3; n++ {
			require.GreaterOrEqual(t, tri[n], int64(0))
			require.Less(t, tri[n], int64(len(quad)))
			seen[tri[n]] = true
		}
	}
	assert.Len(t, seen, len(quad))
	// 2) Chart coordinates carry through
	for i, p := range quad {
		assert.Equal(t, float32(p.Theta), gm.XY[2*i])
		assert.Equal(t, float32(p.Phi), gm.XY[2*i+1])
	}
	// 3) A scattered set triangulates within the planar Euler bounds,
	// 2n-2-hull triangles for n points
	points := spiralDirections(40)
	gm = TriangulateDirections(points)
	nTri := len(gm.TriVerts)
	assert.GreaterOrEqual(t, nTri, len(points)-2)
	assert.LessOrEqual(t, nTri, 2*len(points)-5)
	for _, tri := range gm.TriVerts {
		for n := 0; n < 3; n++ {
			assert.Less(t, tri[n], int64(len(points)))
		}
	}
}

func spiralDirections(n int) (points []sh.Point) {
	var (
		golden = (1 + math.Sqrt(5)) / 2
	)
	points = make([]sh.Point, n)
	for i := range points {
		var (
			theta = 2 * math.Pi * math.Mod(float64(i)/golden, 1)
			phi   = math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
		)
		points[i] = sh.Point{
			Value: sh.Evaluate(2, 1, theta, phi),
			Theta: theta,
			Phi:   phi,
		}
	}
	return
}

func TestPlotDirections(t *testing.T) {
	if !testing.Verbose() {
		return
	}
	PlotField(spiralDirections(500))
}
