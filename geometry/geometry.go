package geometry

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
	"github.com/pradeep-pyro/triangle"

	"github.com/notargets/gosh/sh"
)

// TriangulateDirections meshes a scattered direction set through Delaunay
// triangulation of its (theta, phi) chart. Needs at least three
// non-collinear directions.
func TriangulateDirections(points []sh.Point) (gm *graphics2D.TriMesh) {
	var (
		pts = make([][2]float64, len(points))
	)
	for i, p := range points {
		pts[i] = [2]float64{p.Theta, p.Phi}
	}
	faces := triangle.Delaunay(pts)
	gm = &graphics2D.TriMesh{
		XY:       make([]float32, 2*len(points)),
		TriVerts: make([][3]int64, len(faces)),
	}
	for i, p := range points {
		gm.XY[2*i] = float32(p.Theta)
		gm.XY[2*i+1] = float32(p.Phi)
	}
	for k, f := range faces {
		for n := 0; n < 3; n++ {
			gm.TriVerts[k][n] = int64(f[n])
		}
	}
	return
}

// PlotField renders a scalar over the triangulated directions, shading by
// the point values unless fieldO overrides them. Blocks forever once the
// window is up.
func PlotField(points []sh.Point, fieldO ...[]float64) {
	var (
		gm    = TriangulateDirections(points)
		field = make([]float32, len(points))
	)
	if len(fieldO) != 0 {
		for i, f := range fieldO[0] {
			field[i] = float32(f)
		}
	} else {
		for i, p := range points {
			field[i] = float32(p.Value)
		}
	}
	var (
		fMin, fMax = minMax(field)
		xMin, xMax = minMax(coordEntries(gm.XY, 0))
		yMin, yMax = minMax(coordEntries(gm.XY, 1))
	)
	fmt.Printf("fMin: %f, fMax: %f\n", fMin, fMax)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	vs := graphics2D.VertexScalar{
		TMesh:       gm,
		FieldValues: field,
	}
	ch.AddShadedVertexScalar(&vs, fMin, fMax)
	ch.AddTriMesh(*gm)
	for {
	}
}

func minMax(vals []float32) (vMin, vMax float32) {
	for i, v := range vals {
		if i == 0 {
			vMin = v
			vMax = v
		}
		if v < vMin {
			vMin = v
		}
		if v > vMax {
			vMax = v
		}
	}
	return
}

func coordEntries(xy []float32, dim int) (vals []float32) {
	vals = make([]float32, len(xy)/2)
	for i := range vals {
		vals[i] = xy[2*i+dim]
	}
	return
}
