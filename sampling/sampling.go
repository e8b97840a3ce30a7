package sampling

import (
	"math"

	"github.com/notargets/gosh/kernel"
	"github.com/notargets/gosh/sh"
)

// Tessellation fixes the longitude (X) by latitude (Y) resolution of a
// sphere grid. Y must be at least 2: the polar spacing divides by Y-1.
type Tessellation struct {
	X, Y int
}

func (tess Tessellation) VertexCount() int { return tess.X * tess.Y }

// Angles returns the direction of grid cell (longitude, latitude).
func (tess Tessellation) Angles(longitude, latitude int) (theta, phi float64) {
	theta = 2 * math.Pi * float64(longitude) / float64(tess.X)
	phi = math.Pi * float64(latitude) / float64(tess.Y-1)
	return
}

// VertexOffset flattens (longitude, latitude) into the vertex buffer.
func (tess Tessellation) VertexOffset(longitude, latitude int) int {
	return latitude + longitude*tess.Y
}

// emitQuad writes the two triangles of the cell's quad, sharing the
// diagonal from (longitude, latitude) to the wrapped (longitude+1,
// latitude+1) corner.
func (tess Tessellation) emitQuad(longitude, latitude int, baseIndex uint32, indices []uint32) {
	var (
		offset = 6 * tess.VertexOffset(longitude, latitude)
		lonP   = (longitude + 1) % tess.X
		latP   = (latitude + 1) % tess.Y
		i0     = baseIndex + uint32(tess.VertexOffset(longitude, latitude))
		i1     = baseIndex + uint32(tess.VertexOffset(longitude, latP))
		i2     = baseIndex + uint32(tess.VertexOffset(lonP, latP))
		i3     = baseIndex + uint32(tess.VertexOffset(lonP, latitude))
	)
	indices[offset] = i0
	indices[offset+1] = i1
	indices[offset+2] = i2
	indices[offset+3] = i0
	indices[offset+4] = i2
	indices[offset+5] = i3
}

// Sample evaluates one basis function over the tessellated sphere, emitting
// a vertex per grid cell and an index buffer of two triangles per quad with
// wraparound on both axes. Every cell is an independent work item.
func Sample(l, m int, tess Tessellation, npO ...int) (points []sh.Point, indices []uint32) {
	var (
		nVert = tess.VertexCount()
	)
	points = make([]sh.Point, nVert)
	indices = make([]uint32, 6*nVert)
	kernel.Run(kernel.Space{X: tess.X, Y: tess.Y, Z: 1},
		func(longitude, latitude, _ int) {
			theta, phi := tess.Angles(longitude, latitude)
			points[tess.VertexOffset(longitude, latitude)] = sh.Point{
				Value: sh.Evaluate(l, m, theta, phi),
				Theta: theta,
				Phi:   phi,
			}
			tess.emitQuad(longitude, latitude, 0, indices)
		}, npO...)
	return
}

// SampleSum reconstructs the coefficient-weighted radial field over the
// tessellated sphere, parallelized over cells and coefficients both.
func SampleSum(coefficientCount int, tess Tessellation, coefficients []float64,
	npO ...int) (points []sh.Point, indices []uint32) {
	points = make([]sh.Point, tess.VertexCount())
	indices = make([]uint32, 6*tess.VertexCount())
	SampleSumInto(coefficientCount, tess, coefficients, 0, points, indices, npO...)
	return
}

// SampleSumInto is the buffer-reusing form of SampleSum. The
// coefficient-zero worker claims each vertex, writing its direction, a zero
// value and the quad indices exactly once; every coefficient's contribution
// then accumulates through partition partials folded in partition order.
// baseIndex offsets the emitted indices so several meshes can reference one
// concatenated vertex buffer. points and indices must hold VertexCount()
// and 6*VertexCount() entries for this mesh.
func SampleSumInto(coefficientCount int, tess Tessellation, coefficients []float64,
	baseIndex uint32, points []sh.Point, indices []uint32, npO ...int) {
	var (
		nVert = tess.VertexCount()
	)
	kernel.RunReduce(kernel.Space{X: tess.X, Y: tess.Y, Z: coefficientCount}, nVert,
		func(longitude, latitude, c int, partial []float64) {
			theta, phi := tess.Angles(longitude, latitude)
			offset := tess.VertexOffset(longitude, latitude)
			if c == 0 {
				points[offset] = sh.Point{Theta: theta, Phi: phi}
				tess.emitQuad(longitude, latitude, baseIndex, indices)
			}
			partial[offset] += sh.EvaluateIndex(c, theta, phi) * coefficients[c]
		},
		func(partial []float64) {
			for v, val := range partial {
				points[v].Value += val
			}
		}, npO...)
}

// SampleSums reconstructs a volume of independent meshes. Instance n
// consumes coefficients[n*count : (n+1)*count] and writes its vertices at
// offset n*VertexCount() with a matching base index, so the concatenated
// index buffer stays globally valid.
func SampleSums(dims kernel.Space, coefficientCount int, tess Tessellation,
	coefficients []float64, npO ...int) (points []sh.Point, indices []uint32) {
	var (
		nVert = tess.VertexCount()
		nInst = dims.Size()
	)
	points = make([]sh.Point, nInst*nVert)
	indices = make([]uint32, 6*nInst*nVert)
	kernel.Run(dims, func(x, y, z int) {
		n := dims.Flat(x, y, z)
		SampleSumInto(coefficientCount, tess,
			coefficients[n*coefficientCount:(n+1)*coefficientCount],
			uint32(n*nVert),
			points[n*nVert:(n+1)*nVert],
			indices[6*n*nVert:6*(n+1)*nVert], 1)
	}, npO...)
	return
}
