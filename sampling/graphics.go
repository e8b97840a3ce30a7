package sampling

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gosh/sh"
)

// PlotMesh unrolls a sampled sphere mesh into the theta-phi plane as an AVS
// TriMesh with a per-vertex scalar field. Triangles that wrap in either
// angle are dropped: unrolled, their edges would span the whole chart.
// Concatenated multi-instance meshes decode per instance of
// tess.VertexCount() vertices.
func PlotMesh(tess Tessellation, points []sh.Point, indices []uint32) (gm geometry.TriMesh, field []float32) {
	gm = geometry.TriMesh{
		XY: make([]float32, 2*len(points)),
	}
	field = make([]float32, len(points))
	for i, p := range points {
		gm.XY[2*i] = float32(p.Theta)
		gm.XY[2*i+1] = float32(p.Phi)
		field[i] = float32(p.Value)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		if tess.wraps(v0, v1) || tess.wraps(v1, v2) || tess.wraps(v2, v0) {
			continue
		}
		gm.TriVerts = append(gm.TriVerts,
			[3]int64{int64(v0), int64(v1), int64(v2)})
	}
	return
}

// wraps reports whether the edge a-b crosses a modulo seam of the grid.
func (tess Tessellation) wraps(a, b uint32) bool {
	var (
		ia, ib     = int(a) % tess.VertexCount(), int(b) % tess.VertexCount()
		lonA, latA = ia / tess.Y, ia % tess.Y
		lonB, latB = ib / tess.Y, ib % tess.Y
	)
	return absInt(lonA-lonB) > 1 || absInt(latA-latB) > 1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Plot renders a sampled mesh shaded by its radial values. Blocks forever
// once the window is up. The optional fMM pins the color range.
func Plot(tess Tessellation, points []sh.Point, indices []uint32, fMM ...float32) {
	gm, field := PlotMesh(tess, points, indices)
	var (
		fMin, fMax = fieldMinMax(field)
		xMin, xMax = fieldMinMax(evenEntries(gm.XY))
		yMin, yMax = fieldMinMax(oddEntries(gm.XY))
	)
	if len(fMM) == 2 {
		fMin, fMax = fMM[0], fMM[1]
	}
	fmt.Printf("fMin: %f, fMax: %f\n", fMin, fMax)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	vs := geometry.VertexScalar{
		TMesh:       &gm,
		FieldValues: field,
	}
	ch.AddShadedVertexScalar(&vs, fMin, fMax)
	ch.AddTriMesh(gm)
	for {
	}
}

func fieldMinMax(field []float32) (fMin, fMax float32) {
	for i, f := range field {
		if i == 0 {
			fMin = f
			fMax = f
		}
		if f < fMin {
			fMin = f
		}
		if f > fMax {
			fMax = f
		}
	}
	return
}

func evenEntries(xy []float32) (e []float32) {
	e = make([]float32, len(xy)/2)
	for i := range e {
		e[i] = xy[2*i]
	}
	return
}

func oddEntries(xy []float32) (o []float32) {
	o = make([]float32, len(xy)/2)
	for i := range o {
		o[i] = xy[2*i+1]
	}
	return
}

// WriteMeshFile writes a little-endian binary snapshot of a plot mesh:
// dimension count, then the triangle and coordinate and field sections,
// each prefixed with its length as int64.
func WriteMeshFile(fileName string, gm geometry.TriMesh, field []float32) (err error) {
	file, err := os.Create(fileName)
	if err != nil {
		return
	}
	defer file.Close()
	for _, chunk := range []interface{}{
		int64(2),
		int64(len(gm.TriVerts)),
		gm.TriVerts,
		int64(len(gm.XY)),
		gm.XY,
		int64(len(field)),
		field,
	} {
		if err = binary.Write(file, binary.LittleEndian, chunk); err != nil {
			return
		}
	}
	return
}

// ReadMeshFile reads back a WriteMeshFile snapshot.
func ReadMeshFile(fileName string) (gm geometry.TriMesh, field []float32, err error) {
	file, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer file.Close()
	var nDim, nTri, nXY, nField int64
	if err = binary.Read(file, binary.LittleEndian, &nDim); err != nil {
		return
	}
	if nDim != 2 {
		err = fmt.Errorf("unsupported mesh dimension %d", nDim)
		return
	}
	if err = binary.Read(file, binary.LittleEndian, &nTri); err != nil {
		return
	}
	gm.TriVerts = make([][3]int64, nTri)
	if err = binary.Read(file, binary.LittleEndian, gm.TriVerts); err != nil {
		return
	}
	if err = binary.Read(file, binary.LittleEndian, &nXY); err != nil {
		return
	}
	gm.XY = make([]float32, nXY)
	if err = binary.Read(file, binary.LittleEndian, gm.XY); err != nil {
		return
	}
	if err = binary.Read(file, binary.LittleEndian, &nField); err != nil {
		return
	}
	field = make([]float32, nField)
	err = binary.Read(file, binary.LittleEndian, field)
	return
}
