package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gosh/sampling"
)

func TestRunSample(t *testing.T) {
	var (
		err       error
		dir       = t.TempDir()
		inputFile = filepath.Join(dir, "dc.yaml")
		meshFile  = filepath.Join(dir, "dc.gosh")
	)
	fileInput := []byte(`
Title: Pure DC
MaxDegree: 1
TessellationX: 8
TessellationY: 5
Coefficients: [1, 0, 0, 0]
`)
	if err = os.WriteFile(inputFile, fileInput, 0644); err != nil {
		panic(err)
	}
	ms := &ModelSample{InputFile: inputFile, MeshFile: meshFile}
	points, indices, tess := RunSample(ms)
	assert.Equal(t, tess, sampling.Tessellation{X: 8, Y: 5})
	assert.Equal(t, len(points), 40)
	assert.Equal(t, len(indices), 240)
	// The mesh file holds the unrolled chart, wrapped quads dropped
	gm, field, err := sampling.ReadMeshFile(meshFile)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, len(gm.XY), 80)
	assert.Equal(t, len(gm.TriVerts), 56)
	assert.Equal(t, len(field), 40)
}

func TestRunProduct(t *testing.T) {
	var (
		err       error
		dir       = t.TempDir()
		inputFile = filepath.Join(dir, "couple.yaml")
	)
	fileInput := []byte(`
Title: Constant volume
MaxDegree: 0
InstancesX: 2
LHS: [2, 5]
RHS: [3, 7]
`)
	if err = os.WriteFile(inputFile, fileInput, 0644); err != nil {
		panic(err)
	}
	mp := &ModelProduct{InputFile: inputFile}
	out := RunProduct(mp)
	assert.Equal(t, len(out), 2)
	for i, want := range []float64{6, 35} {
		want /= math.Sqrt(4 * math.Pi)
		if math.Abs(out[i]-want) > 1.e-12 {
			t.Errorf("instance %d DC product %v, want %v", i, out[i], want)
		}
	}
	// The table path couples to the same values
	mp.UseTable = true
	tabOut := RunProduct(mp)
	assert.Equal(t, len(tabOut), 2)
	for i := range out {
		if math.Abs(out[i]-tabOut[i]) > 1.e-14 {
			t.Errorf("instance %d table product %v, kernel product %v", i, tabOut[i], out[i])
		}
	}
}

func TestRunProject(t *testing.T) {
	mp := &ModelProject{NDirections: 200, L: 1, M: -1}
	fit, distance := RunProject(mp)
	assert.Equal(t, len(fit), 4)
	if distance > 1.e-8 {
		t.Errorf("coefficient recovery distance %v", distance)
	}
}
