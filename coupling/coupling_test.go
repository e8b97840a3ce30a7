package coupling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gosh/kernel"
	"github.com/notargets/gosh/sh"
)

func TestWeight(t *testing.T) {
	var (
		tol = 1.e-14
	)
	// 1) Two constants couple to a constant with weight 1/sqrt(4 Pi)
	assert.InDelta(t, 1/math.Sqrt(4*math.Pi), Weight(0, 0, 0), tol)
	// 2) The selection rules zero the weight exactly: order mismatch,
	// triangle rule, odd degree parity
	assert.Zero(t, Weight(sh.CoefficientIndex(1, 1), sh.CoefficientIndex(1, 0),
		sh.CoefficientIndex(2, 0)))
	assert.Zero(t, Weight(sh.CoefficientIndex(1, 0), sh.CoefficientIndex(1, 0),
		sh.CoefficientIndex(3, 0)))
	assert.Zero(t, Weight(sh.CoefficientIndex(1, 0), sh.CoefficientIndex(1, 0),
		sh.CoefficientIndex(1, 0)))
	// 3) <1 0 1 0|2 0> = sqrt(2/3) puts the (1,0)x(1,0) -> (2,0) weight
	// at 1/sqrt(5 Pi)
	assert.InDelta(t, 1/math.Sqrt(5*math.Pi),
		Weight(sh.CoefficientIndex(1, 0), sh.CoefficientIndex(1, 0),
			sh.CoefficientIndex(2, 0)), tol)
}

func TestProduct(t *testing.T) {
	var (
		tol = 1.e-12
	)
	// 1) Length-1 vectors: the DC entry is lhs*rhs/sqrt(4 Pi)
	out := Product(1, []float64{3}, []float64{-2})
	require.Len(t, out, 1)
	assert.InDelta(t, -6/math.Sqrt(4*math.Pi), out[0], tol)
	// 2) Constant content in longer vectors stays in the DC slot
	out = Product(4, []float64{3, 0, 0, 0}, []float64{-2, 0, 0, 0})
	assert.InDelta(t, -6/math.Sqrt(4*math.Pi), out[0], tol)
	for i := 1; i < 4; i++ {
		assert.Zero(t, out[i])
	}
	// 3) General content matches the serial triple loop
	var (
		lhs = []float64{0.5, -1, 0.25, 0.75}
		rhs = []float64{1.5, 0.5, -0.25, 1}
	)
	out = Product(4, lhs, rhs)
	for i3 := 0; i3 < 4; i3++ {
		var want float64
		for i1 := 0; i1 < 4; i1++ {
			for i2 := 0; i2 < 4; i2++ {
				want += Weight(i1, i2, i3) * lhs[i1] * rhs[i2]
			}
		}
		assert.InDelta(t, want, out[i3], tol)
	}
	// 4) Worker counts only reassociate the fold
	single := Product(4, lhs, rhs, 1)
	for _, np := range []int{2, 3, 7} {
		outN := Product(4, lhs, rhs, np)
		for i3 := range outN {
			assert.InDelta(t, single[i3], outN[i3], tol)
		}
	}
}

func TestProducts(t *testing.T) {
	var (
		count = 4
		dims  = kernel.Space{X: 3, Y: 1, Z: 1}
		lhs   = make([]float64, dims.Size()*count)
		rhs   = make([]float64, dims.Size()*count)
	)
	for i := range lhs {
		lhs[i] = 0.25*float64(i) - 1
		rhs[i] = 1.5 - 0.125*float64(i)
	}
	// 1) Each instance reproduces the standalone product of its slices
	out := Products(dims, count, lhs, rhs)
	require.Len(t, out, dims.Size()*count)
	for n := 0; n < dims.Size(); n++ {
		o := n * count
		single := Product(count, lhs[o:o+count], rhs[o:o+count], 1)
		assert.Equal(t, single, out[o:o+count])
	}
	// 2) A one-instance volume degenerates to the single product
	out1 := Products(kernel.Space{X: 1, Y: 1, Z: 1}, count, lhs[:count], rhs[:count])
	assert.Equal(t, Product(count, lhs[:count], rhs[:count], 1), out1)
}

func TestTable(t *testing.T) {
	var (
		count = sh.CoefficientCount(2)
		tol   = 1.e-14
		tab   = NewTable(count)
	)
	// 1) The table holds exactly the nonzero weights
	var nnz int
	for i3 := 0; i3 < count; i3++ {
		for i1 := 0; i1 < count; i1++ {
			for i2 := 0; i2 < count; i2++ {
				if Weight(i1, i2, i3) != 0 {
					nnz++
				}
			}
		}
	}
	require.Equal(t, nnz, tab.W.NNZ())
	// 2) Apply matches the kernel product
	var (
		lhs = []float64{0.5, -1, 0.25, 0.75, 0.1, -0.3, 0.6, 0.2, -0.8}
		rhs = []float64{1.5, 0.5, -0.25, 1, -0.4, 0.7, 0.05, -0.15, 0.9}
	)
	want := Product(count, lhs, rhs, 1)
	got := tab.Apply(lhs, rhs)
	for i3 := range want {
		assert.InDelta(t, want[i3], got[i3], tol)
	}
	// 3) The one-hot DC product recovers the normalization constant
	one := make([]float64, count)
	one[0] = 1
	assert.InDelta(t, 1/math.Sqrt(4*math.Pi), tab.Apply(one, one)[0], tol)
	// 4) The stored weights are sealed against writes
	assert.Panics(t, func() { tab.W.Set(0, 0, 1) })
}
