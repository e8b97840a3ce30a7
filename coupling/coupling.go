package coupling

import (
	"math"

	"github.com/notargets/gosh/kernel"
	"github.com/notargets/gosh/sh"
	"github.com/notargets/gosh/special"
)

// Weight couples basis functions i1 and i2 into i3: the degree
// normalization times the zero-order and full Clebsch-Gordan coefficients.
// The coefficient evaluator returns zero outside the selection rules, so
// every index triple is valid input.
func Weight(i1, i2, i3 int) float64 {
	var (
		l1, m1 = sh.CoefficientLM(i1)
		l2, m2 = sh.CoefficientLM(i2)
		l3, m3 = sh.CoefficientLM(i3)
	)
	return math.Sqrt(float64((2*l1+1)*(2*l2+1))/(4*math.Pi*float64(2*l3+1))) *
		special.ClebschGordan(l1, l2, l3, 0, 0, 0) *
		special.ClebschGordan(l1, l2, l3, m1, m2, m3)
}

// Product couples two coefficient vectors into a third, parallelized over
// every (lhs, rhs, out) index triple.
func Product(coefficientCount int, lhs, rhs []float64, npO ...int) (out []float64) {
	out = make([]float64, coefficientCount)
	ProductInto(coefficientCount, lhs, rhs, out, npO...)
	return
}

// ProductInto is the buffer-reusing form of Product. Contributions
// accumulate into out through partition partials folded in partition
// order. Callers zero out first for a fresh product.
func ProductInto(coefficientCount int, lhs, rhs, out []float64, npO ...int) {
	kernel.RunReduce(
		kernel.Space{X: coefficientCount, Y: coefficientCount, Z: coefficientCount},
		coefficientCount,
		func(i1, i2, i3 int, partial []float64) {
			partial[i3] += Weight(i1, i2, i3) * lhs[i1] * rhs[i2]
		},
		func(partial []float64) {
			for i3, val := range partial {
				out[i3] += val
			}
		}, npO...)
}

// Products couples a volume of independent vector pairs, instance n
// consuming and producing the n-th coefficient-count-sized slice.
func Products(dims kernel.Space, coefficientCount int, lhs, rhs []float64,
	npO ...int) (out []float64) {
	out = make([]float64, dims.Size()*coefficientCount)
	kernel.Run(dims, func(x, y, z int) {
		var (
			n = dims.Flat(x, y, z)
			o = n * coefficientCount
		)
		ProductInto(coefficientCount, lhs[o:o+coefficientCount],
			rhs[o:o+coefficientCount], out[o:o+coefficientCount], 1)
	}, npO...)
	return
}
