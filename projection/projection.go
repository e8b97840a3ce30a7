package projection

import (
	"github.com/notargets/gosh/kernel"
	"github.com/notargets/gosh/sh"
	"github.com/notargets/gosh/utils"
)

// CalculateMatrix fills a directions x coefficients matrix with basis
// values: row d, column c holds basis function c evaluated at direction d.
// Every (direction, coefficient) pair is an independent work item owning its
// slot, accumulated onto the freshly zeroed target.
func CalculateMatrix(points []sh.Point, coefficientCount int, npO ...int) (R utils.Matrix) {
	var (
		nDir = len(points)
	)
	R = utils.NewMatrix(nDir, coefficientCount)
	kernel.Run(kernel.Space{X: nDir, Y: coefficientCount, Z: 1},
		func(d, c, _ int) {
			p := points[d]
			R.DataP[d*coefficientCount+c] += sh.EvaluateIndex(c, p.Theta, p.Phi)
		}, npO...)
	return
}

// CalculateMatrices fills one matrix per instance of a volume of independent
// direction batches, each consuming its own contiguous perInstance slice of
// points. The outer launch parallelizes across instances, so the per
// instance fill runs on a single worker.
func CalculateMatrices(dims kernel.Space, points []sh.Point, perInstance,
	coefficientCount int, npO ...int) (R []utils.Matrix) {
	R = make([]utils.Matrix, dims.Size())
	kernel.Run(dims, func(x, y, z int) {
		n := dims.Flat(x, y, z)
		R[n] = CalculateMatrix(points[n*perInstance:(n+1)*perInstance],
			coefficientCount, 1)
	}, npO...)
	return
}

// Fit projects sampled values onto the basis by least squares, solving the
// normal equations of the projection matrix against the packed point values.
// Requires len(points) >= coefficientCount directions in general position.
func Fit(points []sh.Point, coefficientCount int, npO ...int) (coefficients []float64, err error) {
	var (
		A = CalculateMatrix(points, coefficientCount, npO...)
		b = utils.NewVector(len(points))
	)
	for i, p := range points {
		b.DataP[i] = p.Value
	}
	At := A.Transpose()
	N, err := At.Mul(A).Inverse()
	if err != nil {
		return
	}
	coefficients = N.Mul(At).MulVec(b).DataP
	return
}
