package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.DataP)
	}
	// Mul and MulVec
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Mul(M.Transpose())
		assert.Equal(t, []float64{14, 32, 32, 77}, A.DataP)
		v := M.MulVec(NewVector(3, []float64{1, 1, 1}))
		assert.Equal(t, []float64{6, 15}, v.DataP)
	}
	// Row, Col and the DataP alias
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
		assert.Equal(t, []float64{2, 5}, M.Col(1).DataP)
		M.DataP[5] = 10
		assert.Equal(t, 10., M.At(1, 2))
		assert.Equal(t, 10., M.Max())
		assert.Equal(t, 1., M.Min())
	}
	// Inverse
	{
		M := NewMatrix(2, 2, []float64{
			4, 7,
			2, 6,
		})
		Minv, err := M.Inverse()
		assert.NoError(t, err)
		A := M.Mul(Minv)
		assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, A.DataP, 1.e-12)
	}
	// Read only protection
	{
		M := NewMatrix(2, 2)
		M = M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M = M.SetWritable()
		M.Set(0, 0, 1)
		assert.Equal(t, 1., M.At(0, 0))
	}
	// Vector extended methods
	{
		v := NewVector(3, []float64{1, 2, 3})
		w := v.Copy().Scale(2)
		assert.Equal(t, []float64{2, 4, 6}, w.DataP)
		assert.Equal(t, 14., v.Dot(v))
		w.Subtract(v)
		assert.Equal(t, []float64{1, 2, 3}, w.DataP)
		assert.Equal(t, 3., v.Max())
		assert.Equal(t, 1., v.Min())
	}
	// Sparse DOK to CSR
	{
		d := NewDOK(3, 3)
		d.Set(0, 0, 1)
		d.Set(1, 2, 5)
		d.Set(2, 1, -2)
		c := d.ToCSR()
		assert.Equal(t, 3, c.NNZ())
		assert.Equal(t, 5., c.At(1, 2))
		var visited int
		c.DoRowNonZero(1, func(i, j int, v float64) {
			visited++
			assert.Equal(t, 2, j)
			assert.Equal(t, 5., v)
		})
		assert.Equal(t, 1, visited)
		c = c.SetReadOnly("c")
		assert.Panics(t, func() { c.Set(0, 1, 3) })
	}
	// POW
	{
		for p := -8; p <= 8; p++ {
			assert.InDelta(t, POW(1.5, p), POW(1.5, p+9)/POW(1.5, 9), 1.e-12)
		}
		assert.Equal(t, 1., POW(-1, 0))
		assert.Equal(t, -1., POW(-1, 3))
		assert.Equal(t, []float64{2, 2}, ConstArray(2, 2))
	}
}
