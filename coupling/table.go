package coupling

import (
	"github.com/notargets/gosh/utils"
)

// Table holds the nonzero coupling weights for a fixed coefficient count
// as a read-only CSR matrix, row per output index, column per flattened
// (lhs, rhs) pair. The selection rules leave most triples zero, so the
// table trades the full cubic enumeration for a sparse row scan.
type Table struct {
	Count int
	W     utils.CSR
}

// NewTable enumerates every index triple once and keeps the nonzero
// weights.
func NewTable(coefficientCount int) (tab *Table) {
	var (
		dok = utils.NewDOK(coefficientCount, coefficientCount*coefficientCount)
	)
	for i3 := 0; i3 < coefficientCount; i3++ {
		for i1 := 0; i1 < coefficientCount; i1++ {
			for i2 := 0; i2 < coefficientCount; i2++ {
				if w := Weight(i1, i2, i3); w != 0 {
					dok.Set(i3, i1*coefficientCount+i2, w)
				}
			}
		}
	}
	tab = &Table{
		Count: coefficientCount,
		W:     dok.ToCSR(),
	}
	tab.W.SetReadOnly("coupling weights")
	return
}

// Apply couples lhs and rhs through the precomputed weights.
func (tab *Table) Apply(lhs, rhs []float64) (out []float64) {
	out = make([]float64, tab.Count)
	tab.ApplyInto(lhs, rhs, out)
	return
}

// ApplyInto accumulates the coupled product into out, scanning the stored
// nonzeros row by row. Callers zero out first for a fresh product.
func (tab *Table) ApplyInto(lhs, rhs, out []float64) {
	for i3 := 0; i3 < tab.Count; i3++ {
		tab.W.DoRowNonZero(i3, func(_, j int, w float64) {
			out[i3] += lhs[j/tab.Count] * rhs[j%tab.Count] * w
		})
	}
}
