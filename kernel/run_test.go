package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket size histogram, maximum imbalance of one item
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 10000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
}

func TestSpace(t *testing.T) {
	sp := Space{3, 4, 5}
	assert.Equal(t, 60, sp.Size())
	// Flat walks the extent z fastest and Coords inverts it
	last := -1
	for x := 0; x < sp.X; x++ {
		for y := 0; y < sp.Y; y++ {
			for z := 0; z < sp.Z; z++ {
				k := sp.Flat(x, y, z)
				assert.Equal(t, last+1, k)
				last = k
				xx, yy, zz := sp.Coords(k)
				assert.Equal(t, [3]int{x, y, z}, [3]int{xx, yy, zz})
			}
		}
	}
}

func TestRun(t *testing.T) {
	// Every work item runs exactly once for any worker count
	sp := Space{5, 3, 7}
	for np := 1; np <= 9; np += 2 {
		visits := make([]int, sp.Size())
		Run(sp, func(x, y, z int) {
			visits[sp.Flat(x, y, z)]++
		}, np)
		for k, v := range visits {
			assert.Equalf(t, 1, v, "flat index %d", k)
		}
	}
	// An empty space dispatches nothing
	Run(Space{0, 3, 3}, func(x, y, z int) { t.Fail() })
}

func TestRunReduce(t *testing.T) {
	// Accumulate-many: work items differing only in z add into the same
	// output slot through partition partials
	sp := Space{4, 4, 8}
	out := make([]float64, sp.X*sp.Y)
	for _, np := range []int{1, 3, 4} {
		for i := range out {
			out[i] = 0
		}
		RunReduce(sp, len(out), func(x, y, z int, partial []float64) {
			partial[x*sp.Y+y] += float64(z + 1)
		}, func(partial []float64) {
			for i, val := range partial {
				out[i] += val
			}
		}, np)
		for i, val := range out {
			assert.Equalf(t, 36., val, "slot %d", i) // 1+2+...+8
		}
	}
}

func TestRunNested(t *testing.T) {
	// An outer batch launch drives inner per-instance launches
	var (
		dims    = Space{2, 1, 3}
		inner   = Space{4, 5, 1}
		perInst = inner.Size()
		out     = make([]float64, dims.Size()*perInst)
	)
	Run(dims, func(x, y, z int) {
		base := dims.Flat(x, y, z) * perInst
		Run(inner, func(ix, iy, iz int) {
			out[base+inner.Flat(ix, iy, iz)] = 1
		}, 1)
	})
	for k, v := range out {
		assert.Equalf(t, 1., v, "flat index %d", k)
	}
}
