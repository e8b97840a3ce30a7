package kernel

import (
	"runtime"
	"sync"
)

// ParallelDegree resolves the worker count for a launch: procLimit when
// nonzero, otherwise one worker per CPU. A space smaller than the resolved
// width runs on a single worker.
func ParallelDegree(procLimit, maxIndex int) (np int) {
	if procLimit != 0 {
		np = procLimit
	} else {
		np = runtime.NumCPU()
	}
	if np > maxIndex {
		np = 1
	}
	return
}

// Run executes worker once for every (x,y,z) in sp, fanning the flattened
// index space out over goroutines. Each worker owns a disjoint index range,
// so output slots written per work item need no synchronization beyond the
// join. The optional npO overrides the worker count.
func Run(sp Space, worker func(x, y, z int), npO ...int) {
	var (
		procLimit int
		wg        = sync.WaitGroup{}
	)
	if len(npO) != 0 {
		procLimit = npO[0]
	}
	size := sp.Size()
	if size == 0 {
		return
	}
	np := ParallelDegree(procLimit, size)
	pm := NewPartitionMap(np, size)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			kMin, kMax := pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				x, y, z := sp.Coords(k)
				worker(x, y, z)
			}
			wg.Done()
		}(n)
	}
	wg.Wait()
}

// RunReduce executes worker once per (x,y,z), handing each partition a
// zeroed partial buffer of length n, then folds the partials sequentially in
// partition order after the join. For a given worker count the fold order,
// and with it the floating point result, is fixed.
func RunReduce(sp Space, n int, worker func(x, y, z int, partial []float64),
	fold func(partial []float64), npO ...int) {
	var (
		procLimit int
		wg        = sync.WaitGroup{}
	)
	if len(npO) != 0 {
		procLimit = npO[0]
	}
	size := sp.Size()
	if size == 0 {
		return
	}
	np := ParallelDegree(procLimit, size)
	pm := NewPartitionMap(np, size)
	partials := make([][]float64, np)
	for bn := 0; bn < np; bn++ {
		wg.Add(1)
		go func(bn int) {
			partial := make([]float64, n)
			kMin, kMax := pm.GetBucketRange(bn)
			for k := kMin; k < kMax; k++ {
				x, y, z := sp.Coords(k)
				worker(x, y, z, partial)
			}
			partials[bn] = partial
			wg.Done()
		}(bn)
	}
	wg.Wait()
	for bn := 0; bn < np; bn++ {
		fold(partials[bn])
	}
}
