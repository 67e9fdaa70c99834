package storage

import (
	"runtime"
	"sync"
)

// parallelThreshold is the length from which dense kernels are split across
// goroutines.
const parallelThreshold = 1 << 14

// parallelFor runs fn over [0, n) in disjoint chunks of at least minChunk
// elements and returns once every chunk is done.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// forEach applies fn to every index of a dense kernel, in parallel for large n.
func forEach(n int, fn func(i int)) {
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	parallelFor(n, parallelThreshold/4, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
