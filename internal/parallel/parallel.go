// Package parallel fans per-pixel work out across worker goroutines.
// Conversion passes over capture surfaces touch every pixel exactly
// once with no cross-pixel dependencies, so they split cleanly into
// contiguous index bands.
package parallel

import (
	"runtime"
	"sync"
)

// minBand is the smallest band worth handing to a worker, in work
// items. Below this the goroutine handoff costs more than the work.
const minBand = 1 << 15

// For processes the half-open range [0, n) by calling fn on disjoint
// contiguous sub-ranges that together cover it. Up to GOMAXPROCS
// bands run concurrently; small ranges run inline on the calling
// goroutine. For returns once every band has finished.
func For(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if max := n / minBand; workers > max {
		workers = max
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	band := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += band {
		hi := lo + band
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
