// Package parallel provides the loop-level parallelism used by the
// contraction kernels. Each unit of work owns a disjoint set of output
// elements, so no locking is required anywhere in the engine.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior. The engine carries its
// own Config; there is no process-global thread state.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
// MinChunkSize is 1 because a single item of contraction work is a
// whole output row or slab, not a cache line of scalars.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// below the chunk threshold.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n <= cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForSquare executes f(i, j) over the full n×n index square.
// Used by kernels whose outputs are indexed by a leading (i, j) pair;
// flattening the pair spreads the work more evenly than parallelizing
// over i alone when n is smaller than the worker count.
func ForSquare(n int, f func(i, j int), cfg Config) {
	For(n*n, func(k int) {
		f(k/n, k%n)
	}, cfg)
}

// ForUpper executes f(i, j) for all pairs with i <= j.
// Used by the symmetry-halved matrix commutator, which derives the
// strict lower triangle from the upper one.
func ForUpper(n int, f func(i, j int), cfg Config) {
	For(n, func(i int) {
		for j := i; j < n; j++ {
			f(i, j)
		}
	}, cfg)
}
