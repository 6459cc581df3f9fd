package simil

import (
	"runtime"
	"sync"

	"github.com/ashvardanian/stringzilla-go/alloc"
	"github.com/ashvardanian/stringzilla-go/status"
)

// Pair is one entry of a batched distance computation.
type Pair struct {
	A, B []byte
}

// workerCount picks a worker count bounded by GOMAXPROCS and the
// number of pairs, defaulting to one goroutine per hardware thread.
func workerCount(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// runBatch distributes pairs across workerCount(len(pairs)) goroutines,
// each repeatedly pulling the next pair from a shared cursor, a
// dynamic schedule with a chunk size of one. The calling goroutine
// blocks until every worker finishes.
func runBatch(n int, compute func(i int)) {
	workers := workerCount(n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			compute(i)
		}
		return
	}

	var next int64next
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := next.take(n)
				if i < 0 {
					return
				}
				compute(i)
			}
		}()
	}
	wg.Wait()
}

// int64next is a tiny atomic work cursor: each call to take reserves
// the next index below n, or reports exhaustion with -1.
type int64next struct {
	mu  sync.Mutex
	cur int
}

func (c *int64next) take(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur >= n {
		return -1
	}
	i := c.cur
	c.cur++
	return i
}

// LevenshteinBatch computes the edit distance for every pair,
// distributing work across a worker pool when there is more than one
// pair. Scratch is drawn from al once per pair; failure on any pair
// fails the whole batch and leaves out untouched rather than writing
// partial results.
func LevenshteinBatch(pairs []Pair, al alloc.Allocator, out []int) status.Code {
	var failed bool
	var mu sync.Mutex
	results := make([]int, len(pairs))
	runBatch(len(pairs), func(i int) {
		d, code := Levenshtein(pairs[i].A, pairs[i].B, al)
		if code != status.Success {
			mu.Lock()
			failed = true
			mu.Unlock()
			return
		}
		results[i] = d
	})
	if failed {
		return status.BadAlloc
	}
	copy(out, results)
	return status.Success
}

// NeedlemanWunschBatch computes the global-alignment distance for
// every pair under a shared gap cost and substitution cost function.
func NeedlemanWunschBatch(pairs []Pair, gapCost int, cost CostFunc, al alloc.Allocator, out []int) status.Code {
	var failed bool
	var mu sync.Mutex
	runBatch(len(pairs), func(i int) {
		d, code := NeedlemanWunsch(pairs[i].A, pairs[i].B, gapCost, cost, al)
		if code != status.Success {
			mu.Lock()
			failed = true
			mu.Unlock()
			return
		}
		out[i] = d
	})
	if failed {
		return status.BadAlloc
	}
	return status.Success
}

// SmithWatermanBatch computes the best local-alignment score for
// every pair under a shared gap cost and substitution cost function.
func SmithWatermanBatch(pairs []Pair, gapCost int, cost CostFunc, al alloc.Allocator, out []int) status.Code {
	var failed bool
	var mu sync.Mutex
	runBatch(len(pairs), func(i int) {
		d, code := SmithWaterman(pairs[i].A, pairs[i].B, gapCost, cost, al)
		if code != status.Success {
			mu.Lock()
			failed = true
			mu.Unlock()
			return
		}
		out[i] = d
	})
	if failed {
		return status.BadAlloc
	}
	return status.Success
}
