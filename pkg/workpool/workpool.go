// Package workpool runs independent units of work on a bounded set of
// goroutines and joins the results in input order.
//
// A unit only gets its own goroutine when a slot is free; otherwise it runs
// on the calling goroutine. Callers may therefore fan out again from inside a
// unit (for example when recursing into a subdirectory) without exhausting
// the pool or deadlocking on it.
package workpool

import (
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of extra goroutines used by Map and FlatMap.
// A nil Pool runs everything sequentially.
type Pool struct {
	sem *semaphore.Weighted
}

// New creates a pool allowing workers concurrent goroutines. Zero or a
// negative value defaults to GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers <= 0 {
			workers = 1
		}
	}
	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

// Sequential returns a nil pool, which runs all work on the caller.
func Sequential() *Pool {
	return nil
}

func (p *Pool) tryAcquire() bool {
	return p != nil && p.sem.TryAcquire(1)
}

func (p *Pool) release() {
	p.sem.Release(1)
}

// Map applies fn to every item and returns the results in input order. All
// items are processed; the error of the lowest failing index is returned.
func Map[T, R any](p *Pool, items []T, fn func(T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		if p.tryAcquire() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer p.release()
				results[i], errs[i] = fn(item)
			}()
			continue
		}
		results[i], errs[i] = fn(item)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// FlatMap is Map for functions producing zero or more results per item. The
// per-item results are concatenated in input order; no results yields nil.
func FlatMap[T, R any](p *Pool, items []T, fn func(T) ([]R, error)) ([]R, error) {
	parts, err := Map(p, items, fn)
	if err != nil {
		return nil, err
	}

	size := 0
	for _, part := range parts {
		size += len(part)
	}
	if size == 0 {
		return nil, nil
	}
	out := make([]R, 0, size)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}
