// Package fileproc provides bounded-concurrency file processing. Results
// come back in input order so downstream frequency tie-breaks stay
// deterministic regardless of read interleaving.
package fileproc

import (
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// DefaultMaxWorkers is used when the caller passes a non-positive ceiling.
const DefaultMaxWorkers = 8

// ProgressFunc is called after each file is processed.
type ProgressFunc func()

// MapOrdered applies fn to every file with at most maxWorkers concurrent
// calls and returns one result slot per input, in input order. A file whose
// fn returns an error gets ok=false in its slot; the error never aborts the
// batch and never changes any other file's result.
func MapOrdered[T any](files []string, maxWorkers int, fn func(string) (T, error)) []Result[T] {
	return MapOrderedWithProgress(files, maxWorkers, fn, nil)
}

// Result is one per-file outcome. Value is meaningful only when Ok is true.
type Result[T any] struct {
	Value T
	Ok    bool
}

// MapOrderedWithProgress is MapOrdered with an optional progress callback.
func MapOrderedWithProgress[T any](files []string, maxWorkers int, fn func(string) (T, error), onProgress ProgressFunc) []Result[T] {
	if len(files) == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	results := make([]Result[T], len(files))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for i, path := range files {
		p.Go(func() {
			value, err := fn(path)

			if onProgress != nil {
				mu.Lock()
				onProgress()
				mu.Unlock()
			}

			if err != nil {
				return
			}
			// Index-addressed slot: no lock needed, no reordering possible.
			results[i] = Result[T]{Value: value, Ok: true}
		})
	}
	p.Wait()

	return results
}
