// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func()
)

// Pool feeds jobs to its workers. With a single worker, Do runs jobs inline.
type Pool struct {
	wg      sync.WaitGroup
	Workers int
	Do      WorkerFunc
	Wait    WaitFunc
}

// Start launches numWorkers goroutines, or GOMAXPROCS when numWorkers < 1.
// Wait stops accepting jobs and blocks until every queued job has run; Do
// must not be called after it.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		closeWork := sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func() {
			closeWork()
			pool.wg.Wait()
		}
	}

	return pool
}

// Map applies fn to every element of in on numWorkers goroutines and returns
// the results in input order, along with one error slot per element. Elements
// not yet started when ctx is done get ctx's error.
func Map[T, R any](ctx context.Context, numWorkers int, in []T, fn func(T) (R, error)) ([]R, []error) {
	res := make([]R, len(in))
	errs := make([]error, len(in))

	pool := Start(numWorkers)
	for i, v := range in {
		pool.Do(func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			res[i], errs[i] = fn(v)
		})
	}
	pool.Wait()

	return res, errs
}
