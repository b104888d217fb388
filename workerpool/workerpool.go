// Copyright 2026 lamW Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a persistent, reusable worker pool for
// data-parallel loops. A Pool is created once and reused across many calls,
// so a large slice evaluation does not pay for goroutine spawns each time.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    pool.ParallelFor(len(batch), func(start, end int) {
//	        process(batch[start:end])
//	    })
//	}
//
// Every loop method blocks until all of its work has completed. The ranges
// handed to fn never overlap, so fn may write to disjoint parts of a shared
// output slice without synchronisation.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool. Workers are spawned once by New and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit handed to a worker.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

// cursor is the shared position of a work-stealing loop. It is padded to a
// full cache line on each side so that workers spinning on it do not contend
// with unrelated memory.
type cursor struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// claim reserves the next span of up to size items below n. ok is false once
// the loop is exhausted.
func (c *cursor) claim(size, n int) (start, end int, ok bool) {
	start = int(c.next.Add(int64(size))) - size
	if start >= n {
		return 0, 0, false
	}
	return start, min(start+size, n), true
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, the pool is
// sized to GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work drains. It is safe to call more
// than once. Loops started after Close run sequentially on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Chunks splits [0, n) into at most workers contiguous, non-empty ranges of
// near equal size, in ascending order. It returns nil for n <= 0.
func Chunks(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	workers = max(1, min(workers, n))
	size := (n + workers - 1) / workers

	out := make([][2]int, 0, workers)
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// run dispatches count copies of fn to the workers and waits for them. When
// the pool is closed or only one copy is requested, fn runs on the caller.
func (p *Pool) run(count int, fn func()) {
	if count <= 1 || p.closed.Load() {
		fn()
		return
	}

	var wg sync.WaitGroup
	wg.Add(count)
	for range count {
		p.workC <- task{fn: fn, done: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn over [0, n) split into one contiguous range per worker
// (see Chunks). Blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	chunks := Chunks(n, p.numWorkers)
	if len(chunks) == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		p.workC <- task{
			fn:   func() { fn(c[0], c[1]) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn once for every index in [0, n). Workers pull
// indices from a shared counter, which balances load when items vary in cost.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	c := new(cursor)
	p.run(min(p.numWorkers, n), func() {
		for {
			i, _, ok := c.claim(1, n)
			if !ok {
				return
			}
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic with workers claiming batch
// indices at a time, which amortises the atomic operation over the batch.
// fn receives [start, end) ranges of at most batch items. batch <= 0 is
// treated as 1.
func (p *Pool) ParallelForAtomicBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)

	numBatches := (n + batch - 1) / batch
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		for start := 0; start < n; start += batch {
			fn(start, min(start+batch, n))
		}
		return
	}

	c := new(cursor)
	p.run(workers, func() {
		for {
			start, end, ok := c.claim(batch, n)
			if !ok {
				return
			}
			fn(start, end)
		}
	})
}
