// Package parallel runs fragment work across a fixed set of goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Execute after Close.
var ErrClosed = errors.New("parallel: pool closed")

// Pool is a work-stealing pool of goroutines.
//
// Each worker owns a buffered queue. Tasks are dealt round-robin and an idle
// worker steals from the other queues before blocking, which keeps bands
// with expensive fragments from stalling the whole dispatch.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while tasks are queued and for writing while
	// closing, so no task is queued after the workers exit.
	mu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case task := <-q:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// Execute calls task(i) for i in [0, n) on the pool and waits for every
// scheduled call to return.
//
// Scheduling stops as soon as ctx is done; calls already queued still run.
// The returned count is the number of calls that ran. The error is
// ctx.Err() when scheduling was cut short, ErrClosed if the pool was
// already closed, and nil otherwise.
func (p *Pool) Execute(ctx context.Context, n int, task func(i int)) (int, error) {
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return 0, ErrClosed
	}

	var (
		pending   sync.WaitGroup
		scheduled int
		err       error
	)

schedule:
	for i := range n {
		if err = ctx.Err(); err != nil {
			break
		}

		pending.Add(1)
		wrapped := func() {
			defer pending.Done()
			task(i)
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
			scheduled++
		case <-ctx.Done():
			pending.Done()
			err = ctx.Err()
			break schedule
		}
	}
	p.mu.RUnlock()

	pending.Wait()
	return scheduled, err
}

// Close stops the workers after the queued tasks have run.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
