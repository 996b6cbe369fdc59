package async

import (
	"runtime"
	"sync"
)

// Task is a unit of work executed once per gang worker, each invocation
// receiving a distinct worker id in [0, Workers()).
type Task interface {
	Name() string
	Work(worker uint)
}

type invocation struct {
	task   Task
	worker uint
	done   *sync.WaitGroup
}

// Gang is a fixed pool of worker goroutines created once and reused across
// many task runs, so a hot pause never pays goroutine startup. Dispatch goes
// through a lock-free ring; a buffered wake channel coalesces notifications.
type Gang struct {
	workers uint
	queue   *Ring[invocation]
	wake    chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewGang starts a pool of the given size (minimum 1).
func NewGang(workers uint) *Gang {
	if workers == 0 {
		workers = 1
	}
	g := &Gang{
		workers: workers,
		queue:   NewRing[invocation](uint64(workers) * 2),
		wake:    make(chan struct{}, workers),
		stop:    make(chan struct{}),
	}
	for i := uint(0); i < workers; i++ {
		g.wg.Add(1)
		go g.loop()
	}
	return g
}

// Workers reports the number of active workers in the pool.
func (g *Gang) Workers() uint {
	return g.workers
}

// Run executes t once per worker and blocks until every invocation has
// returned. Invocations may be picked up by any pool goroutine; the worker
// id passed to Work is logical, not tied to a particular goroutine.
func (g *Gang) Run(t Task) {
	var done sync.WaitGroup
	done.Add(int(g.workers))
	for i := uint(0); i < g.workers; i++ {
		inv := invocation{task: t, worker: i, done: &done}
		for !g.queue.Enqueue(inv) {
			runtime.Gosched()
		}
		select {
		case g.wake <- struct{}{}:
		default:
			// Enough wakeups are already pending to drain the queue.
		}
	}
	done.Wait()
}

// Shutdown stops the pool and waits for its goroutines to exit. Pending
// runs must have completed before calling Shutdown.
func (g *Gang) Shutdown() {
	close(g.stop)
	g.wg.Wait()
}

func (g *Gang) loop() {
	defer g.wg.Done()
	for {
		select {
		case <-g.stop:
			return
		case <-g.wake:
			for {
				inv, ok := g.queue.Dequeue()
				if !ok {
					break
				}
				inv.task.Work(inv.worker)
				inv.done.Done()
			}
		}
	}
}
