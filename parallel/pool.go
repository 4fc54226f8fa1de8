/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package parallel

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jtolds/gls"
	nlrm "github.com/launix-de/NonLockingReadMap"
	"golang.org/x/sync/semaphore"
)

// taskAcquireCtx is the default context task-slot acquisition is made against until a
// caller installs a real one via Pool.bindContext; a pool used directly (as the tests
// in this package do) never needs its acquisitions cancellable and is left on this.
var taskAcquireCtx = context.Background()

// taskBacklogFactor bounds how many not-yet-finished (queued or running) tasks a pool
// of n workers may hold before a submitter has to wait for the semaphore — a generous multiple of n,
// since the quarter-split decomposition of a single sort task fans out fast.
const taskBacklogFactor = 256

var glsMgr = gls.NewContextManager()

const glsWorkerKey = "duoqsort-worker-id"

// Pool is a fixed-size set of worker goroutines, each owning a deque (§4.9). Workers
// are spawned with gls.Go so that task code running inside a worker's loop can
// recover its own worker id (via currentWorkerID) without threading it through every
// call.
type Pool struct {
	workers  []*workerSlot
	registry nlrm.NonLockingReadMap[workerSlot, string]
	sem      *semaphore.Weighted
	taskCtx  context.Context

	mu      sync.Mutex
	cond    *sync.Cond
	closing atomic.Bool
	wg      sync.WaitGroup
	next    atomic.Uint64
}

// NewPool starts n worker goroutines and returns the pool managing them. Callers must
// Close the pool once done to release the workers.
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		registry: nlrm.New[workerSlot, string](),
		sem:      semaphore.NewWeighted(int64(n) * taskBacklogFactor),
		taskCtx:  taskAcquireCtx,
	}
	p.cond = sync.NewCond(&p.mu)
	p.workers = make([]*workerSlot, n)
	for i := 0; i < n; i++ {
		slot := &workerSlot{id: workerID(i), dq: newDeque()}
		p.workers[i] = slot
		p.registry.Set(slot)
	}
	for _, slot := range p.workers {
		p.wg.Add(1)
		s := slot
		gls.Go(func() {
			defer p.wg.Done()
			glsMgr.SetValues(gls.Values{glsWorkerKey: s.id}, func() {
				p.workerLoop(s)
			})
		})
	}
	return p
}

func currentWorkerID() (string, bool) {
	v, ok := glsMgr.GetValue(glsWorkerKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// bindContext installs the context future task-slot acquisitions are made against.
// engine.go calls this once, right after NewPool and before submitting the root task,
// with a cancellable context that it cancels as soon as any task reports a fatal
// error — so every acquireTaskSlot call still in flight or made afterwards fails fast
// with the cancellation error instead of queuing more work behind a doomed sort.
func (p *Pool) bindContext(ctx context.Context) {
	p.taskCtx = ctx
}

// acquireTaskSlot bounds the number of outstanding (queued or still running) tasks so a
// pathological fan-out can't grow the deques without limit; it surfaces the semaphore
// package's own context-cancellation error through the caller's *TaskError path
// instead of panicking, matching the §7 allocation-failure policy.
func (p *Pool) acquireTaskSlot() error {
	return p.sem.Acquire(p.taskCtx, 1)
}

func (p *Pool) releaseTaskSlot() {
	p.sem.Release(1)
}

// submit enqueues fn: onto the calling worker's own deque (LIFO) if called from
// inside a worker, or round-robin across workers (the external-caller / root-task
// path) otherwise.
func (p *Pool) submit(fn func()) {
	if id, ok := currentWorkerID(); ok {
		if slot := p.registry.Get(id); slot != nil {
			slot.dq.pushBottom(fn)
			p.wake()
			return
		}
	}
	idx := int(p.next.Add(1)-1) % len(p.workers)
	p.workers[idx].dq.pushBottom(fn)
	p.wake()
}

func (p *Pool) wake() {
	p.mu.Lock()
	p.cond.Broadcast()
	p.mu.Unlock()
}

func (p *Pool) allEmpty() bool {
	for _, s := range p.registry.GetAll() {
		if !s.dq.empty() {
			return false
		}
	}
	return true
}

func (p *Pool) steal(self *workerSlot) (func(), bool) {
	for _, s := range p.registry.GetAll() {
		if s.id == self.id {
			continue
		}
		if fn, ok := s.dq.popTop(); ok {
			return fn, true
		}
	}
	return nil, false
}

func (p *Pool) workerLoop(self *workerSlot) {
	for {
		if fn, ok := self.dq.popBottom(); ok {
			fn()
			continue
		}
		if fn, ok := p.steal(self); ok {
			fn()
			continue
		}

		p.mu.Lock()
		for !p.closing.Load() && self.dq.empty() && p.allEmpty() {
			p.cond.Wait()
		}
		done := p.closing.Load() && self.dq.empty() && p.allEmpty()
		p.mu.Unlock()
		if done {
			return
		}
	}
}

// Close signals every worker to exit once its deque (and every other worker's) is
// drained, then waits for them to do so.
func (p *Pool) Close() {
	p.closing.Store(true)
	p.wake()
	p.wg.Wait()
}
