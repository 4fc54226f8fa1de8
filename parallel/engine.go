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

// Package parallel implements the work-stealing parallel sort engine of §4.9: a fixed
// pool of worker goroutines, quarter-split decomposition of the root range, and a
// counted-completer discipline that merges completed quarters without ever blocking a
// worker on a child task. It is built entirely on top of package sortcore, which does
// all the actual element comparison and movement.
package parallel

import (
	"context"
	"fmt"
	"math/bits"
	"unsafe"

	units "github.com/docker/go-units"
	"github.com/launix-de/duoqsort/order"
	"github.com/launix-de/duoqsort/sortcore"
	"golang.org/x/sync/errgroup"
)

// Sort sorts data using up to `parallelism` concurrent workers. It falls back to
// sortcore's sequential driver directly when parallelism <= 1 or the input is smaller
// than knobs.MinParallelSortSize. A non-nil error means a task failed to allocate (or
// a comparator panicked); data may be partially sorted in that case, per §7.
func Sort[T any](data []T, cmp order.Order[T], parallelism int, knobs sortcore.Tunables) error {
	n := len(data)
	if n < 2 {
		return nil
	}
	if parallelism <= 1 || n < knobs.MinParallelSortSize {
		return sortSequentialRecovered(data, cmp, knobs)
	}

	pool := NewPool(parallelism)
	defer pool.Close()

	scratch, err := allocScratch[T](n)
	if err != nil {
		return err
	}
	depth := initialDepth(parallelism, n, knobs.SplitUnit)
	errs := &errBox{}

	// ctx is cancelled the moment errs records its first error (via errs.setOnFirst
	// below), not only when g's own goroutine returns one: every task-slot acquisition
	// still to come then fails fast instead of queuing more work onto a sort that has
	// already failed, while tasks already running are left alone to finish (they never
	// observe ctx at all, only acquireTaskSlot does).
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var g errgroup.Group
	pool.bindContext(ctx)
	errs.setOnFirst(cancel)

	done := make(chan struct{})
	g.Go(func() error {
		<-done
		return errs.get()
	})

	root := &sortTask[T]{
		pool: pool, cmp: cmp, knobs: knobs, scratch: scratch, errs: errs,
		data: data, low: 0, high: n, depth: depth,
		onDone: func() { close(done) },
	}
	if err := pool.acquireTaskSlot(); err != nil {
		errs.report(newTaskError("", 0, n, err))
		close(done)
	} else {
		pool.submit(func() {
			defer pool.releaseTaskSlot()
			root.run()
		})
	}

	return g.Wait()
}

// allocScratch allocates the scratch arena shared by every task in the call tree,
// recovering an oversized-allocation panic into a *TaskError whose message reports the
// attempted size in human-readable form (e.g. "2.1 GiB") rather than a raw byte count,
// satisfying §7's "allocation failure is surfaced to the caller, not a crash".
func allocScratch[T any](n int) (scratch *sortcore.Scratch[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			size := units.HumanSize(float64(n) * float64(unsafe.Sizeof(zero)))
			err = newTaskError("", 0, n, fmt.Errorf("scratch allocation of %s failed: %v", size, rec))
		}
	}()
	return sortcore.NewScratch[T](n), nil
}

// initialDepth computes ⌈log2(parallelism · (n / SPLIT_UNIT))⌉, floored at 0 for
// inputs too small relative to SplitUnit to be worth even one split.
func initialDepth(parallelism, n, splitUnit int) int {
	if splitUnit <= 0 {
		splitUnit = 1
	}
	splitUnits := parallelism * (n / splitUnit)
	if splitUnits < 1 {
		return 0
	}
	return bits.Len(uint(splitUnits - 1))
}

func sortSequentialRecovered[T any](data []T, cmp order.Order[T], knobs sortcore.Tunables) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if pe, ok := sortcore.IsPanicError(asErr(rec)); ok {
				err = pe
				return
			}
			err = newTaskError("", 0, len(data), asErr(rec))
		}
	}()
	sortcore.SortWithTunables(data, cmp, knobs)
	return nil
}

func asErr(rec any) error {
	if e, ok := rec.(error); ok {
		return e
	}
	return nil
}

// sortTask is one node of the recursive quarter-split decomposition. A task with a
// range too small (or a spent depth budget) to split further runs sortcore's
// sequential driver directly; otherwise it splits into four child sortTasks sharing
// this task's scratch arena and registers a completer whose on_completion merges the
// four sorted quarters back together.
type sortTask[T any] struct {
	pool    *Pool
	cmp     order.Order[T]
	knobs   sortcore.Tunables
	scratch *sortcore.Scratch[T]
	errs    *errBox

	data           []T
	low, high, depth int
	onDone         func()
}

func (t *sortTask[T]) run() {
	n := t.high - t.low
	if n < t.knobs.MinParallelSortSize || t.depth <= 0 {
		if err := sortSequentialRecovered(t.data[t.low:t.high], t.cmp, t.knobs); err != nil {
			t.errs.report(err)
		}
		t.onDone()
		return
	}

	q := n / 4
	bounds := [5]int{t.low, t.low + q, t.low + 2*q, t.low + 3*q, t.high}
	childDepth := t.depth - 1

	c := newCompleter(4, func() { t.startQuarterMerge(bounds) })
	for i := 0; i < 4; i++ {
		lo, hi := bounds[i], bounds[i+1]
		t.spawnChild(lo, hi, childDepth, c.done)
	}
}

func (t *sortTask[T]) spawnChild(lo, hi, depth int, onDone func()) {
	if err := t.pool.acquireTaskSlot(); err != nil {
		t.errs.report(newTaskError("", lo, hi, err))
		onDone()
		return
	}
	child := &sortTask[T]{
		pool: t.pool, cmp: t.cmp, knobs: t.knobs, scratch: t.scratch, errs: t.errs,
		data: t.data, low: lo, high: hi, depth: depth, onDone: onDone,
	}
	t.pool.submit(func() {
		defer t.pool.releaseTaskSlot()
		child.run()
	})
}

// startQuarterMerge runs once all four quarters of bounds are individually sorted: it
// merges (Q0,Q1) and (Q2,Q3) into this task's scratch slice, in parallel, then merges
// those two halves back into data.
func (t *sortTask[T]) startQuarterMerge(bounds [5]int) {
	q0 := t.data[bounds[0]:bounds[1]]
	q1 := t.data[bounds[1]:bounds[2]]
	q2 := t.data[bounds[2]:bounds[3]]
	q3 := t.data[bounds[3]:bounds[4]]
	leftScratch := t.scratch.Region(bounds[0], bounds[2]).Slice()
	rightScratch := t.scratch.Region(bounds[2], bounds[4]).Slice()

	stage2 := newCompleter(2, func() { t.finishQuarterMerge(bounds, leftScratch, rightScratch) })
	submitMerge(t.errs, t.pool, t.cmp, q0, q1, leftScratch, t.knobs, stage2.done)
	submitMerge(t.errs, t.pool, t.cmp, q2, q3, rightScratch, t.knobs, stage2.done)
}

func (t *sortTask[T]) finishQuarterMerge(bounds [5]int, leftScratch, rightScratch []T) {
	dst := t.data[bounds[0]:bounds[4]]
	parallelMerge(t.errs, t.pool, t.cmp, leftScratch, rightScratch, dst, t.knobs, t.onDone)
}
