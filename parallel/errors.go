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
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// TaskError wraps a failure recovered from a parallel task — a panicking comparator,
// or a scratch/task allocation failure — together with a correlation id so a single
// failure reported by one of several concurrently running tasks can be matched back
// to the worker and task that raised it in logs gathered from multiple goroutines.
// Mirrored from sortcore.PanicError, generalized with the correlation id the
// concurrent setting needs and without.
type TaskError struct {
	ID        uuid.UUID
	WorkerID  string
	Low, High int
	Cause     error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("duoqsort/parallel: task %s on worker %s for range [%d,%d) failed: %v",
		e.ID, e.WorkerID, e.Low, e.High, e.Cause)
}

func (e *TaskError) Unwrap() error { return e.Cause }

// IsTaskError reports whether err (or any error in its Unwrap chain) is a *TaskError.
func IsTaskError(err error) (*TaskError, bool) {
	for err != nil {
		if te, ok := err.(*TaskError); ok {
			return te, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return nil, false
}

func newTaskError(workerID string, low, high int, cause error) *TaskError {
	if workerID == "" {
		workerID, _ = currentWorkerID()
	}
	return &TaskError{ID: uuid.New(), WorkerID: workerID, Low: low, High: high, Cause: cause}
}

// errBox captures the first error reported by any task in a single Sort call, across
// however many goroutines are concurrently running tasks. Losing a race to report
// just means that task's error is dropped in favour of whichever was recorded first —
// acceptable since §7 only requires that *an* error surface, not a specific one. The
// first report also runs onFirst, if set, exactly once — engine.go uses this to cancel
// the call tree's task-acquisition context so no further task slots are acquired once a fatal
// error has already been recorded, while tasks already running are left untouched.
type errBox struct {
	mu      sync.Mutex
	err     error
	onFirst func()
}

func (b *errBox) report(err error) {
	b.mu.Lock()
	first := b.err == nil
	if first {
		b.err = err
	}
	onFirst := b.onFirst
	b.mu.Unlock()
	if first && onFirst != nil {
		onFirst()
	}
}

// setOnFirst installs the callback run exactly once, the first time report records an
// error. Must be called before any task can reach report (i.e. before the pool starts
// running tasks for this call), since it is not itself synchronized against report.
func (b *errBox) setOnFirst(fn func()) {
	b.onFirst = fn
}

func (b *errBox) get() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
