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

import "sync/atomic"

// completer implements the counted-completer discipline: a parent task registers how
// many children it is waiting on, each child calls done() on completion, and the last
// child to decrement pending to zero — never a blocking wait — runs onComplete. This
// is how a sort task's four quarters trigger the merge step, and how a merge task's
// two halves trigger the combining merge, without any worker ever blocking on a
// child's future.
type completer struct {
	pending    atomic.Int64
	onComplete func()
}

func newCompleter(children int64, onComplete func()) *completer {
	c := &completer{onComplete: onComplete}
	c.pending.Store(children)
	return c
}

// done records one child's completion; if it was the last one, onComplete runs
// synchronously on the calling (worker) goroutine.
func (c *completer) done() {
	if c.pending.Add(-1) == 0 {
		c.onComplete()
	}
}
