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
	"github.com/launix-de/duoqsort/order"
	"github.com/launix-de/duoqsort/sortcore"
)

// parallelMerge merges the already-sorted left and right into dst (len(dst) ==
// len(left)+len(right)) via the co-ranking technique: split the longer side at its
// midpoint, binary-search that split key's position in the shorter side, and recurse
// on the two resulting (left,right) pairs independently — each pair's combined size is
// roughly half the parent's, so the recursion depth is O(log(len(left)+len(right)))
// regardless of how unevenly the two sides are sized. onDone is called exactly once,
// after dst is fully populated (possibly before this call returns, if it takes the
// sequential fallback).
func parallelMerge[T any](errs *errBox, pool *Pool, cmp order.Order[T], left, right, dst []T, knobs sortcore.Tunables, onDone func()) {
	total := len(left) + len(right)
	if total < knobs.MinParallelMergeSize {
		sequentialMerge(cmp, left, right, dst)
		onDone()
		return
	}

	var lMid, rMid int
	if len(left) >= len(right) {
		lMid = len(left) / 2
		rMid = lowerBound(cmp, right, left[lMid])
	} else {
		rMid = len(right) / 2
		lMid = lowerBound(cmp, left, right[rMid])
	}

	c := newCompleter(2, onDone)
	submitMerge(errs, pool, cmp, left[:lMid], right[:rMid], dst[:lMid+rMid], knobs, c.done)
	submitMerge(errs, pool, cmp, left[lMid:], right[rMid:], dst[lMid+rMid:], knobs, c.done)
}

func submitMerge[T any](errs *errBox, pool *Pool, cmp order.Order[T], left, right, dst []T, knobs sortcore.Tunables, onDone func()) {
	if err := pool.acquireTaskSlot(); err != nil {
		errs.report(newTaskError("", 0, len(dst), err))
		onDone()
		return
	}
	pool.submit(func() {
		defer pool.releaseTaskSlot()
		parallelMerge(errs, pool, cmp, left, right, dst, knobs, onDone)
	})
}

// sequentialMerge is the threshold fallback: a plain two-pointer merge, ties resolved
// in favour of left exactly like sortcore's run merger.
func sequentialMerge[T any](cmp order.Order[T], left, right, dst []T) {
	i, j, w := 0, 0, 0
	for i < len(left) && j < len(right) {
		if !cmp.Less(right[j], left[i]) {
			dst[w] = left[i]
			i++
		} else {
			dst[w] = right[j]
			j++
		}
		w++
	}
	w += copy(dst[w:], left[i:])
	copy(dst[w:], right[j:])
}

// lowerBound returns the first index in s (sorted ascending by cmp) whose element is
// not less than key.
func lowerBound[T any](cmp order.Order[T], s []T, key T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if cmp.Less(s[mid], key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
