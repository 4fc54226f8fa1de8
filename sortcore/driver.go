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

package sortcore

import "github.com/launix-de/duoqsort/order"

// sortRegion is the sequential entry point: it runs the full decision cascade with a
// fresh depth budget and leftmost=true, since the whole region is trivially its own
// leftmost sub-region. The scratch buffer used by any run-merge along the way is
// allocated once here, sized to the whole region, and threaded down unchanged so every
// nested tryMergeRuns call reuses it instead of allocating its own.
func sortRegion[T any](r Region[T], cmp order.Order[T], knobs Tunables) {
	var scratch *Scratch[T]
	if r.Len() >= knobs.TryMergeRunsThreshold {
		scratch = NewScratch[T](r.High)
	}
	sortSequential(r, cmp, knobs, scratch, true, knobs.MaxRecursionDepth)
}

// sortSequential drives r to sorted order by repeatedly choosing, in order: plain
// insertion sort below InsertionThreshold, unconditionally; else mixed insertion sort
// for a leftmost sub-region below MixedInsertionThreshold; heap sort once the depth
// budget is exhausted; a run-merge attempt at TryMergeRunsThreshold elements or wider;
// otherwise a dual-pivot partition followed by recursion into the two smaller of the
// up-to-three resulting zones and iteration (loop, not recursion) into the largest,
// which bounds the Go call stack to O(log n) regardless of input order.
// depth is threaded counting down from knobs.MaxRecursionDepth to 0 (rather than up
// from 0 past MaxRecursionDepth); the two are equivalent in how many partition levels
// they permit before falling back to heap sort, and counting down means the depth
// budget for a parallel worker's sub-task (§4.9) is just "whatever depth its parent
// task handed it" with no extra bookkeeping.
func sortSequential[T any](r Region[T], cmp order.Order[T], knobs Tunables, scratch *Scratch[T], leftmost bool, depth int) {
	for {
		n := r.Len()
		if n < 2 {
			return
		}
		if n < knobs.InsertionThreshold {
			insertionSort(r, cmp)
			return
		}
		if leftmost && n < knobs.MixedInsertionThreshold {
			mixedInsertionSort(r, cmp)
			return
		}
		if depth <= 0 {
			heapSort(r, cmp)
			return
		}
		if n >= knobs.TryMergeRunsThreshold && tryMergeRuns(r, cmp, scratch, knobs) {
			return
		}

		pr := partition(r, cmp)
		depth -= knobs.DepthStep

		left := Region[T]{Base: r.Base, Low: r.Low, High: pr.lo}
		right := Region[T]{Base: r.Base, Low: pr.hi, High: r.High}
		segments := make([]Region[T], 0, 3)
		segments = append(segments, left)
		if !pr.equalPivot {
			segments = append(segments, Region[T]{Base: r.Base, Low: pr.lo, High: pr.hi})
		}
		segments = append(segments, right)

		largestIdx := 0
		for i := 1; i < len(segments); i++ {
			if segments[i].Len() > segments[largestIdx].Len() {
				largestIdx = i
			}
		}

		for i, seg := range segments {
			if i == largestIdx {
				continue
			}
			// Only the left zone (index 0) can ever carry leftmost forward: the middle
			// and right zones always sit to the right of at least one already-placed
			// pivot, so neither is the array's leftmost sub-region.
			sortSequential(seg, cmp, knobs, scratch, leftmost && i == 0, depth)
		}

		nextLeftmost := leftmost && largestIdx == 0
		r = segments[largestIdx]
		leftmost = nextLeftmost
	}
}
