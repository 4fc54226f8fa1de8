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

// tryMergeRuns scans r for a dense-enough run structure and, if found, sorts it by
// merging the runs through scratch instead of partitioning. It reports whether it
// succeeded; on false the driver falls back to the partitioner, and r is left
// unchanged except for any descending runs already reversed in place (reversal alone
// is always a valid partial step toward a sorted region, never a correctness hazard
// for the partitioner that follows).
//
// scratch may be nil, in which case a buffer is allocated locally for this call only;
// sortRegion pre-allocates one for the whole region whenever it is large enough to
// reach this function, and every nested call reuses it.
func tryMergeRuns[T any](r Region[T], cmp order.Order[T], scratch *Scratch[T], knobs Tunables) bool {
	bounds := []int{r.Low}
	k := r.Low + 1
	firstRunChecked := false

	for k < r.High {
		runStart := k - 1
		switch {
		case cmp.Less(r.Get(k-1), r.Get(k)):
			for k < r.High && !cmp.Less(r.Get(k), r.Get(k-1)) {
				k++
			}
		case cmp.Less(r.Get(k), r.Get(k-1)):
			for k < r.High && cmp.Less(r.Get(k), r.Get(k-1)) {
				k++
			}
			reverseRange(r, runStart, k)
		default:
			for k < r.High && cmp.Equal(r.Get(k), r.Get(k-1)) {
				k++
			}
			if len(bounds) == 1 && k == r.High {
				// the whole region is one constant run: monotone-constant, no merge needed.
				return true
			}
		}
		bounds = append(bounds, k)

		if !firstRunChecked {
			firstRunChecked = true
			if bounds[1]-bounds[0] < knobs.MinFirstRunLength {
				return false
			}
		}
		runCount := len(bounds) - 1
		if runCount > knobs.MaxRunCapacity {
			return false
		}
		// Geometric bound: once several runs are in, more than (scanned/2^factor) of
		// them means runs are proportionally too short for merging to pay off. Skipped
		// for the first few runs so the check doesn't fire before it has enough signal.
		if runCount >= 4 {
			scanned := k - r.Low
			if runCount > (scanned >> knobs.MinFirstRunsFactor) {
				return false
			}
		}
		// The next run starts at k; step past its first element so the comparison at
		// the top of the loop stays inside that run.
		k++
	}
	if bounds[len(bounds)-1] < r.High {
		// a single trailing element left over after the last run.
		bounds = append(bounds, r.High)
	}

	runCount := len(bounds) - 1
	if runCount <= 1 {
		return true // already fully sorted (single run spans the whole region)
	}

	if scratch == nil {
		scratch = NewScratch[T](r.Len())
	}
	// The scratch buffer is indexed by absolute region position directly, so it must
	// hold at least r.High elements; scratchView widens a smaller one, and sortRegion
	// sizes its buffer to the whole region.
	mergeRuns(r, cmp, scratchView(r, scratch), bounds, 0, runCount, true)
	return true
}

// scratchView returns scratch as a Region addressed with the same absolute indices as
// r, so merge code can treat "the region" and "the scratch" uniformly.
func scratchView[T any](r Region[T], scratch *Scratch[T]) Region[T] {
	base := scratch.buf
	if len(base) < r.High {
		// defensive widen: callers are expected to size scratch >= r.High already.
		grown := make([]T, r.High)
		copy(grown, base)
		scratch.buf = grown
		base = grown
	}
	return Region[T]{Base: base, Low: r.Low, High: r.High}
}

// reverseRange reverses the absolute index range [lo, hi) of r in place.
func reverseRange[T any](r Region[T], lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		r.Swap(i, j)
	}
}

// mergeRuns recursively merges runs[lo:hi] (a run-index range over bounds) so that the
// fully merged, sorted result for absolute positions [bounds[lo], bounds[hi]) ends up
// in `region` (dstIsRegion == true means "region" refers to the original region; the
// ping-pong happens by swapping which of region/scratch plays that role at each
// level) — specifically the *top-level* call always targets the original region, so
// no final copy-back is ever needed, per the design note on aim/offset.
func mergeRuns[T any](region Region[T], cmp order.Order[T], scratch Region[T], bounds []int, lo, hi int, dstIsRegion bool) {
	if hi-lo == 1 {
		if !dstIsRegion {
			// Base case landing in scratch: the run's data currently lives in region
			// (leaf runs are never anywhere else), so copy it across once.
			copyRange(scratch, region, bounds[lo], bounds[hi])
		}
		return
	}

	mid := pickSplit(bounds, lo, hi)

	// Both halves are produced into the buffer that is NOT our destination, so the
	// final two-pointer merge below reads two adjacent sorted halves from one buffer
	// and writes the combined result into the other.
	mergeRuns(region, cmp, scratch, bounds, lo, mid, !dstIsRegion)
	mergeRuns(region, cmp, scratch, bounds, mid, hi, !dstIsRegion)

	var src, dst Region[T]
	if dstIsRegion {
		src, dst = scratch, region
	} else {
		src, dst = region, scratch
	}
	twoWayMerge(cmp, src, dst, bounds[lo], bounds[mid], bounds[hi])
}

// pickSplit finds the run-index m (lo < m < hi) whose absolute boundary brackets the
// midpoint of the absolute range [bounds[lo], bounds[hi]), balancing the merge tree by
// position rather than by raw run count.
func pickSplit(bounds []int, lo, hi int) int {
	target := (bounds[lo] + bounds[hi]) / 2
	m := lo + 1
	for m < hi-1 && bounds[m] < target {
		m++
	}
	return m
}

// twoWayMerge merges src[loPos:midPos) and src[midPos:hiPos) (each already sorted)
// into dst[loPos:hiPos). Ties are resolved in favour of the left source, matching the
// deterministic traversal order the run scanner itself produces.
func twoWayMerge[T any](cmp order.Order[T], src, dst Region[T], loPos, midPos, hiPos int) {
	i, j, w := loPos, midPos, loPos
	for i < midPos && j < hiPos {
		right := src.Get(j)
		left := src.Get(i)
		if !cmp.Less(right, left) {
			dst.Put(w, left)
			i++
		} else {
			dst.Put(w, right)
			j++
		}
		w++
	}
	for i < midPos {
		dst.Put(w, src.Get(i))
		i++
		w++
	}
	for j < hiPos {
		dst.Put(w, src.Get(j))
		j++
		w++
	}
}

func copyRange[T any](dst, src Region[T], lo, hi int) {
	for i := lo; i < hi; i++ {
		dst.Put(i, src.Get(i))
	}
}
