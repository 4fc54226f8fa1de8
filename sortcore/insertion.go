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

// insertionSort sorts r in place. Sentinel-free: the inner loop's left bound is an
// explicit index check against r.Low rather than a guard value, since r.Low may be
// greater than zero for a sub-region.
func insertionSort[T any](r Region[T], cmp order.Order[T]) {
	for k := r.Low + 1; k < r.High; k++ {
		v := r.Get(k)
		j := k - 1
		for j >= r.Low && cmp.Less(v, r.Get(j)) {
			r.Put(j+1, r.Get(j))
			j--
		}
		r.Put(j+1, v)
	}
}

// mixedInsertionSort sorts r in place, applied by the driver only to the leftmost
// sub-region of a recursion and only below MixedInsertionThreshold.
//
// It picks the last element of r as a pin and runs a single partition pass against
// it (relocating every greater element toward the high end) before falling through to
// plain insertion sort, so the insertion pass does less shifting on average. This is a
// re-derivation rather than a port: the pin/partition bounds are computed from r.Low
// and r.High directly, so a sub-region produced by a prior partition step (r.Low > 0)
// is handled the same as a region starting at index 0 — see the open question in
// DESIGN.md about the original's pin-boundary assumptions. Production dual-pivot
// quicksorts additionally probe two candidate indices per step to amortize the bounds
// check against `right`; that's a constant-factor micro-optimization orthogonal to
// correctness and is left for a profiler to justify, not ported speculatively here.
func mixedInsertionSort[T any](r Region[T], cmp order.Order[T]) {
	if r.Len() < 2 {
		return
	}
	pin := r.Get(r.High - 1)
	k, right := r.Low, r.High-2
	for k <= right {
		if cmp.Less(pin, r.Get(k)) {
			r.Swap(k, right)
			right--
		} else {
			k++
		}
	}
	insertionSort(r, cmp)
}
