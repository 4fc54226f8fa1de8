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

// heapSort sorts r in place with the classic binary max-heap: build in reverse order,
// then repeatedly extract the max to the region's tail. It is the driver's worst-case
// fallback (invoked once the recursion-depth budget is exhausted) and guarantees
// O(n log n) comparisons and moves regardless of input, using only cmp.Less.
func heapSort[T any](r Region[T], cmp order.Order[T]) {
	n := r.Len()
	if n < 2 {
		return
	}
	for start := n/2 - 1; start >= 0; start-- {
		siftDown(r, cmp, start, n)
	}
	for end := n - 1; end > 0; end-- {
		r.Swap(r.Low, r.Low+end)
		siftDown(r, cmp, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at relative index
// `root`, within the active heap range [0, size) relative to r.Low.
func siftDown[T any](r Region[T], cmp order.Order[T], root, size int) {
	for {
		largest := root
		left := 2*root + 1
		right := 2*root + 2
		if left < size && cmp.Less(r.Get(r.Low+largest), r.Get(r.Low+left)) {
			largest = left
		}
		if right < size && cmp.Less(r.Get(r.Low+largest), r.Get(r.Low+right)) {
			largest = right
		}
		if largest == root {
			return
		}
		r.Swap(r.Low+root, r.Low+largest)
		root = largest
	}
}
