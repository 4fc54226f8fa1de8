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

// partitionResult reports the two boundaries produced by partition, in the uniform
// convention used by both of its operating modes:
//
//	r[r.Low:lo)  are <  p1
//	r[lo:hi)     are in [p1, p2]  (== p, in equal-pivot mode)
//	r[hi:r.High) are >  p2
//
// equalPivot is true when p1 == p2 was detected: the middle zone is then a single
// constant value and never needs recursing into.
type partitionResult struct {
	lo, hi     int
	equalPivot bool
}

// partition implements the dual-pivot three-way partition of §4.4: it samples five
// evenly spaced candidates, sorts them with a fixed 9-comparison network, and uses
// the 2nd and 4th as p1 and p2 to split r into three (or, if p1 == p2, two
// semantically distinct but uniformly-returned) zones.
func partition[T any](r Region[T], cmp order.Order[T]) partitionResult {
	n := r.Len()
	seventh := n / 7
	e1 := r.Low + seventh
	e2 := r.Low + 2*seventh
	e3 := r.Low + 3*seventh
	e4 := r.Low + 5*seventh
	e5 := r.Low + 6*seventh

	sortFive(r, cmp, e1, e2, e3, e4, e5)

	pivot1 := r.Get(e2)
	pivot2 := r.Get(e4)
	equal := !cmp.Less(pivot1, pivot2) && !cmp.Less(pivot2, pivot1)

	if equal {
		return partitionEqual(r, cmp, pivot1)
	}
	return partitionDistinct(r, cmp, e2, e4, pivot1, pivot2)
}

// sortFive sorts the five elements at the given absolute indices with the fixed
// 9-comparator network used by production dual-pivot quicksorts, so the pivot
// candidates are drawn from a fully ordered sample rather than an ad hoc one.
func sortFive[T any](r Region[T], cmp order.Order[T], i1, i2, i3, i4, i5 int) {
	ce := func(a, b int) {
		if cmp.Less(r.Get(b), r.Get(a)) {
			r.Swap(a, b)
		}
	}
	ce(i1, i2)
	ce(i4, i5)
	ce(i1, i3)
	ce(i2, i3)
	ce(i1, i4)
	ce(i3, i4)
	ce(i2, i5)
	ce(i2, i3)
	ce(i4, i5)
}

// partitionDistinct handles p1 != p2: the classic Yaroslavskiy scan. e2Idx/e4Idx are
// the absolute positions the two pivot values were sampled from; their contents are
// displaced to make room for the boundary elements during the scan and the pivots
// themselves are restored to their final resting places (less-1 and great+1, which
// are the partitionResult's lo and hi-1) once it completes.
func partitionDistinct[T any](r Region[T], cmp order.Order[T], e2Idx, e4Idx int, pivot1, pivot2 T) partitionResult {
	left := r.Low
	right := r.High - 1

	r.Put(e2Idx, r.Get(left))
	r.Put(e4Idx, r.Get(right))

	less := left + 1
	great := right - 1

	for k := less; k <= great; k++ {
		if cmp.Less(r.Get(k), pivot1) {
			r.Swap(k, less)
			less++
		} else if cmp.Less(pivot2, r.Get(k)) {
			for k < great && cmp.Less(pivot2, r.Get(great)) {
				great--
			}
			r.Swap(k, great)
			great--
			if cmp.Less(r.Get(k), pivot1) {
				r.Swap(k, less)
				less++
			}
		}
	}

	r.Put(left, r.Get(less-1))
	r.Put(less-1, pivot1)
	r.Put(right, r.Get(great+1))
	r.Put(great+1, pivot2)

	return partitionResult{lo: less - 1, hi: great + 2, equalPivot: false}
}

// partitionEqual handles p1 == p2: the classical three-way Dutch-flag partition
// against the single pivot value, saving one comparison per element versus treating
// it as a degenerate distinct-pivot case.
func partitionEqual[T any](r Region[T], cmp order.Order[T], pivot T) partitionResult {
	lt := r.Low
	i := r.Low
	gt := r.High - 1
	for i <= gt {
		if cmp.Less(r.Get(i), pivot) {
			r.Swap(i, lt)
			lt++
			i++
		} else if cmp.Less(pivot, r.Get(i)) {
			r.Swap(i, gt)
			gt--
		} else {
			i++
		}
	}
	return partitionResult{lo: lt, hi: gt + 1, equalPivot: true}
}
