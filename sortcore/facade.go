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

// Package sortcore implements the sequential sorting engine: insertion and mixed
// insertion sort, heap sort, the dual-pivot three-way partition, run detection and
// merging, and the counting-sort and float-sort specializations, plus the driver that
// stitches them together per the size/depth cascade. The parallel package builds on
// top of this one; this package never spawns a goroutine itself.
package sortcore

import (
	"runtime/debug"

	"github.com/launix-de/duoqsort/order"
	"golang.org/x/exp/constraints"
)

// Sort sorts data according to cmp using the compiled-in default tunables.
func Sort[T any](data []T, cmp order.Order[T]) {
	SortWithTunables(data, cmp, DefaultTunables())
}

// SortOrdered sorts data of a naturally ordered type ascending. It's a convenience
// wrapper over Sort + order.Natural for callers that don't need a custom comparator.
func SortOrdered[T constraints.Ordered](data []T) {
	Sort(data, order.Natural[T]())
}

// SortWithTunables sorts data according to cmp, threading an explicit Tunables value
// through instead of the compiled-in defaults: package tuning's hot-reloaded values
// flow in through this entry point. A panic recovered mid-sort is wrapped into a
// *PanicError carrying the region bounds and a captured stack, then re-panicked — the
// sort is always left in a state a caller's own recover can inspect, never silently
// swallowed (mirrored from the scan layer's qe.err re-panic convention).
func SortWithTunables[T any](data []T, cmp order.Order[T], knobs Tunables) {
	if len(data) < 2 {
		return
	}
	r := NewRegion(data)
	defer func() {
		if rec := recover(); rec != nil {
			panic(&PanicError{Recovered: rec, Stack: string(debug.Stack()), Low: r.Low, High: r.High})
		}
	}()
	sortRegion(r, cmp, knobs)
}

// SortRange sorts data[low:high] in place, leaving the rest of data untouched. It
// reports an *InvalidRangeError if the bounds violate the §3 Region invariant instead
// of panicking, since a caller-supplied range is an ordinary input-validation case
// rather than an internal invariant violation.
func SortRange[T any](data []T, low, high int, cmp order.Order[T]) error {
	if err := ValidateRange(len(data), low, high); err != nil {
		return err
	}
	SortWithTunables(NewRegion(data).Sub(low, high).Slice(), cmp, DefaultTunables())
	return nil
}

// SortInt8s sorts data ascending, using the counting-sort specialization once data is
// large enough for the fixed 256-bucket table to pay for itself.
func SortInt8s(data []int8) {
	if len(data) >= MinCountingSortSizeByte {
		countingSortInt8(NewRegion(data))
		return
	}
	SortOrdered(data)
}

// SortUint8s mirrors SortInt8s for uint8.
func SortUint8s(data []uint8) {
	if len(data) >= MinCountingSortSizeByte {
		countingSortUint8(NewRegion(data))
		return
	}
	SortOrdered(data)
}

// SortInt16s mirrors SortInt8s for int16, using the 65536-bucket table.
func SortInt16s(data []int16) {
	if len(data) >= MinCountingSortSizeWord {
		countingSortInt16(NewRegion(data))
		return
	}
	SortOrdered(data)
}

// SortUint16s mirrors SortInt16s for uint16.
func SortUint16s(data []uint16) {
	if len(data) >= MinCountingSortSizeWord {
		countingSortUint16(NewRegion(data))
		return
	}
	SortOrdered(data)
}

// SortFloat32s sorts data into IEEE-754 total order (NaNs last, -0.0 before +0.0).
func SortFloat32s(data []float32) {
	sortFloat32s(data, DefaultTunables())
}

// SortFloat64s mirrors SortFloat32s for float64.
func SortFloat64s(data []float64) {
	sortFloat64s(data, DefaultTunables())
}
