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

// Package duoqsort is the ergonomic front door onto sortcore (sequential dual-pivot
// quicksort) and parallel (its work-stealing parallel engine): a caller that only
// needs "sort this slice" never has to import either subpackage directly.
package duoqsort

import (
	"github.com/launix-de/duoqsort/order"
	"github.com/launix-de/duoqsort/parallel"
	"github.com/launix-de/duoqsort/sortcore"
	"golang.org/x/exp/constraints"
)

// Tunables re-exports sortcore.Tunables; see package tuning for loading one from an
// override file or hot-reloading it.
type Tunables = sortcore.Tunables

// DefaultTunables returns the compiled-in knob defaults.
func DefaultTunables() Tunables {
	return sortcore.DefaultTunables()
}

// IsPanicError reports whether err (or something it wraps) is a sortcore.PanicError
// raised by a comparator or internal invariant panic during a sequential sort.
func IsPanicError(err error) (*sortcore.PanicError, bool) {
	return sortcore.IsPanicError(err)
}

// IsTaskError reports whether err (or something it wraps) is a parallel.TaskError
// raised by a failed parallel task.
func IsTaskError(err error) (*parallel.TaskError, bool) {
	return parallel.IsTaskError(err)
}

// Sort sorts data according to cmp, sequentially, using the compiled-in defaults. Use
// SortParallel to opt into the work-stealing engine for large inputs.
func Sort[T any](data []T, cmp order.Order[T]) {
	sortcore.Sort(data, cmp)
}

// SortOrdered sorts data of a naturally ordered type ascending.
func SortOrdered[T constraints.Ordered](data []T) {
	sortcore.SortOrdered(data)
}

// SortWithTunables sorts data according to cmp, sequentially, threading an explicit
// Tunables value through instead of the compiled-in defaults.
func SortWithTunables[T any](data []T, cmp order.Order[T], knobs Tunables) {
	sortcore.SortWithTunables(data, cmp, knobs)
}

// SortRange sorts data[low:high] in place, leaving the rest of data untouched.
func SortRange[T any](data []T, low, high int, cmp order.Order[T]) error {
	return sortcore.SortRange(data, low, high, cmp)
}

// SortParallel sorts data using up to parallelism concurrent workers, falling back to
// the sequential driver directly when parallelism <= 1 or the input is too small to be
// worth splitting. A non-nil error means a task failed to allocate or a comparator
// panicked; data may be partially sorted in that case.
func SortParallel[T any](data []T, cmp order.Order[T], parallelism int, knobs Tunables) error {
	return parallel.Sort(data, cmp, parallelism, knobs)
}

// SortInt8s sorts data ascending, using the counting-sort specialization once large
// enough for it to pay off.
func SortInt8s(data []int8) { sortcore.SortInt8s(data) }

// SortUint8s mirrors SortInt8s for uint8.
func SortUint8s(data []uint8) { sortcore.SortUint8s(data) }

// SortInt16s mirrors SortInt8s for int16.
func SortInt16s(data []int16) { sortcore.SortInt16s(data) }

// SortUint16s mirrors SortInt8s for uint16.
func SortUint16s(data []uint16) { sortcore.SortUint16s(data) }

// SortFloat32s sorts data into IEEE-754 total order (NaNs last, -0.0 before +0.0).
func SortFloat32s(data []float32) { sortcore.SortFloat32s(data) }

// SortFloat64s mirrors SortFloat32s for float64.
func SortFloat64s(data []float64) { sortcore.SortFloat64s(data) }

// SortFloat32sParallel mirrors SortFloat32s but sorts the NaN-free prefix with up to
// parallelism concurrent workers, per §4.10's dispatch order: the float
// specialization wraps whichever of the sequential or parallel path step 5/6 select.
func SortFloat32sParallel(data []float32, parallelism int, knobs Tunables) error {
	return parallel.SortFloat32sParallel(data, parallelism, knobs)
}

// SortFloat64sParallel mirrors SortFloat32sParallel for float64.
func SortFloat64sParallel(data []float64, parallelism int, knobs Tunables) error {
	return parallel.SortFloat64sParallel(data, parallelism, knobs)
}
