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

// Region designates the half-open slice [Low, High) of Base over which an operation
// acts. Base is owned by the caller; every operation in this package mutates Base's
// elements in place and never grows, shrinks, or reallocates it.
type Region[T any] struct {
	Base []T
	Low  int
	High int
}

// NewRegion wraps the whole of base as a region.
func NewRegion[T any](base []T) Region[T] {
	return Region[T]{Base: base, Low: 0, High: len(base)}
}

// Len reports the number of elements in the region.
func (r Region[T]) Len() int { return r.High - r.Low }

// Get reads the element at absolute index i (Low <= i < High).
func (r Region[T]) Get(i int) T { return r.Base[i] }

// Put writes v to absolute index i (Low <= i < High).
func (r Region[T]) Put(i int, v T) { r.Base[i] = v }

// Swap exchanges the elements at absolute indices i and j.
func (r Region[T]) Swap(i, j int) { r.Base[i], r.Base[j] = r.Base[j], r.Base[i] }

// Sub returns the sub-region [lo, hi) of the same Base, in absolute indices.
func (r Region[T]) Sub(lo, hi int) Region[T] { return Region[T]{Base: r.Base, Low: lo, High: hi} }

// Slice returns the []T view of exactly this region — a convenience for call sites
// that want to hand the region to a plain-slice helper (e.g. a length-n scratch copy).
func (r Region[T]) Slice() []T { return r.Base[r.Low:r.High] }

// ValidateRange checks the §3 Region invariant (0 <= low <= high <= length) and
// returns an *InvalidRangeError if it doesn't hold.
func ValidateRange(length, low, high int) error {
	if low < 0 || low > high || high > length {
		return &InvalidRangeError{Low: low, High: high, Length: length}
	}
	return nil
}
