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

// Scratch is an auxiliary buffer of exactly the size needed by the run merger (or,
// from the parallel package, by the parallel merge). It is allocated once by the
// outermost call and handed down by reference; sub-tasks only ever see disjoint
// slices of it and never reallocate it. Ownership never escapes the call tree that
// created it.
type Scratch[T any] struct {
	buf []T
}

// NewScratch allocates a scratch buffer with capacity for n elements.
func NewScratch[T any](n int) *Scratch[T] {
	return &Scratch[T]{buf: make([]T, n)}
}

// Region returns the [lo, hi) window of the scratch buffer, lo/hi being relative to
// the scratch buffer's own start (not the source region's absolute indices) — callers
// translate once at the point they hand out a sub-task's scratch slice.
func (s *Scratch[T]) Region(lo, hi int) Region[T] {
	return Region[T]{Base: s.buf, Low: lo, High: hi}
}

// Len reports the scratch buffer's total capacity.
func (s *Scratch[T]) Len() int { return len(s.buf) }
