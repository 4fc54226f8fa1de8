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

// Package order carries the single comparator abstraction threaded through every
// internal sort operation: a pure "less than" relation, consumed by value, never
// assuming operator== on the element type.
package order

import "golang.org/x/exp/constraints"

// Order is a strict weak ordering over T: Less(a, b) reports whether a sorts before
// b. The engine never compares elements with ==; equality is always derived as
// !Less(a, b) && !Less(b, a).
type Order[T any] struct {
	Less func(a, b T) bool
}

// Equal derives equality from two one-directional comparisons, per the comparator
// contract in the data model: the engine has no other notion of "same element".
func (o Order[T]) Equal(a, b T) bool {
	return !o.Less(a, b) && !o.Less(b, a)
}

// Natural returns the default total order for any ordered primitive type.
func Natural[T constraints.Ordered]() Order[T] {
	return Order[T]{Less: func(a, b T) bool { return a < b }}
}

// Reverse flips an order so that the greatest element sorts first, without touching
// the underlying relation's weak-ordering properties.
func Reverse[T any](o Order[T]) Order[T] {
	return Order[T]{Less: func(a, b T) bool { return o.Less(b, a) }}
}

// By builds an Order over T from a key extraction function and an order over the key
// type — the generic analogue of the teacher's column-reader-plus-comparator pattern
// in its ORDER BY scan (storage.table.scan_order's scols/sortdirs pair), collapsed
// into a single composable value instead of two parallel slices.
func By[T any, K any](key func(T) K, ko Order[K]) Order[T] {
	return Order[T]{Less: func(a, b T) bool { return ko.Less(key(a), key(b)) }}
}
