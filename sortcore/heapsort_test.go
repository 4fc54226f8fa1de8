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

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/launix-de/duoqsort/order"
)

func TestHeapSortAdversarialInput(t *testing.T) {
	// An input crafted to maximise recursion on a median-of-five dual-pivot partition
	// would, without the depth fallback, blow the stack; heapSort itself just needs to
	// handle the same data correctly regardless of its origin.
	n := 5000
	data := make([]int, n)
	for i := range data {
		data[i] = (i * 2654435761) % 997
	}
	want := append([]int(nil), data...)
	sort.Ints(want)

	heapSort(NewRegion(data), order.Natural[int]())
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}

func TestHeapSortRandomSmall(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for trial := 0; trial < 30; trial++ {
		n := rnd.Intn(20)
		data := make([]int, n)
		for i := range data {
			data[i] = rnd.Intn(10)
		}
		want := append([]int(nil), data...)
		sort.Ints(want)
		heapSort(NewRegion(data), order.Natural[int]())
		for i := range data {
			if data[i] != want[i] {
				t.Fatalf("trial %d index %d: got %d, want %d", trial, i, data[i], want[i])
			}
		}
	}
}
