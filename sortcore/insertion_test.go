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

func TestInsertionSortOnSubRegion(t *testing.T) {
	data := []int{99, 5, 3, 8, 1, -99}
	r := Region[int]{Base: data, Low: 1, High: 5}
	insertionSort(r, order.Natural[int]())
	want := []int{99, 1, 3, 5, 8, -99}
	for i, v := range want {
		if data[i] != v {
			t.Fatalf("index %d: got %d, want %d", i, data[i], v)
		}
	}
}

func TestMixedInsertionSortMatchesPlainInsertionSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rnd.Intn(40)
		data := make([]int, n)
		for i := range data {
			data[i] = rnd.Intn(20)
		}
		want := append([]int(nil), data...)
		sort.Ints(want)

		mixedInsertionSort(NewRegion(data), order.Natural[int]())
		for i := range data {
			if data[i] != want[i] {
				t.Fatalf("trial %d, index %d: got %d, want %d", trial, i, data[i], want[i])
			}
		}
	}
}

func TestMixedInsertionSortOnSubRegionWithNonZeroLow(t *testing.T) {
	data := []int{-1, 9, 3, 7, 1, 5, -1}
	r := Region[int]{Base: data, Low: 1, High: 6}
	mixedInsertionSort(r, order.Natural[int]())
	want := []int{1, 3, 5, 7, 9}
	for i, v := range want {
		if data[1+i] != v {
			t.Fatalf("index %d: got %d, want %d", 1+i, data[1+i], v)
		}
	}
	if data[0] != -1 || data[6] != -1 {
		t.Fatalf("region boundaries were modified: %v", data)
	}
}
