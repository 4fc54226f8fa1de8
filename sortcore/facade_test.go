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
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/launix-de/duoqsort/order"
)

func TestSortSmallSlices(t *testing.T) {
	t.Helper()
	got := []int{64, 34, 25, 12, 22, 11, 90}
	want := []int{11, 12, 22, 25, 34, 64, 90}
	SortOrdered(got)
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSortReverseSortedSmallInput(t *testing.T) {
	n := 10
	got := make([]int, n)
	for i := range got {
		got[i] = n - 1 - i
	}
	SortOrdered(got)
	for i := 0; i < n; i++ {
		if got[i] != i {
			t.Fatalf("index %d: got %d, want %d", i, got[i], i)
		}
	}
}

func TestSortAllEqualIsMonotoneConstant(t *testing.T) {
	got := make([]int, 1000)
	for i := range got {
		got[i] = 5
	}
	SortOrdered(got)
	for _, v := range got {
		if v != 5 {
			t.Fatalf("expected all 5s, found %d", v)
		}
	}
}

func TestSortLargeRandomPermutationMatchesReference(t *testing.T) {
	n := 200000
	got := make([]int, n)
	rnd := rand.New(rand.NewSource(42))
	perm := rnd.Perm(n)
	copy(got, perm)
	want := append([]int(nil), got...)
	sort.Ints(want)

	SortOrdered(got)
	if !equalInts(got, want) {
		t.Fatalf("large random permutation mismatch")
	}
}

func TestSortFloatsNaNAndZeroDiscipline(t *testing.T) {
	data := []float64{1.0, math.NaN(), math.Copysign(0, -1), 0.0, -1.0, math.NaN(), 2.0}
	SortFloat64s(data)

	nonNaN := data[:5]
	want := []float64{-1.0, 0, 0, 1.0, 2.0}
	for i, v := range nonNaN {
		if v != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, v, want[i])
		}
	}
	if !math.Signbit(nonNaN[1]) {
		t.Fatalf("expected nonNaN[1] to be -0.0")
	}
	if math.Signbit(nonNaN[2]) {
		t.Fatalf("expected nonNaN[2] to be +0.0")
	}
	for i := 5; i < len(data); i++ {
		if !math.IsNaN(data[i]) {
			t.Fatalf("index %d: expected NaN, got %v", i, data[i])
		}
	}
}

func TestSortInt8sUsesCountingSortAboveThreshold(t *testing.T) {
	n := 10000
	rnd := rand.New(rand.NewSource(7))
	got := make([]int8, n)
	for i := range got {
		got[i] = int8(rnd.Intn(256) - 128)
	}
	want := append([]int8(nil), got...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	SortInt8s(got)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSortUint16sBelowThresholdFallsThroughToGenericDriver(t *testing.T) {
	got := []uint16{500, 3, 7, 1, 0, 65000, 42}
	want := append([]uint16(nil), got...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	SortUint16s(got)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSortMatchesReferenceUnderDuplicateHeavyInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	got := make([]int, 5000)
	for i := range got {
		got[i] = rnd.Intn(5)
	}
	want := append([]int(nil), got...)
	sort.Ints(want)
	SortOrdered(got)
	if !equalInts(got, want) {
		t.Fatalf("duplicate-heavy input mismatch")
	}
}

func TestSortRangeLeavesOutsideBytesUntouched(t *testing.T) {
	data := []int{99, 5, 3, 1, 4, -99}
	before := append([]int(nil), data...)
	if err := SortRange(data, 1, 5, order.Natural[int]()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data[0] != before[0] || data[5] != before[5] {
		t.Fatalf("out-of-range bytes were modified: %v", data)
	}
	want := []int{5, 3, 1, 4}
	sort.Ints(want)
	for i, v := range want {
		if data[1+i] != v {
			t.Fatalf("index %d: got %d, want %d", 1+i, data[1+i], v)
		}
	}
}

func TestSortRangeRejectsInvalidBounds(t *testing.T) {
	data := []int{1, 2, 3}
	err := SortRange(data, 2, 1, order.Natural[int]())
	if err == nil {
		t.Fatalf("expected an error for low > high")
	}
	var rangeErr *InvalidRangeError
	if !asInvalidRangeError(err, &rangeErr) {
		t.Fatalf("expected *InvalidRangeError, got %T: %v", err, err)
	}
}

func TestSortWithDescendingComparator(t *testing.T) {
	got := []int{3, 1, 4, 1, 5, 9, 2, 6}
	Sort(got, order.Reverse(order.Natural[int]()))
	for i := 1; i < len(got); i++ {
		if got[i] > got[i-1] {
			t.Fatalf("not descending at index %d: %v", i, got)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func asInvalidRangeError(err error, target **InvalidRangeError) bool {
	if e, ok := err.(*InvalidRangeError); ok {
		*target = e
		return true
	}
	return false
}
