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
)

func TestCountingSortInt8MatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	data := make([]int8, 2000)
	for i := range data {
		data[i] = int8(rnd.Intn(256) - 128)
	}
	want := append([]int8(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	countingSortInt8(NewRegion(data))
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}

func TestCountingSortUint8MatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	data := make([]uint8, 2000)
	for i := range data {
		data[i] = uint8(rnd.Intn(256))
	}
	want := append([]uint8(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	countingSortUint8(NewRegion(data))
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}

func TestCountingSortInt16SparseRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	data := make([]int16, 3000)
	for i := range data {
		data[i] = int16(rnd.Intn(21) - 10) // tight cluster around zero
	}
	want := append([]int16(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	countingSortInt16(NewRegion(data))
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}

func TestCountingSortUint16FullRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(14))
	data := make([]uint16, 4000)
	for i := range data {
		data[i] = uint16(rnd.Intn(65536))
	}
	want := append([]uint16(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	countingSortUint16(NewRegion(data))
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}
