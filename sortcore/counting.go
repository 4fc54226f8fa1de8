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

// Counting sort specializations for the narrow integer domains where the value range
// fits comfortably in memory as a bucket array. These are only ever reached for the
// natural ascending order on the concrete numeric facade entry points (SortInt8s and
// friends); a custom comparator always uses the general driver instead, since counting
// sort has no notion of "less" beyond bucket identity.
//
// Each variant tracks the actual min/max bucket touched during the counting pass so
// the emission sweep below only walks the span the data actually occupies rather than
// the type's full 256- or 65536-wide range — a dense input (values spread across the
// whole domain) and a sparse one (values clustered in a narrow band) both pay only for
// the span they use.

func countingSortUint8(r Region[uint8]) {
	if r.Len() < 2 {
		return
	}
	var counts [256]int
	minV, maxV := r.Get(r.Low), r.Get(r.Low)
	for i := r.Low; i < r.High; i++ {
		v := r.Get(i)
		counts[v]++
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	w := r.Low
	for v := int(minV); v <= int(maxV); v++ {
		for c := counts[v]; c > 0; c-- {
			r.Put(w, uint8(v))
			w++
		}
	}
}

func countingSortInt8(r Region[int8]) {
	if r.Len() < 2 {
		return
	}
	const bias = 128
	var counts [256]int
	biasOf := func(v int8) int { return int(v) + bias }
	minB, maxB := biasOf(r.Get(r.Low)), biasOf(r.Get(r.Low))
	for i := r.Low; i < r.High; i++ {
		b := biasOf(r.Get(i))
		counts[b]++
		if b < minB {
			minB = b
		}
		if b > maxB {
			maxB = b
		}
	}
	w := r.Low
	for b := minB; b <= maxB; b++ {
		for c := counts[b]; c > 0; c-- {
			r.Put(w, int8(b-bias))
			w++
		}
	}
}

func countingSortUint16(r Region[uint16]) {
	if r.Len() < 2 {
		return
	}
	var counts [65536]int
	minV, maxV := r.Get(r.Low), r.Get(r.Low)
	for i := r.Low; i < r.High; i++ {
		v := r.Get(i)
		counts[v]++
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	w := r.Low
	for v := int(minV); v <= int(maxV); v++ {
		for c := counts[v]; c > 0; c-- {
			r.Put(w, uint16(v))
			w++
		}
	}
}

func countingSortInt16(r Region[int16]) {
	if r.Len() < 2 {
		return
	}
	const bias = 32768
	var counts [65536]int
	biasOf := func(v int16) int { return int(v) + bias }
	minB, maxB := biasOf(r.Get(r.Low)), biasOf(r.Get(r.Low))
	for i := r.Low; i < r.High; i++ {
		b := biasOf(r.Get(i))
		counts[b]++
		if b < minB {
			minB = b
		}
		if b > maxB {
			maxB = b
		}
	}
	w := r.Low
	for b := minB; b <= maxB; b++ {
		for c := counts[b]; c > 0; c-- {
			r.Put(w, int16(b-bias))
			w++
		}
	}
}
