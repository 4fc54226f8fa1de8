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

	"github.com/launix-de/duoqsort/order"
)

// sortFloat64s sorts data into IEEE-754 total order: NaNs last (in no particular
// relative order among themselves), then every other value ascending, with -0.0
// ordered immediately before +0.0 even though the two compare equal under <.
//
// NaNs are relocated to the tail before the general driver ever sees them, since a
// NaN participating in cmp.Less would violate the strict weak ordering every other
// stage of the driver assumes. Negative zero is normalized to positive zero for the
// same reason (the driver's comparator can't distinguish them), then restored by a
// cheap post-pass once the sorted position of the zero run is known.
func sortFloat64s(data []float64, knobs Tunables) {
	n := len(data)
	if n < 2 {
		return
	}
	end, negZeros := PrepareFloat64s(data)
	sortRegion(NewRegion(data[:end]), order.Natural[float64](), knobs)
	RestoreNegativeZerosFloat64(data, end, negZeros)
}

// sortFloat32s mirrors sortFloat64s for float32 data.
func sortFloat32s(data []float32, knobs Tunables) {
	n := len(data)
	if n < 2 {
		return
	}
	end, negZeros := PrepareFloat32s(data)
	sortRegion(NewRegion(data[:end]), order.Natural[float32](), knobs)
	RestoreNegativeZerosFloat32(data, end, negZeros)
}

// PrepareFloat64s runs the §4.8 pre-pass in place: it relocates every NaN to the tail
// of data and normalizes every -0.0 to +0.0, returning the end of the now-NaN-free
// prefix and how many negative zeros were normalized away. Exported so the parallel
// package's float entry points can wrap parallel.Sort with the same discipline the
// sequential driver uses, without either package needing to know the other's sort
// internals — only this pre-pass and its RestoreNegativeZeros counterpart.
func PrepareFloat64s(data []float64) (end, negZeros int) {
	end = len(data)
	i := 0
	for i < end {
		if math.IsNaN(data[i]) {
			end--
			data[i], data[end] = data[end], data[i]
		} else {
			i++
		}
	}
	for k := 0; k < end; k++ {
		if data[k] == 0 && math.Signbit(data[k]) {
			data[k] = 0
			negZeros++
		}
	}
	return end, negZeros
}

// RestoreNegativeZerosFloat64 runs the §4.8 post-pass: once data[:end] is sorted with
// every zero normalized to +0.0, it restores the first negZeros of the zero run to
// -0.0, so -0.0 sorts immediately before +0.0 as the total order requires.
func RestoreNegativeZerosFloat64(data []float64, end, negZeros int) {
	if negZeros <= 0 {
		return
	}
	start := lowerBoundNonNegativeFloat64(data, 0, end)
	for k := start; k < start+negZeros; k++ {
		data[k] = math.Copysign(0, -1)
	}
}

// PrepareFloat32s mirrors PrepareFloat64s for float32 data.
func PrepareFloat32s(data []float32) (end, negZeros int) {
	end = len(data)
	i := 0
	for i < end {
		if math.IsNaN(float64(data[i])) {
			end--
			data[i], data[end] = data[end], data[i]
		} else {
			i++
		}
	}
	for k := 0; k < end; k++ {
		if data[k] == 0 && math.Signbit(float64(data[k])) {
			data[k] = 0
			negZeros++
		}
	}
	return end, negZeros
}

// RestoreNegativeZerosFloat32 mirrors RestoreNegativeZerosFloat64 for float32 data.
func RestoreNegativeZerosFloat32(data []float32, end, negZeros int) {
	if negZeros <= 0 {
		return
	}
	start := lowerBoundNonNegativeFloat32(data, 0, end)
	negZero := float32(math.Copysign(0, -1))
	for k := start; k < start+negZeros; k++ {
		data[k] = negZero
	}
}

// lowerBoundNonNegativeFloat64 finds the first index in the already-sorted
// data[lo:hi) whose value is >= 0, i.e. the start of the (all positive-zero, at this
// point) zero run.
func lowerBoundNonNegativeFloat64(data []float64, lo, hi int) int {
	for lo < hi {
		mid := (lo + hi) / 2
		if data[mid] < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func lowerBoundNonNegativeFloat32(data []float32, lo, hi int) int {
	for lo < hi {
		mid := (lo + hi) / 2
		if data[mid] < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
