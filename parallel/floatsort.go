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

package parallel

import (
	"github.com/launix-de/duoqsort/order"
	"github.com/launix-de/duoqsort/sortcore"
)

// SortFloat64sParallel sorts data into IEEE-754 total order (NaNs last, -0.0 before
// +0.0) using up to parallelism concurrent workers for the bulk of the work: it runs
// sortcore's NaN/-0.0 pre-pass, hands the shrunk, NaN-free prefix to Sort, then runs
// the post-pass that restores negative zeros — the same wrapping sortcore.sortFloat64s
// does around the sequential driver, so a parallel float sort gets the identical
// §4.8 discipline instead of scattering NaNs through the result.
func SortFloat64sParallel(data []float64, parallelism int, knobs sortcore.Tunables) error {
	if len(data) < 2 {
		return nil
	}
	end, negZeros := sortcore.PrepareFloat64s(data)
	err := Sort(data[:end], order.Natural[float64](), parallelism, knobs)
	sortcore.RestoreNegativeZerosFloat64(data, end, negZeros)
	return err
}

// SortFloat32sParallel mirrors SortFloat64sParallel for float32 data.
func SortFloat32sParallel(data []float32, parallelism int, knobs sortcore.Tunables) error {
	if len(data) < 2 {
		return nil
	}
	end, negZeros := sortcore.PrepareFloat32s(data)
	err := Sort(data[:end], order.Natural[float32](), parallelism, knobs)
	sortcore.RestoreNegativeZerosFloat32(data, end, negZeros)
	return err
}
