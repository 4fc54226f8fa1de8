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

import "testing"

func TestValidateRange(t *testing.T) {
	cases := []struct {
		length, low, high int
		wantErr           bool
	}{
		{10, 0, 10, false},
		{10, 3, 7, false},
		{10, 0, 0, false},
		{10, 5, 3, true},
		{10, -1, 5, true},
		{10, 0, 11, true},
	}
	for _, c := range cases {
		err := ValidateRange(c.length, c.low, c.high)
		if (err != nil) != c.wantErr {
			t.Fatalf("ValidateRange(%d,%d,%d): got err=%v, wantErr=%v", c.length, c.low, c.high, err, c.wantErr)
		}
	}
}

func TestRegionSubAndSlice(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}
	r := NewRegion(data)
	sub := r.Sub(2, 5)
	if sub.Len() != 3 {
		t.Fatalf("expected length 3, got %d", sub.Len())
	}
	got := sub.Slice()
	want := []int{2, 3, 4}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("index %d: got %d, want %d", i, got[i], v)
		}
	}
}

func TestRegionSwap(t *testing.T) {
	data := []int{1, 2, 3}
	r := NewRegion(data)
	r.Swap(0, 2)
	if data[0] != 3 || data[2] != 1 {
		t.Fatalf("swap failed: %v", data)
	}
}

func TestScratchRegionIsWindowedByRelativeIndices(t *testing.T) {
	s := NewScratch[int](10)
	if s.Len() != 10 {
		t.Fatalf("expected length 10, got %d", s.Len())
	}
	r := s.Region(2, 5)
	r.Put(2, 42)
	if s.buf[2] != 42 {
		t.Fatalf("expected underlying buffer to be mutated, got %v", s.buf)
	}
}
