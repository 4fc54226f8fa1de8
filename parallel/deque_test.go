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

import "testing"

func TestDequeBottomIsLIFO(t *testing.T) {
	d := newDeque()
	var order []int
	d.pushBottom(func() { order = append(order, 1) })
	d.pushBottom(func() { order = append(order, 2) })
	d.pushBottom(func() { order = append(order, 3) })

	fn, ok := d.popBottom()
	if !ok {
		t.Fatalf("expected an item")
	}
	fn()
	if len(order) != 1 || order[0] != 3 {
		t.Fatalf("expected LIFO pop to run the most recently pushed item first, got %v", order)
	}
}

func TestDequeTopIsFIFO(t *testing.T) {
	d := newDeque()
	var order []int
	d.pushBottom(func() { order = append(order, 1) })
	d.pushBottom(func() { order = append(order, 2) })
	d.pushBottom(func() { order = append(order, 3) })

	fn, ok := d.popTop()
	if !ok {
		t.Fatalf("expected an item")
	}
	fn()
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("expected FIFO pop to run the oldest pushed item first, got %v", order)
	}
}

func TestDequeEmpty(t *testing.T) {
	d := newDeque()
	if !d.empty() {
		t.Fatalf("expected a fresh deque to be empty")
	}
	d.pushBottom(func() {})
	if d.empty() {
		t.Fatalf("expected deque to be non-empty after a push")
	}
	if _, ok := d.popBottom(); !ok {
		t.Fatalf("expected popBottom to find the pushed item")
	}
	if !d.empty() {
		t.Fatalf("expected deque to be empty again after pop")
	}
}

func TestDequePopFromEmptyReportsFalse(t *testing.T) {
	d := newDeque()
	if _, ok := d.popBottom(); ok {
		t.Fatalf("expected popBottom on empty deque to report false")
	}
	if _, ok := d.popTop(); ok {
		t.Fatalf("expected popTop on empty deque to report false")
	}
}
