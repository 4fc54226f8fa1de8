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
	"sync/atomic"
	"testing"
)

func TestCompleterRunsOnlyAfterAllChildrenDone(t *testing.T) {
	var ran atomic.Int32
	c := newCompleter(3, func() { ran.Add(1) })

	c.done()
	if ran.Load() != 0 {
		t.Fatalf("onComplete ran too early")
	}
	c.done()
	if ran.Load() != 0 {
		t.Fatalf("onComplete ran too early")
	}
	c.done()
	if ran.Load() != 1 {
		t.Fatalf("expected onComplete to run exactly once, ran %d times", ran.Load())
	}
}

func TestCompleterWithSingleChildRunsOnce(t *testing.T) {
	var ran atomic.Int32
	c := newCompleter(1, func() { ran.Add(1) })
	c.done()
	if ran.Load() != 1 {
		t.Fatalf("expected onComplete to run once")
	}
}
