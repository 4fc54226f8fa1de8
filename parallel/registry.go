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
	"fmt"

	nlrm "github.com/launix-de/NonLockingReadMap"
)

// workerSlot is the registry entry for one pool worker: its id and its deque. Workers
// are registered once at pool startup and are not removed at shutdown, which is
// exactly the write pattern NonLockingReadMap is optimized for — every steal attempt
// by every idle worker reads the registry, but it is written only while the pool is
// being constructed.
type workerSlot struct {
	id string
	dq *deque
}

func (w workerSlot) GetKey() string { return w.id }

func workerID(index int) string {
	return fmt.Sprintf("worker-%d", index)
}
