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

// The compile-time defaults for every tunable named in the external interface. These
// are the values used when a caller doesn't supply an overriding Tunables (see package
// tuning for the override-file/hot-reload layer built on top of this table).
const (
	InsertionThreshold      = 32
	MixedInsertionThreshold = 48
	TryMergeRunsThreshold   = 4096
	MinFirstRunLength       = 24
	MaxRunCapacity          = 1024
	MinFirstRunsFactor      = 7
	MinParallelSortSize     = 4096
	MinParallelMergeSize    = 2048
	MinCountingSortSizeByte = 64
	MinCountingSortSizeWord = 1750
	MaxRecursionDepth       = 64
	DepthStep               = 3
	SplitUnit               = 4096
)

// Tunables collects every knob named in the external interface into one value,
// mirrored from storage.SettingsT: a sort call captures one Tunables at the top and
// threads it down unchanged, exactly like the comparator, so a concurrent knob reload
// (package tuning) can never change the behaviour of a sort already in flight.
type Tunables struct {
	InsertionThreshold      int
	MixedInsertionThreshold int
	TryMergeRunsThreshold   int
	MinFirstRunLength       int
	MaxRunCapacity          int
	MinFirstRunsFactor      int
	MinParallelSortSize     int
	MinParallelMergeSize    int
	MinCountingSortSizeByte int
	MinCountingSortSizeWord int
	MaxRecursionDepth       int
	DepthStep               int
	SplitUnit               int
}

// DefaultTunables returns the compiled-in defaults as a Tunables value.
func DefaultTunables() Tunables {
	return Tunables{
		InsertionThreshold:      InsertionThreshold,
		MixedInsertionThreshold: MixedInsertionThreshold,
		TryMergeRunsThreshold:   TryMergeRunsThreshold,
		MinFirstRunLength:       MinFirstRunLength,
		MaxRunCapacity:          MaxRunCapacity,
		MinFirstRunsFactor:      MinFirstRunsFactor,
		MinParallelSortSize:     MinParallelSortSize,
		MinParallelMergeSize:    MinParallelMergeSize,
		MinCountingSortSizeByte: MinCountingSortSizeByte,
		MinCountingSortSizeWord: MinCountingSortSizeWord,
		MaxRecursionDepth:       MaxRecursionDepth,
		DepthStep:               DepthStep,
		SplitUnit:               SplitUnit,
	}
}
