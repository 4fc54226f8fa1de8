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

// Package tuning holds and, optionally, hot-reloads the sortcore/parallel knob table
// (§6 of the external interface) from an override file, so a knob can be changed
// without a recompile. A Tunables value is always captured once by the caller at the
// start of a sort and threaded through unchanged — a reload observed mid-sort never
// changes that sort's behaviour.
package tuning

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	packrat "github.com/launix-de/go-packrat/v2"

	"github.com/launix-de/duoqsort/sortcore"
)

// Tunables re-exports sortcore.Tunables so callers of this package never need to
// import sortcore directly just to hold a config value.
type Tunables = sortcore.Tunables

// Default returns the compiled-in knob defaults.
func Default() Tunables {
	return sortcore.DefaultTunables()
}

// lineParser recognises one override-file entry: IDENT '=' INTEGER. Built once and
// reused for every line of every Load call.
var lineParser = packrat.NewAndParser(
	packrat.NewRegexParser(`[A-Za-z_][A-Za-z0-9_]*`, false, true),
	packrat.NewAtomParser("=", false, true),
	packrat.NewRegexParser(`-?[0-9]+`, false, true),
	packrat.NewEndParser(true),
)

// knobSetters maps every §6 knob's override-file name to a function that writes a
// parsed int value into the right Tunables field, so Load can reject an unknown
// identifier as a fail-fast error instead of silently ignoring it.
var knobSetters = map[string]func(*Tunables, int){
	"InsertionThreshold":      func(t *Tunables, v int) { t.InsertionThreshold = v },
	"MixedInsertionThreshold": func(t *Tunables, v int) { t.MixedInsertionThreshold = v },
	"TryMergeRunsThreshold":   func(t *Tunables, v int) { t.TryMergeRunsThreshold = v },
	"MinFirstRunLength":       func(t *Tunables, v int) { t.MinFirstRunLength = v },
	"MaxRunCapacity":          func(t *Tunables, v int) { t.MaxRunCapacity = v },
	"MinFirstRunsFactor":      func(t *Tunables, v int) { t.MinFirstRunsFactor = v },
	"MinParallelSortSize":     func(t *Tunables, v int) { t.MinParallelSortSize = v },
	"MinParallelMergeSize":    func(t *Tunables, v int) { t.MinParallelMergeSize = v },
	"MinCountingSortSizeByte": func(t *Tunables, v int) { t.MinCountingSortSizeByte = v },
	"MinCountingSortSizeWord": func(t *Tunables, v int) { t.MinCountingSortSizeWord = v },
	"MaxRecursionDepth":       func(t *Tunables, v int) { t.MaxRecursionDepth = v },
	"DepthStep":               func(t *Tunables, v int) { t.DepthStep = v },
	"SplitUnit":               func(t *Tunables, v int) { t.SplitUnit = v },
}

// LoadError names the line and reason an override file failed to parse or validate.
type LoadError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("tuning: %s:%d: %s: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads path and overlays every named knob it declares onto Default(). Blank
// lines and lines starting with # (after leading whitespace) are skipped. An unknown
// identifier or an out-of-range value is a load-time error: the knob table is either
// fully valid or Load fails, never a partial overlay.
func Load(path string) (Tunables, error) {
	t := Default()

	f, err := os.Open(path)
	if err != nil {
		return Tunables{}, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		node, perr := packrat.Parse(lineParser, packrat.NewScanner(trimmed, packrat.SkipWhitespaceAndCommentsRegex))
		if perr != nil {
			return Tunables{}, &LoadError{Path: path, Line: lineNo, Text: trimmed, Err: perr}
		}
		name := node.Children[0].Matched
		value, verr := strconv.Atoi(node.Children[2].Matched)
		if verr != nil {
			return Tunables{}, &LoadError{Path: path, Line: lineNo, Text: trimmed, Err: verr}
		}

		setter, ok := knobSetters[name]
		if !ok {
			return Tunables{}, &LoadError{Path: path, Line: lineNo, Text: trimmed, Err: fmt.Errorf("unknown knob %q", name)}
		}
		if value <= 0 {
			return Tunables{}, &LoadError{Path: path, Line: lineNo, Text: trimmed, Err: fmt.Errorf("knob %q must be positive, got %d", name, value)}
		}
		setter(&t, value)
	}
	if err := scanner.Err(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}
