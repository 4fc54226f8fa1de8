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

package tuning

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch wraps an fsnotify watcher on the directory containing path. On every write or
// create event targeting path it re-parses the file with Load and, if that succeeds,
// invokes onChange with the new table. A failed reload is dropped silently (the last
// good table keeps being used) rather than surfaced through onChange, since a half
// edited file is a transient, expected state for a config watched live. Closing the
// returned io.Closer stops the watch; it never blocks a caller's in-flight sort,
// because onChange only ever affects Tunables captured by future calls.
func Watch(path string, onChange func(Tunables)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("tuning: watch %s: %w", dir, err)
	}

	w := &Watcher{fs: watcher, done: make(chan struct{})}
	go w.loop(path, onChange)
	return w, nil
}

// Watcher is the io.Closer returned by Watch.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

func (w *Watcher) loop(path string, onChange func(Tunables)) {
	target := filepath.Clean(path)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !(event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create) {
				continue
			}
			t, err := Load(path)
			if err != nil {
				continue
			}
			onChange(t)
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watch and releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
