// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of shader files.
// Events are collected by fsnotify in the background and only
// consumed by [Watcher.Changed], so that the caller decides on
// which thread to react to them.
type Watcher struct {
	watcher *fsnotify.Watcher

	// files are the absolute paths being watched
	files map[string]bool
}

// NewWatcher returns a new Watcher for the given files. The directories
// containing the files are watched, rather than the files themselves,
// so that editors that save by renaming a new file into place are seen.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{watcher: fw, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaders: watching %q: %w", dir, err)
		}
	}
	return w, nil
}

// Changed drains all pending file events without blocking and returns
// true if any watched file was written, created or renamed since the
// last call.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return changed
			}
			if w.relevant(ev) {
				logx.PrintlnDebug("shader file changed:", ev)
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return changed
			}
			errors.Log(err)
		default:
			return changed
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	abs, err := filepath.Abs(ev.Name)
	if err != nil || !w.files[abs] {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
