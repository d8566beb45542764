// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch opens the scene in the given file and calls fn with it, and then
// again every time the file changes, until ctx is done. A change that
// does not load is logged and skipped, so that the last good scene stays
// current. Watch returns an error only when the first load or setting up
// the watcher fails.
func Watch(ctx context.Context, filename string, fn func(s *Scene)) error {
	s, err := Open(filename)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often save by replacing the file, which ends a watch
	// on the file itself, so the directory is watched instead.
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	fn(s)

	name := filepath.Base(filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			ns, err := Open(filename)
			if err != nil {
				slog.Error("scene: keeping previous scene after failed reload", "file", filename, "err", err)
				continue
			}
			slog.Info("scene: reloaded", "file", filename)
			fn(ns)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("scene: watcher error", "file", filename, "err", err)
		}
	}
}
