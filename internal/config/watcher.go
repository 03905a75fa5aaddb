// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/canaveral-launcher/canaveral/internal/platform"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to the preferences file. It watches the parent
// directory so atomic saves that rename a new file into place are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	fs       *fsnotify.Watcher
}

// NewWatcher starts watching the directory of path, creating it if needed.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err := platform.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()

		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{path: path, debounce: debounce, logger: logger, fs: fsWatcher}, nil
}

// Run calls onChange once per burst of changes to the preferences file,
// until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("preferences file event", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			timerC = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}

			w.logger.Warn("preferences watcher error", "error", err)

		case <-timerC:
			timerC = nil

			w.logger.Info("preferences changed", "path", w.path)
			onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
