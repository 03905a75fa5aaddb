// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"context"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Bundle markers.
const (
	AppBundleExt    = ".app"
	DesktopEntryExt = ".desktop"
)

// Candidate is a filesystem item that looks like an application. Path is
// symlink resolved.
type Candidate struct {
	Path string
	Root Root
}

// Enumerator walks roots and yields candidates without descending into
// bundles, hidden items, or package contents.
type Enumerator struct {
	roots  []Root
	logger *slog.Logger
}

// NewEnumerator creates an enumerator over roots in order.
func NewEnumerator(roots []Root, logger *slog.Logger) *Enumerator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Enumerator{roots: roots, logger: logger}
}

// Roots returns the roots scanned, in order.
func (e *Enumerator) Roots() []Root {
	return append([]Root(nil), e.roots...)
}

// Candidates returns a lazy sequence over every candidate under every root.
// Unreadable roots and entries are skipped. Iteration stops early when the
// consumer stops or ctx is cancelled.
func (e *Enumerator) Candidates(ctx context.Context) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, root := range e.roots {
			if ctx.Err() != nil {
				return
			}

			if !e.walkRoot(ctx, root, yield) {
				return
			}
		}
	}
}

// walkRoot reports false when iteration must stop.
func (e *Enumerator) walkRoot(ctx context.Context, root Root, yield func(Candidate) bool) bool {
	start, err := filepath.EvalSymlinks(root.Path)
	if err != nil {
		e.logger.Debug("skipping root", "root", root.Path, "error", err)

		return true
	}

	stopped := false

	_ = filepath.WalkDir(start, func(path string, entry fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			stopped = true

			return filepath.SkipAll
		}

		if walkErr != nil {
			e.logger.Debug("skipping unreadable entry", "path", path, "error", walkErr)

			return nil
		}

		if path == start {
			return nil
		}

		if isHidden(entry.Name()) {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		target := path

		if entry.Type()&fs.ModeSymlink != 0 {
			resolved, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil
			}

			target = resolved
		}

		if !IsBundle(target) {
			return nil
		}

		if !yield(Candidate{Path: target, Root: root}) {
			stopped = true

			return filepath.SkipAll
		}

		if entry.IsDir() {
			return filepath.SkipDir
		}

		return nil
	})

	return !stopped
}

// IsBundle reports whether path is an application bundle directory or a
// desktop entry file.
func IsBundle(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if !info.IsDir() {
		return info.Mode().IsRegular() && strings.EqualFold(filepath.Ext(path), DesktopEntryExt)
	}

	if strings.EqualFold(filepath.Ext(path), AppBundleExt) {
		return true
	}

	// Packaged directories without the extension still carry an Info.plist.
	_, err = os.Stat(filepath.Join(path, "Contents", "Info.plist"))

	return err == nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
