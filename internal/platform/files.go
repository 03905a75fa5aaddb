// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates directory with parents if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755) //nolint:gosec
}

// FileExists checks if file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// IsDir checks if path is a directory.
func IsDir(path string) bool {
	if stat, err := os.Stat(path); err == nil {
		return stat.IsDir()
	}

	return false
}

// WriteFileAtomic replaces path with data through a temporary file and a
// rename, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}

	if perm == 0 {
		perm = 0o600
	}

	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	name := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(name)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	committed = true

	return nil
}
