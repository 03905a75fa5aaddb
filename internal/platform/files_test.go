// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaveral-launcher/canaveral/internal/platform"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	require.NoError(t, platform.WriteFileAtomic(path, []byte("first"), 0))
	require.NoError(t, platform.WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(dir, "nested", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	assert.True(t, platform.FileExists(path))
	assert.True(t, platform.IsDir(filepath.Dir(path)))
	assert.False(t, platform.IsDir(path))
}

func TestWriteFileAtomicEmptyPath(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, platform.WriteFileAtomic("  ", nil, 0), platform.ErrEmptyPath)
}
