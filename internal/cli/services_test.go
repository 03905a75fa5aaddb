// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformAdapter "github.com/canaveral-launcher/canaveral/internal/adapters/platform"
	"github.com/canaveral-launcher/canaveral/internal/application"
	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/discovery"
	"github.com/canaveral-launcher/canaveral/internal/testutil"
)

func writeEntry(t *testing.T, dir, file, name string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))

	body := "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=" + file + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, file+".desktop"), []byte(body), 0o600))
}

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	dataHome := t.TempDir()
	dataDir := t.TempDir()
	extra := t.TempDir()

	writeEntry(t, filepath.Join(dataHome, "applications"), "editor", "Text Editor")
	writeEntry(t, filepath.Join(dataHome, "applications"), "canaveral", SelfName)
	writeEntry(t, filepath.Join(dataDir, "applications"), "files", "Files")
	writeEntry(t, extra, "atlas", "Atlas")

	cfg := config.Default()
	cfg.Discovery.ExtraRoots = []string{extra}

	builder, roots, err := newBuilder(cfg, platformAdapter.SystemInfo{OS: "linux"}, discovery.RootOptions{
		GOOS:        "linux",
		XDGDataHome: dataHome,
		XDGDataDirs: dataDir,
		Exists:      func(string) bool { return false },
	}, nil)
	require.NoError(t, err)

	require.Len(t, roots, 3)
	assert.Equal(t, extra, roots[2].Path)

	catalog := builder.Build(context.Background())

	names := make([]string, 0, catalog.Len())
	for _, entry := range catalog.Entries() {
		names = append(names, entry.DisplayName)
	}

	assert.Equal(t, []string{"Atlas", "Files", "Text Editor"}, names)
}

func TestNewBuilderRejectsBadExcludePattern(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Discovery.Exclude = []string{"[unclosed"}

	_, _, err := newBuilder(cfg, platformAdapter.SystemInfo{OS: "linux"}, discovery.RootOptions{GOOS: "linux"}, nil)

	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestServicesReloader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	services := &Services{
		System:  platformAdapter.SystemInfo{OS: "linux"},
		Catalog: application.NewCatalogService(&testutil.MockCatalogBuilder{}, nil),
	}
	reload := services.Reloader(path)

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\nicon_size = 30\n"), 0o600))

	cfg, err := reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Appearance.IconSize)

	require.NoError(t, os.WriteFile(path, []byte("[appearance\n"), 0o600))

	_, err = reload(context.Background())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
