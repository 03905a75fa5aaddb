// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package platform_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/canaveral-launcher/canaveral/internal/adapters/platform"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/testutil"
)

var (
	darwin = platform.SystemInfo{OS: "darwin"}
	linux  = platform.SystemInfo{OS: "linux", Desktops: []string{"GNOME"}}
)

func desktopEntry(name string) domain.CatalogEntry {
	return domain.CatalogEntry{
		Identity:     name + ".desktop",
		DisplayName:  name,
		LaunchTarget: "/usr/share/applications/" + name + ".desktop",
		Kind:         domain.KindDesktopEntry,
	}
}

func TestAppLauncher_LaunchBundle(t *testing.T) {
	t.Parallel()

	entry := testutil.Entries("Mail")[0]

	runner := &testutil.MockCommandRunner{}
	runner.On("Start", mock.Anything, "open", []string{entry.LaunchTarget}).Return(nil)

	launcher := platform.NewAppLauncher(runner, &testutil.MockMetadataReader{}, darwin, "")
	require.NoError(t, launcher.Launch(context.Background(), entry))

	runner.AssertExpectations(t)
}

func TestAppLauncher_LaunchBundleErrors(t *testing.T) {
	t.Parallel()

	entry := testutil.Entries("Mail")[0]

	launcher := platform.NewAppLauncher(&testutil.MockCommandRunner{}, &testutil.MockMetadataReader{}, linux, "")
	require.ErrorIs(t, launcher.Launch(context.Background(), entry), domain.ErrNoLaunchCommand)

	runner := &testutil.MockCommandRunner{}
	runner.On("Start", mock.Anything, "open", mock.Anything).Return(errors.New("fork failed"))

	launcher = platform.NewAppLauncher(runner, &testutil.MockMetadataReader{}, darwin, "")
	err := launcher.Launch(context.Background(), entry)
	require.ErrorIs(t, err, domain.ErrLaunchFailed)
	assert.Contains(t, err.Error(), "fork failed")
}

func TestAppLauncher_LaunchDesktopEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meta     *domain.BundleMetadata
		exists   bool
		terminal string
		wantCmd  string
		wantArgs []string
		wantErr  error
	}{
		{
			name:     "plain exec",
			meta:     &domain.BundleMetadata{Exec: "gedit --new-window %U"},
			wantCmd:  "gedit",
			wantArgs: []string{"--new-window"},
		},
		{
			name:     "terminal entry",
			meta:     &domain.BundleMetadata{Exec: "htop", Terminal: true},
			exists:   true,
			terminal: "kitty --single-instance",
			wantCmd:  "kitty",
			wantArgs: []string{"--single-instance", "-e", "htop"},
		},
		{
			name:    "missing terminal",
			meta:    &domain.BundleMetadata{Exec: "htop", Terminal: true},
			wantErr: domain.ErrNoTerminal,
		},
		{
			name:    "empty exec",
			meta:    &domain.BundleMetadata{Exec: "%U"},
			wantErr: domain.ErrNoLaunchCommand,
		},
		{
			name:    "unbalanced quotes",
			meta:    &domain.BundleMetadata{Exec: `app "unterminated`},
			wantErr: domain.ErrLaunchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := desktopEntry("editor")

			reader := &testutil.MockMetadataReader{}
			reader.On("ReadMetadata", entry.LaunchTarget).Return(tt.meta, nil)

			runner := &testutil.MockCommandRunner{}
			runner.On("CommandExists", mock.Anything).Return(tt.exists)
			runner.On("Start", mock.Anything, tt.wantCmd, tt.wantArgs).Return(nil)

			err := platform.NewAppLauncher(runner, reader, linux, tt.terminal).Launch(context.Background(), entry)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				runner.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			runner.AssertCalled(t, "Start", mock.Anything, tt.wantCmd, tt.wantArgs)
		})
	}
}

func TestAppLauncher_UnreadableDesktopEntry(t *testing.T) {
	t.Parallel()

	entry := desktopEntry("gone")

	reader := &testutil.MockMetadataReader{}
	reader.On("ReadMetadata", entry.LaunchTarget).Return(nil, domain.ErrMetadataUnreadable)

	err := platform.NewAppLauncher(&testutil.MockCommandRunner{}, reader, linux, "").Launch(context.Background(), entry)

	require.ErrorIs(t, err, domain.ErrLaunchFailed)
	require.ErrorIs(t, err, domain.ErrMetadataUnreadable)
}

func TestExpandExec(t *testing.T) {
	t.Parallel()

	fields := platform.ExecContext{Name: "Text Editor", Icon: "editor", Location: "/apps/editor.desktop"}

	tests := []struct {
		name string
		exec string
		want []string
	}{
		{"file codes dropped", "editor %f %F %u %U", []string{"editor"}},
		{"icon expands to flag", "editor %i", []string{"editor", "--icon", "editor"}},
		{"caption and location", `editor --title=%c --desktop-file %k`, []string{"editor", "--title=Text Editor", "--desktop-file", "/apps/editor.desktop"}},
		{"escaped percent", "printf 100%%", []string{"printf", "100%"}},
		{"quoted arguments", `"/opt/My App/run" --flag 'a b'`, []string{"/opt/My App/run", "--flag", "a b"}},
		{"deprecated codes", "app %d %D %n %N %v %m", []string{"app"}},
		{"inline file code", "app --open=%u", []string{"app", "--open="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := platform.ExpandExec(tt.exec, fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	noIcon, err := platform.ExpandExec("app %i", platform.ExecContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"app"}, noIcon)
}
