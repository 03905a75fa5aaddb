// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaveral-launcher/canaveral/internal/config"
)

func TestPrefsValuesRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Discovery.ExtraRoots = []string{"/opt/apps", "/srv/apps"}

	got, err := NewPrefsValues(cfg).Apply(cfg)

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPrefsValuesApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edit    func(*PrefsValues)
		check   func(t *testing.T, cfg config.Config)
		wantErr bool
	}{
		{
			name: "appearance",
			edit: func(v *PrefsValues) {
				v.IconSize = " 24 "
				v.CellHeight = "5"
				v.ShowPageIndicator = false
			},
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, 24, cfg.Appearance.IconSize)
				assert.Equal(t, 5, cfg.Appearance.CellHeight)
				assert.False(t, cfg.Appearance.ShowPageIndicator)
			},
		},
		{
			name: "lists drop blank lines",
			edit: func(v *PrefsValues) {
				v.ExtraRoots = "/opt/apps\n\n  /srv/apps  \n"
				v.Exclude = ""
			},
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, []string{"/opt/apps", "/srv/apps"}, cfg.Discovery.ExtraRoots)
				assert.Empty(t, cfg.Discovery.Exclude)
			},
		},
		{
			name: "launch",
			edit: func(v *PrefsValues) {
				v.Grace = "250ms"
				v.Terminal = "kitty"
				v.ExitAfterLaunch = false
				v.LogLevel = "debug"
			},
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, 250*time.Millisecond, cfg.Launch.Grace.Duration)
				assert.Equal(t, "kitty", cfg.Launch.Terminal)
				assert.False(t, cfg.Launch.ExitAfterLaunch)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name:    "icon size not a number",
			edit:    func(v *PrefsValues) { v.IconSize = "big" },
			wantErr: true,
		},
		{
			name:    "icon size out of range",
			edit:    func(v *PrefsValues) { v.IconSize = "200" },
			wantErr: true,
		},
		{
			name:    "bad grace",
			edit:    func(v *PrefsValues) { v.Grace = "soon" },
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			base := config.Default()
			values := NewPrefsValues(base)
			testCase.edit(&values)

			got, err := values.Apply(base)
			if testCase.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
				assert.Equal(t, base, got)

				return
			}

			require.NoError(t, err)
			testCase.check(t, got)
		})
	}
}

func TestFormValidators(t *testing.T) {
	t.Parallel()

	between := intBetween(8, 40)

	assert.NoError(t, between("8"))
	assert.NoError(t, between(" 40 "))
	assert.Error(t, between("7"))
	assert.Error(t, between("x"))

	assert.NoError(t, validDuration("100ms"))
	assert.Error(t, validDuration("-1s"))
	assert.Error(t, validDuration("later"))
}

func TestNewPrefsForm(t *testing.T) {
	t.Parallel()

	values := NewPrefsValues(config.Default())

	assert.NotNil(t, newPrefsForm(&values))
}

func TestPrefsCommandSaves(t *testing.T) {
	h := newHarness(t)
	h.edit = func(_ context.Context, values *PrefsValues) error {
		values.IconSize = "30"
		values.Terminal = "foot"

		return nil
	}

	require.NoError(t, h.run("prefs"))

	saved, err := config.Load(h.configPath)
	require.NoError(t, err)
	assert.Equal(t, 30, saved.Appearance.IconSize)
	assert.Equal(t, "foot", saved.Launch.Terminal)
	assert.Contains(t, h.out.String(), "Preferences saved")
}

func TestPrefsCommandAborted(t *testing.T) {
	h := newHarness(t)
	h.edit = func(_ context.Context, _ *PrefsValues) error {
		return huh.ErrUserAborted
	}

	require.NoError(t, h.run("prefs"))

	_, err := os.Stat(h.configPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, h.out.String(), "Preferences unchanged")
}

func TestPrefsCommandRejectsInvalidValues(t *testing.T) {
	h := newHarness(t)
	h.edit = func(_ context.Context, values *PrefsValues) error {
		values.Grace = "whenever"

		return nil
	}

	requireExitCode(t, h.run("prefs"), ExitConfigError)

	_, err := os.Stat(h.configPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
