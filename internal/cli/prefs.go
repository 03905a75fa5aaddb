// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
)

// PrefsEditor lets the user change values in place. Returning
// huh.ErrUserAborted leaves the preferences file untouched.
type PrefsEditor func(ctx context.Context, values *PrefsValues) error

// PrefsValues is the editable, string typed view of a Config.
type PrefsValues struct {
	IconSize          string
	CellHeight        string
	ShowPageIndicator bool
	ExtraRoots        string
	Exclude           string
	Locale            string
	Grace             string
	Terminal          string
	ExitAfterLaunch   bool
	LogLevel          string
}

// NewPrefsValues fills the form values from cfg.
func NewPrefsValues(cfg config.Config) PrefsValues {
	return PrefsValues{
		IconSize:          strconv.Itoa(cfg.Appearance.IconSize),
		CellHeight:        strconv.Itoa(cfg.Appearance.CellHeight),
		ShowPageIndicator: cfg.Appearance.ShowPageIndicator,
		ExtraRoots:        strings.Join(cfg.Discovery.ExtraRoots, "\n"),
		Exclude:           strings.Join(cfg.Discovery.Exclude, "\n"),
		Locale:            cfg.Discovery.Locale,
		Grace:             cfg.Launch.Grace.String(),
		Terminal:          cfg.Launch.Terminal,
		ExitAfterLaunch:   cfg.Launch.ExitAfterLaunch,
		LogLevel:          cfg.Log.Level,
	}
}

// Apply returns base with the form values written over it.
func (v PrefsValues) Apply(base config.Config) (config.Config, error) {
	cfg := base

	iconSize, err := strconv.Atoi(strings.TrimSpace(v.IconSize))
	if err != nil {
		return base, fmt.Errorf("%w: icon size %q is not a number", config.ErrInvalidConfig, v.IconSize)
	}

	cellHeight, err := strconv.Atoi(strings.TrimSpace(v.CellHeight))
	if err != nil {
		return base, fmt.Errorf("%w: cell height %q is not a number", config.ErrInvalidConfig, v.CellHeight)
	}

	grace, err := time.ParseDuration(strings.TrimSpace(v.Grace))
	if err != nil {
		return base, fmt.Errorf("%w: grace %q is not a duration", config.ErrInvalidConfig, v.Grace)
	}

	cfg.Appearance.IconSize = iconSize
	cfg.Appearance.CellHeight = cellHeight
	cfg.Appearance.ShowPageIndicator = v.ShowPageIndicator
	cfg.Discovery.ExtraRoots = splitLines(v.ExtraRoots)
	cfg.Discovery.Exclude = splitLines(v.Exclude)
	cfg.Discovery.Locale = strings.TrimSpace(v.Locale)
	cfg.Launch.Grace = config.Duration{Duration: grace}
	cfg.Launch.Terminal = strings.TrimSpace(v.Terminal)
	cfg.Launch.ExitAfterLaunch = v.ExitAfterLaunch
	cfg.Log.Level = v.LogLevel

	if err := cfg.Validate(); err != nil {
		return base, err
	}

	return cfg, nil
}

func splitLines(text string) []string {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func (app *CLI) createPrefsCommand() *cli.Command {
	return &cli.Command{
		Name:  "prefs",
		Usage: "Edit preferences",
		Description: `Opens a form for the preferences file. A running launcher picks up the
saved changes without a restart.`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.runPrefs(ctx)
		},
	}
}

func (app *CLI) runPrefs(ctx context.Context) error {
	values := NewPrefsValues(app.cfg)

	if err := app.editPrefs(ctx, &values); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			_ = app.output().Info("Preferences unchanged")

			return nil
		}

		return domain.NewExitError(ExitGeneralError, "Failed to show preferences form", err)
	}

	cfg, err := values.Apply(app.cfg)
	if err != nil {
		return domain.NewExitError(ExitConfigError, "Preferences not saved", err)
	}

	if err := config.Save(app.cfgPath, cfg); err != nil {
		return domain.NewExitError(ExitSystemError, "Preferences not saved", err)
	}

	app.cfg = cfg.Normalize()

	_ = app.output().Success("Preferences saved to "+app.cfgPath, map[string]string{"path": app.cfgPath})

	return nil
}

func runPrefsForm(ctx context.Context, values *PrefsValues) error {
	return newPrefsForm(values).RunWithContext(ctx)
}

func newPrefsForm(values *PrefsValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Icon size").
				Description(fmt.Sprintf("Cell width in columns (%d to %d)", config.MinIconSize, config.MaxIconSize)).
				Value(&values.IconSize).
				Validate(intBetween(config.MinIconSize, config.MaxIconSize)),
			huh.NewInput().
				Title("Cell height").
				Description("Rows per grid cell").
				Value(&values.CellHeight).
				Validate(intBetween(3, 12)),
			huh.NewConfirm().
				Title("Show page indicator").
				Value(&values.ShowPageIndicator),
		).Title("Appearance"),
		huh.NewGroup(
			huh.NewText().
				Title("Extra roots").
				Description("One directory per line, searched after the defaults").
				Value(&values.ExtraRoots),
			huh.NewText().
				Title("Exclude").
				Description("One glob per line, matched against bundle paths").
				Value(&values.Exclude),
			huh.NewInput().
				Title("Locale").
				Description("Sort order language, empty for the environment").
				Value(&values.Locale),
		).Title("Discovery"),
		huh.NewGroup(
			huh.NewInput().
				Title("Grace delay").
				Description("Wait before exiting after a launch, e.g. 100ms").
				Value(&values.Grace).
				Validate(validDuration),
			huh.NewInput().
				Title("Terminal").
				Description("Runs applications that need a terminal").
				Value(&values.Terminal),
			huh.NewConfirm().
				Title("Exit after launch").
				Value(&values.ExitAfterLaunch),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&values.LogLevel),
		).Title("Launch"),
	).WithTheme(huh.ThemeCharm())
}

func intBetween(lo, hi int) func(string) error {
	return func(value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < lo || n > hi {
			return fmt.Errorf("%w: enter a number from %d to %d", ErrInvalidArgument, lo, hi)
		}

		return nil
	}
}

func validDuration(value string) error {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d < 0 {
		return fmt.Errorf("%w: enter a duration such as 100ms", ErrInvalidArgument)
	}

	return nil
}
