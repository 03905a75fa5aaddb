// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads, saves and watches the launcher preferences file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/canaveral-launcher/canaveral/internal/discovery"
	"github.com/canaveral-launcher/canaveral/internal/platform"
)

// EnvConfigPath overrides the preferences file location.
const EnvConfigPath = "CANAVERAL_CONFIG"

// Icon size bounds, in terminal columns.
const (
	MinIconSize     = 8
	MaxIconSize     = 40
	DefaultIconSize = 18
)

// ErrInvalidConfig indicates the preferences file could not be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the preferences file.
type Config struct {
	Appearance Appearance `toml:"appearance"`
	Discovery  Discovery  `toml:"discovery"`
	Launch     Launch     `toml:"launch"`
	Log        Log        `toml:"log"`
}

// Appearance controls the grid geometry.
type Appearance struct {
	IconSize          int  `toml:"icon_size"`
	CellHeight        int  `toml:"cell_height"`
	ShowPageIndicator bool `toml:"show_page_indicator"`
}

// Discovery controls where and how applications are found.
type Discovery struct {
	ExtraRoots        []string `toml:"extra_roots"`
	Exclude           []string `toml:"exclude"`
	CoreServicesAllow []string `toml:"core_services_allow"`
	Locale            string   `toml:"locale,omitempty"`
}

// Launch controls what happens when an application is started.
type Launch struct {
	Grace           Duration `toml:"grace"`
	Terminal        string   `toml:"terminal"`
	ExitAfterLaunch bool     `toml:"exit_after_launch"`
}

// Log controls the log sink.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}

	d.Duration = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Appearance: Appearance{
			IconSize:          DefaultIconSize,
			CellHeight:        4,
			ShowPageIndicator: true,
		},
		Discovery: Discovery{
			Exclude:           append([]string(nil), discovery.DefaultExcludePatterns...),
			CoreServicesAllow: append([]string(nil), discovery.DefaultCoreServicesAllowList...),
		},
		Launch: Launch{
			Grace:           Duration{100 * time.Millisecond},
			Terminal:        "x-terminal-emulator",
			ExitAfterLaunch: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// ResolvePath picks the preferences file: the explicit path, then
// CANAVERAL_CONFIG, then the XDG default.
func ResolvePath(explicit string) string {
	return ResolvePathWithEnv(explicit, os.Getenv(EnvConfigPath))
}

// ResolvePathWithEnv is ResolvePath with the environment value supplied.
func ResolvePathWithEnv(explicit, env string) string {
	switch {
	case strings.TrimSpace(explicit) != "":
		return platform.ExpandPath(strings.TrimSpace(explicit))
	case strings.TrimSpace(env) != "":
		return platform.ExpandPath(strings.TrimSpace(env))
	default:
		return platform.ConfigFile()
	}
}

// Load reads the preferences at path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()

			return Default(), fmt.Errorf("%w: %s:%d:%d: %w", ErrInvalidConfig, path, row, col, err)
		}

		return Default(), fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg.Normalize(), nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg.Normalize())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := platform.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return nil
}

// Normalize clamps values into their valid ranges and expands paths.
func (c Config) Normalize() Config {
	c.Appearance.IconSize = min(max(c.Appearance.IconSize, MinIconSize), MaxIconSize)
	c.Appearance.CellHeight = max(c.Appearance.CellHeight, 3)

	if c.Launch.Grace.Duration < 0 {
		c.Launch.Grace.Duration = 0
	}

	roots := make([]string, 0, len(c.Discovery.ExtraRoots))

	for _, root := range c.Discovery.ExtraRoots {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, platform.ExpandPath(root))
		}
	}

	c.Discovery.ExtraRoots = roots

	if c.Log.File != "" {
		c.Log.File = platform.ExpandPath(c.Log.File)
	}

	return c
}

// Validate reports values that Normalize would have to change.
func (c Config) Validate() error {
	var errs []error

	if c.Appearance.IconSize < MinIconSize || c.Appearance.IconSize > MaxIconSize {
		errs = append(errs, fmt.Errorf("icon_size must be between %d and %d, got %d", MinIconSize, MaxIconSize, c.Appearance.IconSize))
	}

	if c.Launch.Grace.Duration < 0 {
		errs = append(errs, fmt.Errorf("grace must not be negative, got %s", c.Launch.Grace))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
