// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs are the base directories the launcher reads and writes.
type Dirs struct {
	Home       string
	ConfigHome string
	DataHome   string
	StateHome  string
	RuntimeDir string
}

// ResolveDirs applies the XDG base directory rules to the variables
// returned by getenv. Relative overrides are ignored.
func ResolveDirs(getenv func(string) string) Dirs {
	home, _ := os.UserHomeDir()

	base := func(key string, fallback ...string) string {
		if dir := getenv(key); filepath.IsAbs(dir) {
			return dir
		}

		if home == "" {
			return ""
		}

		return filepath.Join(append([]string{home}, fallback...)...)
	}

	runtimeDir := getenv("XDG_RUNTIME_DIR")
	if !filepath.IsAbs(runtimeDir) {
		runtimeDir = os.TempDir()
	}

	return Dirs{
		Home:       home,
		ConfigHome: base("XDG_CONFIG_HOME", ".config"),
		DataHome:   base("XDG_DATA_HOME", ".local", "share"),
		StateHome:  base("XDG_STATE_HOME", ".local", "state"),
		RuntimeDir: runtimeDir,
	}
}

// CurrentDirs resolves Dirs from the process environment.
func CurrentDirs() Dirs {
	return ResolveDirs(os.Getenv)
}

// ConfigFile is where preferences are stored.
func (d Dirs) ConfigFile() string {
	return filepath.Join(d.ConfigHome, AppName, "config.toml")
}

// LogFile is the rotating log file.
func (d Dirs) LogFile() string {
	return filepath.Join(d.StateHome, AppName, AppName+".log")
}

// LockFile guards against a second interactive launcher.
func (d Dirs) LockFile() string {
	return filepath.Join(d.RuntimeDir, AppName+".lock")
}

// Expand resolves a leading ~ and then environment variables. The XDG
// home variables expand to their resolved values even when unset.
func (d Dirs) Expand(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || rest[0] == '/') && d.Home != "" {
		path = d.Home + rest
	}

	return os.Expand(path, func(key string) string {
		switch key {
		case "XDG_CONFIG_HOME":
			return d.ConfigHome
		case "XDG_DATA_HOME":
			return d.DataHome
		case "XDG_STATE_HOME":
			return d.StateHome
		case "HOME":
			return d.Home
		}

		return os.Getenv(key)
	})
}

// ConfigFile returns the preferences path for the current environment.
func ConfigFile() string { return CurrentDirs().ConfigFile() }

// LogFile returns the log path for the current environment.
func LogFile() string { return CurrentDirs().LogFile() }

// LockFile returns the lock path for the current environment.
func LockFile() string { return CurrentDirs().LockFile() }

// ExpandPath expands path against the current environment.
func ExpandPath(path string) string { return CurrentDirs().Expand(path) }
