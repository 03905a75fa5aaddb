// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package discovery finds installed applications and builds the catalog.
package discovery

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Well known darwin locations.
const (
	CoreServicesRoot = "/System/Library/CoreServices"
	CryptexAppsRoot  = "/System/Cryptexes/App/System/Applications"
)

// DefaultCoreServicesAllowList names the system utilities users expect to
// launch directly from the core services root.
var DefaultCoreServicesAllowList = []string{
	"Finder",
	"Screen Sharing",
	"Archive Utility",
	"Wireless Diagnostics",
	"Image Capture",
}

// Root is one directory tree scanned for applications.
type Root struct {
	Path string
	// AllowList restricts the root to the named applications when non-empty.
	AllowList []string
}

// RootOptions controls which roots DefaultRoots returns.
type RootOptions struct {
	GOOS              string
	Home              string
	XDGDataHome       string
	XDGDataDirs       string
	Extra             []string
	CoreServicesAllow []string
	// Exists reports whether an optional root is present. Defaults to os.Stat.
	Exists func(path string) bool
}

// RootOptionsFromEnv fills RootOptions from the running process.
func RootOptionsFromEnv() RootOptions {
	home, _ := os.UserHomeDir()

	return RootOptions{
		GOOS:        runtime.GOOS,
		Home:        home,
		XDGDataHome: os.Getenv("XDG_DATA_HOME"),
		XDGDataDirs: os.Getenv("XDG_DATA_DIRS"),
	}
}

// DefaultRoots returns the ordered roots for the host OS followed by the
// configured extra roots. Order matters: the first root to produce an
// identity wins deduplication.
func DefaultRoots(opts RootOptions) []Root {
	exists := opts.Exists
	if exists == nil {
		exists = pathExists
	}

	var roots []Root

	if opts.GOOS == "darwin" {
		roots = darwinRoots(opts, exists)
	} else {
		roots = xdgRoots(opts, exists)
	}

	for _, extra := range opts.Extra {
		if extra = strings.TrimSpace(extra); extra != "" {
			roots = appendUnique(roots, Root{Path: filepath.Clean(extra)})
		}
	}

	return roots
}

func darwinRoots(opts RootOptions, exists func(string) bool) []Root {
	allow := opts.CoreServicesAllow
	if len(allow) == 0 {
		allow = DefaultCoreServicesAllowList
	}

	roots := []Root{
		{Path: "/Applications"},
		{Path: "/System/Applications"},
	}

	if opts.Home != "" {
		roots = append(roots, Root{Path: filepath.Join(opts.Home, "Applications")})
	}

	roots = append(roots,
		Root{Path: "/Applications/Utilities"},
		Root{Path: "/System/Applications/Utilities"},
		Root{Path: CoreServicesRoot, AllowList: allow},
	)

	// Safari and a few others live here on recent macOS releases.
	if exists(CryptexAppsRoot) {
		roots = append(roots, Root{Path: CryptexAppsRoot})
	}

	return roots
}

func xdgRoots(opts RootOptions, exists func(string) bool) []Root {
	var roots []Root

	dataHome := opts.XDGDataHome
	if dataHome == "" && opts.Home != "" {
		dataHome = filepath.Join(opts.Home, ".local", "share")
	}

	if dataHome != "" {
		roots = appendUnique(roots, Root{Path: filepath.Join(dataHome, "applications")})
	}

	dataDirs := opts.XDGDataDirs
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	for _, dir := range filepath.SplitList(dataDirs) {
		if dir != "" {
			roots = appendUnique(roots, Root{Path: filepath.Join(dir, "applications")})
		}
	}

	optional := []string{"/var/lib/flatpak/exports/share/applications"}
	if opts.Home != "" {
		optional = append(optional, filepath.Join(opts.Home, ".local", "share", "flatpak", "exports", "share", "applications"))
	}

	for _, dir := range optional {
		if exists(dir) {
			roots = appendUnique(roots, Root{Path: dir})
		}
	}

	return roots
}

func appendUnique(roots []Root, root Root) []Root {
	for _, existing := range roots {
		if existing.Path == root.Path {
			return roots
		}
	}

	return append(roots, root)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
