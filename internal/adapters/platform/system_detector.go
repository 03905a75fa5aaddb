// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"runtime"
	"strings"
)

// SystemInfo describes the host as far as discovery and launching care.
type SystemInfo struct {
	OS string
	// Desktops is the colon separated XDG_CURRENT_DESKTOP list, in order.
	Desktops []string
	Session  string
	// Locale is the POSIX locale used for collation and localized names.
	Locale string
}

// CurrentDesktop returns the desktop list in XDG_CURRENT_DESKTOP form.
func (s SystemInfo) CurrentDesktop() string {
	return strings.Join(s.Desktops, ":")
}

// IsDarwin reports whether the host is macOS.
func (s SystemInfo) IsDarwin() bool {
	return s.OS == "darwin"
}

// SystemDetector detects host properties from the environment.
type SystemDetector struct {
	getenv func(string) string
	goos   string
}

// NewSystemDetector creates a detector for the running process.
func NewSystemDetector() *SystemDetector {
	return &SystemDetector{getenv: os.Getenv, goos: runtime.GOOS}
}

// NewSystemDetectorWith creates a detector over a custom environment, for tests.
func NewSystemDetectorWith(goos string, getenv func(string) string) *SystemDetector {
	return &SystemDetector{getenv: getenv, goos: goos}
}

// DetectSystem returns the host information.
func (d *SystemDetector) DetectSystem() SystemInfo {
	return SystemInfo{
		OS:       d.goos,
		Desktops: d.DetectDesktops(),
		Session:  d.detectSession(),
		Locale:   d.detectLocale(),
	}
}

// DetectDesktops returns the current desktop names. DESKTOP_SESSION is the
// fallback when XDG_CURRENT_DESKTOP is unset.
func (d *SystemDetector) DetectDesktops() []string {
	raw := d.getenv("XDG_CURRENT_DESKTOP")
	if raw == "" {
		raw = d.getenv("DESKTOP_SESSION")
	}

	var desktops []string

	for _, name := range strings.Split(raw, ":") {
		if name = strings.TrimSpace(name); name != "" {
			desktops = append(desktops, name)
		}
	}

	return desktops
}

func (d *SystemDetector) detectSession() string {
	if session := d.getenv("XDG_SESSION_DESKTOP"); session != "" {
		return session
	}

	return d.getenv("DESKTOP_SESSION")
}

func (d *SystemDetector) detectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := d.getenv(key); value != "" {
			return value
		}
	}

	return ""
}
