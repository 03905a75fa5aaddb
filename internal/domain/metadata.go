// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Package types that mark a bundle as a launchable application.
const (
	AppBundlePackageType    = "APPL"
	DesktopEntryPackageType = "Application"
)

// BundleMetadata is the subset of a bundle's metadata that discovery and
// launching care about. Readers fill it from Info.plist or a desktop entry.
type BundleMetadata struct {
	Kind BundleKind

	// Identifier is the bundle identifier or desktop file ID. May be empty.
	Identifier string
	// Name overrides the display name derived from the path. May be empty.
	Name string
	// PackageType is empty when the bundle does not declare one.
	PackageType string

	BackgroundOnly bool
	UIElement      bool
	// VisibleInLauncher is nil when the flag is absent, which means visible.
	VisibleInLauncher *bool

	IconRef  string
	Exec     string
	Terminal bool
}

// Visible reports whether the hidden-from-launcher flag allows listing.
func (m *BundleMetadata) Visible() bool {
	return m.VisibleInLauncher == nil || *m.VisibleInLauncher
}

// IsApplicationType reports whether the declared package type, if any, is
// the standard application type for the bundle kind.
func (m *BundleMetadata) IsApplicationType() bool {
	if m.PackageType == "" {
		return true
	}

	switch m.Kind {
	case KindDesktopEntry:
		return m.PackageType == DesktopEntryPackageType
	default:
		return m.PackageType == AppBundlePackageType
	}
}

// Bool returns a pointer to v, for optional metadata flags.
func Bool(v bool) *bool {
	return &v
}
