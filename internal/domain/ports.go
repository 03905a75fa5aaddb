// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// MetadataReader reads the metadata of one candidate bundle.
// Implemented by the Info.plist and desktop entry readers.
type MetadataReader interface {
	// ReadMetadata returns ErrMetadataUnreadable (wrapped) when the bundle
	// has no usable metadata.
	ReadMetadata(path string) (*BundleMetadata, error)
}

// CatalogBuilder runs one complete discovery pass.
type CatalogBuilder interface {
	// Build never fails; per-entry problems are skipped and an inaccessible
	// set of roots yields an empty catalog.
	Build(ctx context.Context) *Catalog
}

// Launcher starts the external process behind a catalog entry.
type Launcher interface {
	// Launch returns once the process start has been initiated. It does not
	// wait for the application to exit.
	Launch(ctx context.Context, entry CatalogEntry) error
}

// CommandRunner defines the interface for starting system commands.
type CommandRunner interface {
	// Start starts a detached command and returns without waiting for it.
	Start(ctx context.Context, name string, args ...string) error

	// CommandExists checks if a command is available on the system.
	CommandExists(name string) bool
}
