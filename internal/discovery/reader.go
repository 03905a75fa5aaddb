// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"path/filepath"
	"strings"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// BundleReader dispatches to the reader matching the bundle kind.
type BundleReader struct {
	Plist   domain.MetadataReader
	Desktop domain.MetadataReader
}

// NewBundleReader creates a reader for both bundle kinds.
func NewBundleReader(currentDesktop, locale string) *BundleReader {
	return &BundleReader{
		Plist:   PlistReader{},
		Desktop: NewDesktopReader(currentDesktop, locale),
	}
}

// ReadMetadata implements domain.MetadataReader.
func (r *BundleReader) ReadMetadata(path string) (*domain.BundleMetadata, error) {
	if strings.EqualFold(filepath.Ext(path), DesktopEntryExt) {
		return r.Desktop.ReadMetadata(path)
	}

	return r.Plist.ReadMetadata(path)
}

// KindOf returns the bundle kind for a candidate path.
func KindOf(path string) domain.BundleKind {
	if strings.EqualFold(filepath.Ext(path), DesktopEntryExt) {
		return domain.KindDesktopEntry
	}

	return domain.KindAppBundle
}
