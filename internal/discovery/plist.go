// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"howett.net/plist"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// Info.plist keys.
const (
	keyBundleIdentifier   = "CFBundleIdentifier"
	keyBundlePackageType  = "CFBundlePackageType"
	keyBundleIconFile     = "CFBundleIconFile"
	keyBackgroundOnly     = "LSBackgroundOnly"
	keyUIElement          = "LSUIElement"
	keyVisibleInLaunchpad = "LSVisibleInLaunchpad"
)

// PlistReader reads Contents/Info.plist of an application bundle.
type PlistReader struct{}

// ReadMetadata implements domain.MetadataReader.
func (PlistReader) ReadMetadata(bundlePath string) (*domain.BundleMetadata, error) {
	file, err := os.Open(filepath.Join(bundlePath, "Contents", "Info.plist")) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMetadataUnreadable, bundlePath, err)
	}
	defer func() { _ = file.Close() }()

	var info map[string]any
	if err := plist.NewDecoder(file).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMetadataUnreadable, bundlePath, err)
	}

	meta := &domain.BundleMetadata{
		Kind:           domain.KindAppBundle,
		Identifier:     stringValue(info, keyBundleIdentifier),
		PackageType:    stringValue(info, keyBundlePackageType),
		BackgroundOnly: boolValue(info, keyBackgroundOnly),
		UIElement:      boolValue(info, keyUIElement),
		IconRef:        iconPath(bundlePath, stringValue(info, keyBundleIconFile)),
	}

	if raw, ok := info[keyVisibleInLaunchpad]; ok {
		meta.VisibleInLauncher = domain.Bool(plistBool(raw))
	}

	return meta, nil
}

func stringValue(info map[string]any, key string) string {
	if s, ok := info[key].(string); ok {
		return strings.TrimSpace(s)
	}

	return ""
}

func boolValue(info map[string]any, key string) bool {
	raw, ok := info[key]
	if !ok {
		return false
	}

	return plistBool(raw)
}

// plistBool coerces the value types found in real Info.plist files. Flags
// are commonly written as <true/>, <integer>1</integer> or <string>YES</string>.
func plistBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case uint64:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return stringBool(v)
	default:
		return false
	}
}

// stringBool follows the usual Foundation string rules: leading whitespace,
// an optional sign and leading zeros are skipped, then Y, T or a non-zero
// digit means true.
func stringBool(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	s = strings.TrimLeft(s, "+-")
	s = strings.TrimLeft(s, "0")

	if s == "" {
		return false
	}

	switch c := s[0]; {
	case c == 'Y' || c == 'y' || c == 'T' || c == 't':
		return true
	case c >= '1' && c <= '9':
		return true
	default:
		return false
	}
}

func iconPath(bundlePath, iconFile string) string {
	if iconFile == "" {
		return ""
	}

	if filepath.Ext(iconFile) == "" {
		iconFile += ".icns"
	}

	return filepath.Join(bundlePath, "Contents", "Resources", iconFile)
}
