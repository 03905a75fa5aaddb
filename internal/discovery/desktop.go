// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

const desktopEntrySection = "Desktop Entry"

// DesktopReader reads freedesktop.org desktop entry files.
type DesktopReader struct {
	// Desktops is the current desktop list (XDG_CURRENT_DESKTOP), matched
	// against OnlyShowIn and NotShowIn.
	Desktops []string
	// Locales are tried in order for localized keys such as Name[de].
	Locales []string
}

// NewDesktopReader creates a reader for the given XDG_CURRENT_DESKTOP value
// and POSIX locale string.
func NewDesktopReader(currentDesktop, locale string) DesktopReader {
	var desktops []string

	for _, d := range strings.Split(currentDesktop, ":") {
		if d = strings.TrimSpace(d); d != "" {
			desktops = append(desktops, d)
		}
	}

	return DesktopReader{Desktops: desktops, Locales: localeKeys(locale)}
}

// ReadMetadata implements domain.MetadataReader.
func (r DesktopReader) ReadMetadata(path string) (*domain.BundleMetadata, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		KeyValueDelimiters:      "=",
		SkipUnrecognizableLines: true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMetadataUnreadable, path, err)
	}

	section, err := file.GetSection(desktopEntrySection)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing [%s] group", domain.ErrMetadataUnreadable, path, desktopEntrySection)
	}

	meta := &domain.BundleMetadata{
		Kind:           domain.KindDesktopEntry,
		Identifier:     filepath.Base(path),
		Name:           r.localized(section, "Name"),
		PackageType:    section.Key("Type").String(),
		BackgroundOnly: section.Key("Hidden").MustBool(false),
		UIElement:      !r.shownIn(section),
		IconRef:        section.Key("Icon").String(),
		Exec:           section.Key("Exec").String(),
		Terminal:       section.Key("Terminal").MustBool(false),
	}

	if section.HasKey("NoDisplay") {
		meta.VisibleInLauncher = domain.Bool(!section.Key("NoDisplay").MustBool(false))
	}

	return meta, nil
}

func (r DesktopReader) localized(section *ini.Section, key string) string {
	for _, locale := range r.Locales {
		if name := section.Key(key + "[" + locale + "]").String(); name != "" {
			return name
		}
	}

	return section.Key(key).String()
}

// shownIn applies OnlyShowIn and NotShowIn to the current desktops.
func (r DesktopReader) shownIn(section *ini.Section) bool {
	if only := listValue(section, "OnlyShowIn"); len(only) > 0 {
		if !r.matchesDesktop(only) {
			return false
		}
	}

	return !r.matchesDesktop(listValue(section, "NotShowIn"))
}

func (r DesktopReader) matchesDesktop(list []string) bool {
	for _, desktop := range r.Desktops {
		if slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, desktop) }) {
			return true
		}
	}

	return false
}

func listValue(section *ini.Section, key string) []string {
	var values []string

	for _, v := range strings.Split(section.Key(key).String(), ";") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}

// localeKeys expands a POSIX locale such as de_DE.UTF-8@euro into the lookup
// order used for localized keys: lang_COUNTRY@MODIFIER, lang_COUNTRY,
// lang@MODIFIER, lang.
func localeKeys(locale string) []string {
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}

	modifier := ""
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		modifier = locale[i+1:]
		locale = locale[:i]
	}

	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}

	lang, country, _ := strings.Cut(locale, "_")

	var keys []string

	add := func(k string) {
		if k != "" && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}

	if country != "" && modifier != "" {
		add(lang + "_" + country + "@" + modifier)
	}

	if country != "" {
		add(lang + "_" + country)
	}

	if modifier != "" {
		add(lang + "@" + modifier)
	}

	add(lang)

	return keys
}
