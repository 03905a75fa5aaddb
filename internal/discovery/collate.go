// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// LocaleFromEnv resolves the collation locale. An explicit override wins,
// then LC_ALL, LC_COLLATE and LANG. Unknown or POSIX locales map to the
// root locale.
func LocaleFromEnv(override string, getenv func(string) string) language.Tag {
	if getenv == nil {
		getenv = os.Getenv
	}

	candidates := []string{override, getenv("LC_ALL"), getenv("LC_COLLATE"), getenv("LANG")}

	for _, raw := range candidates {
		if raw == "" {
			continue
		}

		return ParseLocale(raw)
	}

	return language.Und
}

// ParseLocale converts a POSIX locale (de_DE.UTF-8@euro) or BCP 47 tag to a
// language tag.
func ParseLocale(raw string) language.Tag {
	if raw == "C" || raw == "POSIX" {
		return language.Und
	}

	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Und
	}

	return tag
}

// SortEntries orders entries by display name, case-insensitively, using the
// collation rules of locale. Byte order breaks ties so the order is total.
func SortEntries(entries []domain.CatalogEntry, locale language.Tag) {
	collator := collate.New(locale, collate.IgnoreCase)

	slices.SortStableFunc(entries, func(a, b domain.CatalogEntry) int {
		if c := collator.CompareString(a.DisplayName, b.DisplayName); c != 0 {
			return c
		}

		return strings.Compare(a.DisplayName, b.DisplayName)
	})
}
