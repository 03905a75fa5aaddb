// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/canaveral-launcher/canaveral/internal/discovery"
	"github.com/canaveral-launcher/canaveral/internal/domain"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"de_DE.UTF-8", "de-DE"},
		{"sv_SE@euro", "sv-SE"},
		{"en-US", "en-US"},
		{"C", "und"},
		{"POSIX", "und"},
		{"!!", "und"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, discovery.ParseLocale(tt.raw).String())
		})
	}
}

func TestLocaleFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{"LC_COLLATE": "sv_SE.UTF-8", "LANG": "en_US.UTF-8"}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, "sv-SE", discovery.LocaleFromEnv("", getenv).String())
	assert.Equal(t, "de", discovery.LocaleFromEnv("de", getenv).String())
	assert.Equal(t, "und", discovery.LocaleFromEnv("", func(string) string { return "" }).String())
}

func TestSortEntries(t *testing.T) {
	t.Parallel()

	entries := func(ns ...string) []domain.CatalogEntry {
		out := make([]domain.CatalogEntry, 0, len(ns))
		for _, n := range ns {
			out = append(out, domain.CatalogEntry{DisplayName: n})
		}

		return out
	}

	tests := []struct {
		name   string
		locale language.Tag
		input  []string
		want   []string
	}{
		{"case insensitive", language.English, []string{"zoom", "Atlas", "mail", "Books"}, []string{"Atlas", "Books", "mail", "zoom"}},
		{"ties broken by bytes", language.English, []string{"mail", "Mail"}, []string{"Mail", "mail"}},
		{"accents near base letter", language.English, []string{"Zed", "Éclair", "Echo"}, []string{"Echo", "Éclair", "Zed"}},
		{"swedish sorts å after z", language.Swedish, []string{"Åsa", "Zeta", "Anna"}, []string{"Anna", "Zeta", "Åsa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entries(tt.input...)
			discovery.SortEntries(got, tt.locale)

			var gotNames []string
			for _, e := range got {
				gotNames = append(gotNames, e.DisplayName)
			}

			assert.Equal(t, tt.want, gotNames)
		})
	}
}
