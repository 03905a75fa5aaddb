// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package testutil

import (
	"time"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// Entries builds catalog entries named after names, with identity and
// launch target derived from the name.
func Entries(names ...string) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(names))

	for _, name := range names {
		entries = append(entries, domain.CatalogEntry{
			Identity:     "test." + name,
			DisplayName:  name,
			LaunchTarget: "/Applications/" + name + ".app",
			Kind:         domain.KindAppBundle,
		})
	}

	return entries
}

// Catalog builds a catalog of entries named after names, in the given order.
func Catalog(names ...string) *domain.Catalog {
	return domain.NewCatalog(Entries(names...), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}
