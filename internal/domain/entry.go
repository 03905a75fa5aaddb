// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/canaveral-launcher/canaveral/internal/stringutil"
)

// BundleKind identifies the on-disk format an application was discovered in.
type BundleKind string

// Supported bundle kinds.
const (
	KindAppBundle    BundleKind = "app"     // macOS .app directory
	KindDesktopEntry BundleKind = "desktop" // freedesktop .desktop file
)

// CatalogEntry is a single launchable application. It is a value type and
// never mutated after discovery.
type CatalogEntry struct {
	Identity     string     `json:"identity"`
	DisplayName  string     `json:"name"`
	LaunchTarget string     `json:"path"`
	IconRef      string     `json:"icon,omitempty"`
	Kind         BundleKind `json:"kind"`
}

// HasIcon reports whether the entry carries an icon reference.
func (e CatalogEntry) HasIcon() bool {
	return e.IconRef != ""
}

// Catalog is the immutable, display-name ordered result of one discovery run.
// A nil *Catalog means discovery has not completed yet; an empty one means it
// completed and found nothing.
type Catalog struct {
	entries []CatalogEntry
	builtAt time.Time
}

// NewCatalog creates a catalog from already ordered entries. The slice is copied.
func NewCatalog(entries []CatalogEntry, builtAt time.Time) *Catalog {
	owned := make([]CatalogEntry, len(entries))
	copy(owned, entries)

	return &Catalog{entries: owned, builtAt: builtAt}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// IsEmpty reports whether the catalog holds no entries.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// BuiltAt returns when the discovery run that produced the catalog finished.
func (c *Catalog) BuiltAt() time.Time {
	if c == nil {
		return time.Time{}
	}

	return c.builtAt
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []CatalogEntry {
	if c == nil {
		return nil
	}

	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)

	return out
}

// At returns the entry at index i.
func (c *Catalog) At(i int) (CatalogEntry, bool) {
	if c == nil || i < 0 || i >= len(c.entries) {
		return CatalogEntry{}, false
	}

	return c.entries[i], true
}

// Filter returns the entries whose display name contains query, ignoring case.
// An empty query returns every entry.
func (c *Catalog) Filter(query string) []CatalogEntry {
	if c == nil {
		return nil
	}

	if query == "" {
		return c.Entries()
	}

	matches := make([]CatalogEntry, 0, len(c.entries))

	for _, entry := range c.entries {
		if stringutil.ContainsFold(entry.DisplayName, query) {
			matches = append(matches, entry)
		}
	}

	return matches
}

// Find resolves a user supplied name to one entry. An exact case-insensitive
// display name match wins; otherwise the name must match exactly one entry
// as a substring.
func (c *Catalog) Find(name string) (CatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" || c.IsEmpty() {
		return CatalogEntry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}

	for _, entry := range c.entries {
		if stringutil.EqualFold(entry.DisplayName, name) {
			return entry, nil
		}
	}

	matches := c.Filter(name)

	switch len(matches) {
	case 0:
		return CatalogEntry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, match := range matches {
			names = append(names, match.DisplayName)
		}

		return CatalogEntry{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousName, name, strings.Join(names, ", "))
	}
}
