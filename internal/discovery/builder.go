// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// Builder runs discovery passes: enumerate, read metadata, filter,
// deduplicate, sort.
type Builder struct {
	enumerator *Enumerator
	reader     domain.MetadataReader
	policy     *Policy
	locale     language.Tag
	logger     *slog.Logger
	now        func() time.Time
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithLocale sets the collation locale used for ordering.
func WithLocale(tag language.Tag) BuilderOption {
	return func(b *Builder) { b.locale = tag }
}

// WithLogger sets the logger for skip diagnostics.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock overrides the build timestamp source.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a catalog builder over roots.
func NewBuilder(roots []Root, reader domain.MetadataReader, policy *Policy, opts ...BuilderOption) *Builder {
	builder := &Builder{
		reader: reader,
		policy: policy,
		locale: language.Und,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(builder)
	}

	builder.enumerator = NewEnumerator(roots, builder.logger)

	return builder
}

// Roots returns the roots scanned by Build.
func (b *Builder) Roots() []Root {
	return b.enumerator.Roots()
}

type buildStats struct {
	candidates  int
	unreadable  int
	ineligible  int
	duplicateID int
	duplicateNm int
}

// Build implements domain.CatalogBuilder. A cancelled context yields the
// entries found so far.
func (b *Builder) Build(ctx context.Context) *domain.Catalog {
	start := b.now()

	var (
		stats buildStats
		kept  []domain.CatalogEntry
	)

	identities := make(map[string]struct{})

	for candidate := range b.enumerator.Candidates(ctx) {
		stats.candidates++

		meta, err := b.reader.ReadMetadata(candidate.Path)
		if err != nil {
			stats.unreadable++

			if !errors.Is(err, domain.ErrMetadataUnreadable) {
				b.logger.Warn("metadata reader failed", "path", candidate.Path, "error", err)
			} else {
				b.logger.Debug("skipping unreadable bundle", "path", candidate.Path, "error", err)
			}

			continue
		}

		if verdict := b.policy.Evaluate(meta, candidate.Path); verdict != Eligible {
			stats.ineligible++

			b.logger.Debug("skipping ineligible bundle", "path", candidate.Path, "reason", verdict.String())

			continue
		}

		identity := meta.Identifier
		if identity == "" {
			identity = candidate.Path
		}

		if _, seen := identities[identity]; seen {
			stats.duplicateID++

			b.logger.Debug("skipping duplicate identity", "path", candidate.Path, "identity", identity)

			continue
		}

		identities[identity] = struct{}{}

		kept = append(kept, domain.CatalogEntry{
			Identity:     identity,
			DisplayName:  DisplayName(meta, candidate.Path),
			LaunchTarget: candidate.Path,
			IconRef:      meta.IconRef,
			Kind:         KindOf(candidate.Path),
		})
	}

	entries := dedupeByName(kept, &stats, b.logger)
	SortEntries(entries, b.locale)

	builtAt := b.now()

	b.logger.Info("catalog built",
		"entries", len(entries),
		"candidates", stats.candidates,
		"unreadable", stats.unreadable,
		"ineligible", stats.ineligible,
		"duplicate_identity", stats.duplicateID,
		"duplicate_name", stats.duplicateNm,
		"duration", builtAt.Sub(start),
	)

	return domain.NewCatalog(entries, builtAt)
}

// dedupeByName keeps the first entry, in discovery order, for each display name.
func dedupeByName(entries []domain.CatalogEntry, stats *buildStats, logger *slog.Logger) []domain.CatalogEntry {
	names := make(map[string]struct{}, len(entries))
	unique := make([]domain.CatalogEntry, 0, len(entries))

	for _, entry := range entries {
		if _, seen := names[entry.DisplayName]; seen {
			stats.duplicateNm++

			logger.Debug("skipping duplicate name", "path", entry.LaunchTarget, "name", entry.DisplayName)

			continue
		}

		names[entry.DisplayName] = struct{}{}
		unique = append(unique, entry)
	}

	return unique
}
