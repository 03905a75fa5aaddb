// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package application

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// Snapshot is a published catalog with the generation of the request that
// built it.
type Snapshot struct {
	Catalog    *domain.Catalog
	Generation uint64
}

// CatalogService runs discovery on request and publishes the newest result.
// Builds are serialized; a result is published only when its request is
// newer than the one already published.
type CatalogService struct {
	builder domain.CatalogBuilder
	logger  *slog.Logger

	buildMu   sync.Mutex
	requested atomic.Uint64
	published atomic.Pointer[Snapshot]
}

// NewCatalogService creates a catalog service.
func NewCatalogService(builder domain.CatalogBuilder, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{builder: builder, logger: logger}
}

// Refresh runs one discovery pass and returns the snapshot that is current
// afterwards. That is the new catalog unless a newer request finished first.
func (s *CatalogService) Refresh(ctx context.Context) Snapshot {
	generation := s.requested.Add(1)

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	if current := s.published.Load(); current != nil && current.Generation > generation {
		s.logger.Debug("catalog request superseded", "generation", generation, "published", current.Generation)

		return *current
	}

	catalog := s.builder.Build(ctx)

	if !s.publish(Snapshot{Catalog: catalog, Generation: generation}) {
		s.logger.Debug("discarding stale catalog", "generation", generation)
	}

	return s.Snapshot()
}

// Reconfigure replaces the builder used by later refreshes. It waits for a
// build in progress to finish.
func (s *CatalogService) Reconfigure(builder domain.CatalogBuilder) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	s.builder = builder
}

// publish swaps in snap unless a newer generation is already published.
func (s *CatalogService) publish(snap Snapshot) bool {
	for {
		current := s.published.Load()
		if current != nil && current.Generation >= snap.Generation {
			return false
		}

		if s.published.CompareAndSwap(current, &snap) {
			return true
		}
	}
}

// Current returns the published catalog, or nil while the first discovery
// pass is still running.
func (s *CatalogService) Current() *domain.Catalog {
	return s.Snapshot().Catalog
}

// Snapshot returns the published snapshot. The zero Snapshot means no
// catalog has been published yet.
func (s *CatalogService) Snapshot() Snapshot {
	if current := s.published.Load(); current != nil {
		return *current
	}

	return Snapshot{}
}
