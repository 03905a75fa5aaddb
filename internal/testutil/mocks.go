// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides testify mocks of the domain ports.
package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// MockMetadataReader mocks the MetadataReader port for testing.
type MockMetadataReader struct {
	mock.Mock
}

// ReadMetadata mocks reading bundle metadata.
func (m *MockMetadataReader) ReadMetadata(path string) (*domain.BundleMetadata, error) {
	args := m.Called(path)
	if result := args.Get(0); result != nil {
		meta, ok := result.(*domain.BundleMetadata)
		if !ok {
			return nil, args.Error(1)
		}

		return meta, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCatalogBuilder mocks the CatalogBuilder port for testing.
type MockCatalogBuilder struct {
	mock.Mock
}

// Build mocks a discovery pass.
func (m *MockCatalogBuilder) Build(ctx context.Context) *domain.Catalog {
	args := m.Called(ctx)
	if catalog, ok := args.Get(0).(*domain.Catalog); ok {
		return catalog
	}

	return domain.NewCatalog(nil, time.Time{})
}

// MockLauncher mocks the Launcher port for testing.
type MockLauncher struct {
	mock.Mock
}

// Launch mocks starting an application.
func (m *MockLauncher) Launch(ctx context.Context, entry domain.CatalogEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

// MockCommandRunner mocks the CommandRunner port for testing.
type MockCommandRunner struct {
	mock.Mock
}

// Start mocks starting a detached command.
func (m *MockCommandRunner) Start(ctx context.Context, name string, args ...string) error {
	callArgs := m.Called(ctx, name, args)

	return callArgs.Error(0)
}

// CommandExists mocks command lookup.
func (m *MockCommandRunner) CommandExists(name string) bool {
	args := m.Called(name)

	return args.Bool(0)
}
