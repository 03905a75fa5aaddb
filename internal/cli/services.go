// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	platformAdapter "github.com/canaveral-launcher/canaveral/internal/adapters/platform"
	"github.com/canaveral-launcher/canaveral/internal/application"
	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/discovery"
	"github.com/canaveral-launcher/canaveral/internal/tui/models"
)

// The launcher never lists itself.
const (
	SelfIdentifier = "io.github.canaveral-launcher.canaveral"
	SelfName       = "Canaveral"
)

// Services is the wired application core shared by every command.
type Services struct {
	System  platformAdapter.SystemInfo
	Roots   []discovery.Root
	Catalog *application.CatalogService
	Launch  *application.LaunchService

	logger *slog.Logger
}

// ServiceFactory builds the services for a loaded configuration.
type ServiceFactory func(cfg config.Config, dryRun bool) (*Services, error)

// NewServices wires discovery and launching for cfg.
func NewServices(cfg config.Config, dryRun bool) (*Services, error) {
	logger := slog.Default()
	system := platformAdapter.NewSystemDetector().DetectSystem()

	builder, roots, err := newBuilder(cfg, system, discovery.RootOptionsFromEnv(), logger)
	if err != nil {
		return nil, err
	}

	reader := discovery.NewBundleReader(system.CurrentDesktop(), localeName(cfg, system))
	runner := platformAdapter.NewCommandRunner(dryRun, logger)
	launcher := platformAdapter.NewAppLauncher(runner, reader, system, cfg.Launch.Terminal)

	return &Services{
		System:  system,
		Roots:   roots,
		Catalog: application.NewCatalogService(builder, logger),
		Launch:  application.NewLaunchService(launcher, cfg.Launch.Grace.Duration, logger),
		logger:  logger,
	}, nil
}

// Reloader returns the function the launcher calls when the preferences
// file changes: it reloads path and swaps the discovery builder.
func (s *Services) Reloader(path string) models.ReloadFunc {
	return func(_ context.Context) (config.Config, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}

		cfg = cfg.Normalize()

		builder, _, err := newBuilder(cfg, s.System, discovery.RootOptionsFromEnv(), s.logger)
		if err != nil {
			return config.Config{}, err
		}

		s.Catalog.Reconfigure(builder)

		return cfg, nil
	}
}

func newBuilder(cfg config.Config, system platformAdapter.SystemInfo, opts discovery.RootOptions, logger *slog.Logger) (*discovery.Builder, []discovery.Root, error) {
	opts.Extra = cfg.Discovery.ExtraRoots
	opts.CoreServicesAllow = cfg.Discovery.CoreServicesAllow

	roots := discovery.DefaultRoots(opts)

	policy, err := discovery.NewPolicy(discovery.PolicyOptions{
		SelfIdentifier: SelfIdentifier,
		SelfName:       SelfName,
		Exclude:        cfg.Discovery.Exclude,
		Roots:          roots,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	reader := discovery.NewBundleReader(system.CurrentDesktop(), localeName(cfg, system))

	builder := discovery.NewBuilder(roots, reader, policy,
		discovery.WithLocale(discovery.LocaleFromEnv(cfg.Discovery.Locale, os.Getenv)),
		discovery.WithLogger(logger),
	)

	return builder, roots, nil
}

func localeName(cfg config.Config, system platformAdapter.SystemInfo) string {
	if cfg.Discovery.Locale != "" {
		return cfg.Discovery.Locale
	}

	return system.Locale
}
