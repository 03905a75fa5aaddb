// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// DefaultGrace is how long the launcher lingers after initiating a launch.
const DefaultGrace = 100 * time.Millisecond

// LaunchService initiates application launches. It never waits for the
// launched application.
type LaunchService struct {
	launcher domain.Launcher
	logger   *slog.Logger
	grace    time.Duration
}

// NewLaunchService creates a launch service. A negative grace selects
// DefaultGrace.
func NewLaunchService(launcher domain.Launcher, grace time.Duration, logger *slog.Logger) *LaunchService {
	if logger == nil {
		logger = slog.Default()
	}

	if grace < 0 {
		grace = DefaultGrace
	}

	return &LaunchService{launcher: launcher, logger: logger, grace: grace}
}

// Grace returns the delay applied by Settle.
func (s *LaunchService) Grace() time.Duration {
	return s.grace
}

// Launch starts entry. Failures are logged; the error is returned for
// callers that report it, such as the launch command.
func (s *LaunchService) Launch(ctx context.Context, entry domain.CatalogEntry) error {
	s.logger.Info("launching application", "name", entry.DisplayName, "target", entry.LaunchTarget)

	if err := s.launcher.Launch(ctx, entry); err != nil {
		s.logger.Error("launch failed", "name", entry.DisplayName, "target", entry.LaunchTarget, "error", err)

		return err
	}

	return nil
}

// Settle waits for the grace delay so the launch can be handed off before
// the launcher exits. It returns early when ctx is done.
func (s *LaunchService) Settle(ctx context.Context) {
	if s.grace <= 0 {
		return
	}

	timer := time.NewTimer(s.grace)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
