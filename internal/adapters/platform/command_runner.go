// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides the OS facing adapters: process start,
// application launch and system detection.
package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandRunner implements the CommandRunner port for real system commands.
type CommandRunner struct {
	dryRun bool
	logger *slog.Logger
}

// NewCommandRunner creates a new command runner. In dry-run mode commands
// are logged and reported as started without running.
func NewCommandRunner(dryRun bool, logger *slog.Logger) *CommandRunner {
	if logger == nil {
		logger = slog.Default()
	}

	return &CommandRunner{dryRun: dryRun, logger: logger}
}

// Start starts a command in its own session, detached from the launcher's
// terminal, and returns once the process exists. The process outlives the
// launcher and ctx.
func (r *CommandRunner) Start(ctx context.Context, name string, args ...string) error {
	r.logger.DebugContext(ctx, "starting command", "command", name, "args", strings.Join(args, " "), "dry_run", r.dryRun)

	if r.dryRun {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	// #nosec G204 - launching user selected applications is the purpose of this adapter
	cmd := exec.Command(name, args...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	// Reap the child so it does not linger as a zombie while we are alive.
	go func() { _ = cmd.Wait() }()

	return nil
}

// CommandExists checks if a command is available on the system.
func (r *CommandRunner) CommandExists(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}
