// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for Canaveral.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"

	"github.com/canaveral-launcher/canaveral/internal/cli"
	"github.com/canaveral-launcher/canaveral/internal/console"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/platform"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI(cli.WithInstanceLock(func() (func(), error) {
		return acquireLock(platform.LockFile())
	}))

	if err := app.Run(ctx, os.Args); err != nil {
		return exitCode(err)
	}

	return cli.ExitSuccess
}

// exitCode prints err and maps it to the process exit status.
func exitCode(err error) int {
	exitErr := &domain.ExitError{}
	if errors.As(err, &exitErr) {
		console.DefaultOutput.Errorf("%s", exitErr.Message)

		return exitErr.Code
	}

	console.DefaultOutput.Errorf("Unexpected error: %v", err)

	return cli.ExitGeneralError
}

// acquireLock takes the single instance lock at path without blocking.
func acquireLock(path string) (func(), error) {
	if err := platform.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	lock := flock.New(path)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire process lock: %w", err)
	}

	if !locked {
		return nil, domain.ErrAlreadyRunning
	}

	return func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			console.DefaultOutput.Warningf("failed to release process lock: %v", unlockErr)
		}
	}, nil
}
