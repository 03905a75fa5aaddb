// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build unix

package config

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NotifyReload calls onChange for every SIGHUP until ctx is done.
func NotifyReload(ctx context.Context, onChange func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)

	go func() {
		defer signal.Stop(signals)

		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				onChange()
			}
		}
	}()
}
