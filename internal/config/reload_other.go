// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !unix

package config

import "context"

// NotifyReload is a no-op where SIGHUP does not exist.
func NotifyReload(_ context.Context, _ func()) {}
