// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides XDG path and file helpers for Canaveral.
package platform

import "errors"

// AppName names the per-application XDG directories.
const AppName = "canaveral"

var (
	// ErrEmptyPath indicates a file operation was given no path.
	ErrEmptyPath = errors.New("path is required")
)
