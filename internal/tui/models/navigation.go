// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the launcher screens using Bubble Tea.
package models

import (
	"github.com/canaveral-launcher/canaveral/internal/application"
	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// CatalogLoadedMsg carries the result of a discovery pass.
type CatalogLoadedMsg struct {
	Snapshot application.Snapshot
}

// PreferencesChangedMsg is sent when the preferences file changed on disk
// or the process received SIGHUP.
type PreferencesChangedMsg struct{}

// PreferencesAppliedMsg carries the reloaded preferences and the catalog
// rebuilt with them. Err is set when the preferences could not be read;
// the previous preferences stay in effect.
type PreferencesAppliedMsg struct {
	Config   config.Config
	Snapshot application.Snapshot
	Err      error
}

// LaunchFinishedMsg reports that a launch was initiated.
type LaunchFinishedMsg struct {
	Entry domain.CatalogEntry
	Err   error
}

// HelpClosedMsg is sent when the help overlay is dismissed.
type HelpClosedMsg struct{}
