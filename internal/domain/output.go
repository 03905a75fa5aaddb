// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "time"

// OutputPort presents command results to the user or to a script.
type OutputPort interface {
	// Success reports a completed action. data is printed instead of
	// message when structured output is requested.
	Success(message string, data any) error

	// Info prints a human readable note. Suppressed in quiet mode.
	Info(message string) error

	Catalog(result ListResult) error
	Roots(roots []RootInfo) error
}

// ListResult represents one discovery run as printed by the list command.
type ListResult struct {
	Applications []CatalogEntry `json:"applications"`
	Total        int            `json:"total"`
	Query        string         `json:"query,omitempty"`
	Duration     time.Duration  `json:"duration"`
	Timestamp    time.Time      `json:"timestamp"`
}

// RootInfo describes one discovery root.
type RootInfo struct {
	Path      string   `json:"path"`
	Exists    bool     `json:"exists"`
	AllowList []string `json:"allow_list,omitempty"`
}
