// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string utility functions for Canaveral.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case folded form of s.
// A new caser is created per call because cases.Caser is not safe for
// concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold checks if text contains substr, ignoring case.
func ContainsFold(text, substr string) bool {
	if substr == "" {
		return true
	}

	return strings.Contains(Fold(text), Fold(substr))
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
