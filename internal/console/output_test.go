// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticesSetColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "ALWAYS", want: ColorAlways},
		{in: " never ", want: ColorNever},
		{in: "auto", want: ColorAuto},
		{in: "rainbow", want: ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			n := &Notices{}
			n.SetColor(tt.in)

			assert.Equal(t, tt.want, n.Color)
		})
	}
}

func TestNoticesMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		plain bool
		json  bool
		color string
		emit  func(n *Notices)
		want  string
	}{
		{
			name:  "warning",
			color: ColorNever,
			emit:  func(n *Notices) { n.Warningf("logging disabled: %s", "read-only") },
			want:  "⚠ logging disabled: read-only\n",
		},
		{
			name:  "error",
			color: ColorNever,
			emit:  func(n *Notices) { n.Errorf("no application named %q", "mail") },
			want:  "✗ no application named \"mail\"\n",
		},
		{
			name:  "plain error",
			plain: true,
			color: ColorAlways,
			emit:  func(n *Notices) { n.Errorf("boom") },
			want:  "error: boom\n",
		},
		{
			name:  "json warning",
			json:  true,
			color: ColorNever,
			emit:  func(n *Notices) { n.Warningf("stale catalog") },
			want:  "warning: stale catalog\n",
		},
		{
			name:  "forced color",
			color: ColorAlways,
			emit:  func(n *Notices) { n.Errorf("boom") },
			want:  "\033[31m✗ \033[0mboom\n",
		},
		{
			name:  "auto color on a buffer",
			color: ColorAuto,
			emit:  func(n *Notices) { n.Warningf("careful") },
			want:  "⚠ careful\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer

			n := &Notices{Stderr: &stderr}
			n.SetMode(tt.plain, tt.json)
			n.SetColor(tt.color)
			tt.emit(n)

			assert.Equal(t, tt.want, stderr.String())
		})
	}
}
