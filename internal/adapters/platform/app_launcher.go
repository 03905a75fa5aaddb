// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// DefaultTerminal runs desktop entries that ask for a terminal.
const DefaultTerminal = "x-terminal-emulator"

// AppLauncher implements the Launcher port. Application bundles are handed
// to open(1); desktop entries run their Exec line.
type AppLauncher struct {
	runner   domain.CommandRunner
	reader   domain.MetadataReader
	system   SystemInfo
	terminal string
}

// NewAppLauncher creates a launcher. reader re-reads desktop entries at
// launch time so edits made after discovery are honoured.
func NewAppLauncher(runner domain.CommandRunner, reader domain.MetadataReader, system SystemInfo, terminal string) *AppLauncher {
	if terminal == "" {
		terminal = DefaultTerminal
	}

	return &AppLauncher{runner: runner, reader: reader, system: system, terminal: terminal}
}

// Launch implements domain.Launcher.
func (l *AppLauncher) Launch(ctx context.Context, entry domain.CatalogEntry) error {
	if entry.Kind == domain.KindDesktopEntry {
		return l.launchDesktopEntry(ctx, entry)
	}

	return l.launchBundle(ctx, entry)
}

func (l *AppLauncher) launchBundle(ctx context.Context, entry domain.CatalogEntry) error {
	if !l.system.IsDarwin() {
		return fmt.Errorf("%w: %s: application bundles open only on macOS", domain.ErrNoLaunchCommand, entry.DisplayName)
	}

	if err := l.runner.Start(ctx, "open", entry.LaunchTarget); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrLaunchFailed, entry.DisplayName, err)
	}

	return nil
}

func (l *AppLauncher) launchDesktopEntry(ctx context.Context, entry domain.CatalogEntry) error {
	meta, err := l.reader.ReadMetadata(entry.LaunchTarget)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrLaunchFailed, entry.DisplayName, err)
	}

	argv, err := ExpandExec(meta.Exec, ExecContext{
		Name:     entry.DisplayName,
		Icon:     meta.IconRef,
		Location: entry.LaunchTarget,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrLaunchFailed, entry.DisplayName, err)
	}

	if len(argv) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNoLaunchCommand, entry.DisplayName)
	}

	if meta.Terminal {
		terminal, err := shellquote.Split(l.terminal)
		if err != nil || len(terminal) == 0 || !l.runner.CommandExists(terminal[0]) {
			return fmt.Errorf("%w: %q", domain.ErrNoTerminal, l.terminal)
		}

		argv = append(append(terminal, "-e"), argv...)
	}

	if err := l.runner.Start(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrLaunchFailed, entry.DisplayName, err)
	}

	return nil
}

// ExecContext supplies the values for desktop entry field codes.
type ExecContext struct {
	Name     string
	Icon     string
	Location string
}

// ExpandExec splits an Exec line into argv and expands its field codes.
// File and URL codes expand to nothing since the launcher never passes
// documents.
func ExpandExec(execLine string, fields ExecContext) ([]string, error) {
	words, err := shellquote.Split(execLine)
	if err != nil {
		return nil, fmt.Errorf("invalid Exec line %q: %w", execLine, err)
	}

	argv := make([]string, 0, len(words))

	for _, word := range words {
		switch word {
		case "%f", "%F", "%u", "%U", "%d", "%D", "%n", "%N", "%v", "%m":
			continue
		case "%i":
			if fields.Icon != "" {
				argv = append(argv, "--icon", fields.Icon)
			}

			continue
		}

		if expanded := expandInline(word, fields); expanded != "" {
			argv = append(argv, expanded)
		}
	}

	return argv, nil
}

// expandInline expands field codes embedded in a word.
func expandInline(word string, fields ExecContext) string {
	if !strings.Contains(word, "%") {
		return word
	}

	var out strings.Builder

	for i := 0; i < len(word); i++ {
		if word[i] != '%' || i == len(word)-1 {
			out.WriteByte(word[i])

			continue
		}

		i++

		switch word[i] {
		case '%':
			out.WriteByte('%')
		case 'c':
			out.WriteString(fields.Name)
		case 'k':
			out.WriteString(fields.Location)
		case 'i':
			out.WriteString(fields.Icon)
		}
	}

	return out.String()
}
