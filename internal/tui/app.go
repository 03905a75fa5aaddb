// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the interactive full-screen launcher.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/tui/models"
	"github.com/canaveral-launcher/canaveral/internal/tui/styles"
)

// Options configures the interactive launcher.
type Options struct {
	Config config.Config
	// ConfigPath is watched for changes when set.
	ConfigPath string
	Catalog    models.CatalogSource
	Apps       models.AppStarter
	Reload     models.ReloadFunc
	Logger     *slog.Logger
}

// App is the root model: the launcher grid with the help overlay on top.
type App struct {
	styles   *styles.Styles
	launcher *models.Launcher
	help     *models.Help
	showHelp bool
	width    int
	height   int
}

// NewApp creates the root model.
func NewApp(ctx context.Context, opts Options) *App {
	styleConfig := styles.New()

	return &App{
		styles: styleConfig,
		launcher: models.NewLauncher(ctx, styleConfig, models.LauncherOptions{
			Config:  opts.Config,
			Catalog: opts.Catalog,
			Apps:    opts.Apps,
			Reload:  opts.Reload,
			Logger:  opts.Logger,
		}),
		help: models.NewHelp(styleConfig),
	}
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.launcher.Init()
}

// Update implements the tea.Model interface.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Update(msg)
		a.launcher.Update(msg)

		return a, nil

	case models.HelpClosedMsg:
		a.showHelp = false

		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		if a.showHelp {
			_, cmd := a.help.Update(msg)

			return a, cmd
		}
	}

	_, cmd := a.launcher.Update(msg)

	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		_, cmd := a.launcher.Update(msg)

		return cmd
	}

	if a.showHelp {
		_, cmd := a.help.Update(msg)

		return cmd
	}

	if msg.Type == tea.KeyF1 || (msg.String() == "?" && a.launcher.Query() == "") {
		a.showHelp = true

		return nil
	}

	_, cmd := a.launcher.Update(msg)

	return cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.launcher.Quitting() {
		return ""
	}

	if a.showHelp {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.help.View())
	}

	return a.launcher.View()
}

// Launcher returns the grid model (for testing).
func (a *App) Launcher() *models.Launcher {
	return a.launcher
}

// ShowingHelp reports whether the help overlay is open (for testing).
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Run starts the interactive launcher and blocks until it exits. Changes
// to the preferences file and SIGHUP are delivered to the running program.
func Run(ctx context.Context, opts Options) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", domain.ErrNoTerminal)
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(
		NewApp(ctx, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	notify := func() { program.Send(models.PreferencesChangedMsg{}) }

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, config.DefaultDebounce, opts.Logger)
		if err != nil {
			opts.Logger.Warn("preferences watcher unavailable", "path", opts.ConfigPath, "error", err)
		} else {
			defer func() { _ = watcher.Close() }()

			go watcher.Run(ctx, notify)
		}
	}

	config.NotifyReload(ctx, notify)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// isTerminal checks if stdin and stdout are connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
}
