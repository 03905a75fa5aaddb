// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	cliAdapter "github.com/canaveral-launcher/canaveral/internal/adapters/cli"
	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/console"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/logging"
	"github.com/canaveral-launcher/canaveral/internal/platform"
	"github.com/canaveral-launcher/canaveral/internal/tui"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Generic failure (catch-all)
	ExitUsageError    = 2  // Invalid command line usage
	ExitConfigError   = 3  // Preferences file error
	ExitNotFoundError = 5  // Requested application not found
	ExitSystemError   = 12 // Lock or filesystem failure
	ExitLaunchError   = 22 // Application could not be started
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// ErrInvalidArgument is returned when a command argument is invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// -v belongs to --verbose.
func init() {
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

// InteractiveFunc runs the full screen launcher.
type InteractiveFunc func(ctx context.Context, opts tui.Options) error

// LogInitFunc installs the process logger.
type LogInitFunc func(opts logging.Options) (func() error, error)

// LockFunc claims the single launcher instance and returns its release.
type LockFunc func() (func(), error)

// Option customises a CLI.
type Option func(*CLI)

// WithStdout redirects command results.
func WithStdout(w io.Writer) Option {
	return func(app *CLI) { app.stdout = w }
}

// WithServiceFactory replaces the service wiring.
func WithServiceFactory(factory ServiceFactory) Option {
	return func(app *CLI) { app.services = factory }
}

// WithInteractive replaces the full screen launcher.
func WithInteractive(run InteractiveFunc) Option {
	return func(app *CLI) { app.interactive = run }
}

// WithLogInit replaces logger installation.
func WithLogInit(init LogInitFunc) Option {
	return func(app *CLI) { app.logInit = init }
}

// WithInstanceLock guards the interactive launcher with lock.
func WithInstanceLock(lock LockFunc) Option {
	return func(app *CLI) { app.lock = lock }
}

// WithPrefsEditor replaces the interactive preferences form.
func WithPrefsEditor(edit PrefsEditor) Option {
	return func(app *CLI) { app.editPrefs = edit }
}

// CLI is the canaveral command tree.
type CLI struct {
	app        *cli.Command
	verbose    bool
	json       bool
	quiet      bool
	plain      bool
	color      string
	configPath string

	cfg      config.Config
	cfgPath  string
	closeLog func() error

	stdout      io.Writer
	services    ServiceFactory
	interactive InteractiveFunc
	logInit     LogInitFunc
	editPrefs   PrefsEditor
	lock        LockFunc
}

// App returns the CLI with production wiring.
func App() *CLI {
	return NewCLI()
}

// NewCLI creates the command tree.
func NewCLI(opts ...Option) *CLI {
	app := &CLI{
		stdout:      os.Stdout,
		services:    NewServices,
		interactive: tui.Run,
		logInit:     logging.Init,
		editPrefs:   runPrefsForm,
	}

	for _, opt := range opts {
		opt(app)
	}

	app.app = &cli.Command{
		Name:    platform.AppName,
		Usage:   "A full screen application launcher for the terminal",
		Version: getVersion(),
		Suggest: true,
		Writer:  app.stdout,
		Description: `Finds the applications installed on this machine and shows them as a
paged grid. Type to search, use the arrow keys or the mouse to move, and
press Enter to launch.

COMMANDS:
  canaveral                 Open the launcher
  canaveral list --json     Print every discovered application
  canaveral launch Firefox  Start an application by name
  canaveral roots           Show where applications are searched for
  canaveral prefs           Edit preferences`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "preferences file",
				Sources:     cli.EnvVars(config.EnvConfigPath),
				Destination: &app.configPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "write debug logs to stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Destination: &app.quiet,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       colorAuto,
				Destination: &app.color,
			},
		},
		Before:   app.initConfig,
		After:    app.shutdown,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createListCommand(),
		app.createLaunchCommand(),
		app.createRootsCommand(),
		app.createPrefsCommand(),
		app.createVersionCommand(),
	}
}

// initConfig validates global flags, loads preferences and installs the
// logger. The interactive launcher owns the terminal, so it always logs to
// the rotating file.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	switch app.color {
	case colorAuto, colorAlways, colorNever:
	default:
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", nil)
	}

	switch app.color {
	case colorNever:
		_ = os.Setenv("NO_COLOR", "1")
	case colorAlways:
		_ = os.Unsetenv("NO_COLOR")
	}

	console.DefaultOutput.SetMode(app.plain, app.json)
	console.DefaultOutput.SetColor(app.color)

	app.cfgPath = config.ResolvePath(app.configPath)

	cfg, err := config.Load(app.cfgPath)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, "invalid preferences file "+app.cfgPath, err)
	}

	app.cfg = cfg.Normalize()

	sink := logging.SinkFile
	if app.verbose && cmd.Args().Present() {
		sink = logging.SinkStderr
	}

	app.closeLog = app.startLogging(sink)

	return ctx, nil
}

func (app *CLI) startLogging(sink logging.Sink) func() error {
	opts := logging.Options{
		Level:   app.cfg.Log.Level,
		File:    app.cfg.Log.File,
		Sink:    sink,
		Version: getVersion(),
	}
	if app.verbose {
		opts.Level = "debug"
	}

	closeFn, err := app.logInit(opts)
	if err == nil {
		return closeFn
	}

	console.DefaultOutput.Warningf("Logging disabled: %v", err)

	opts.Sink = logging.SinkNone

	closeFn, err = app.logInit(opts)
	if err != nil {
		return nil
	}

	return closeFn
}

func (app *CLI) shutdown(_ context.Context, _ *cli.Command) error {
	if app.closeLog == nil {
		return nil
	}

	closeFn := app.closeLog
	app.closeLog = nil

	if err := closeFn(); err != nil {
		slog.Debug("closing log failed", "error", err)
	}

	return nil
}

// defaultAction opens the launcher when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError,
			fmt.Sprintf("'%s' is not a canaveral command. See 'canaveral --help'.", cmd.Args().First()), nil)
	}

	if app.lock != nil {
		release, err := app.lock()
		if errors.Is(err, domain.ErrAlreadyRunning) {
			return domain.NewExitError(ExitGeneralError, "Another canaveral launcher is already running", err)
		}

		if err != nil {
			return domain.NewExitError(ExitSystemError, "Failed to acquire process lock", err)
		}

		defer release()
	}

	services, err := app.newServices(false)
	if err != nil {
		return err
	}

	err = app.interactive(ctx, tui.Options{
		Config:     app.cfg,
		ConfigPath: app.cfgPath,
		Catalog:    services.Catalog,
		Apps:       services.Launch,
		Reload:     services.Reloader(app.cfgPath),
		Logger:     slog.Default(),
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNoTerminal) {
		return domain.NewExitError(ExitGeneralError, "The launcher needs an interactive terminal. Try 'canaveral list' instead.", err)
	}

	if app.verbose {
		return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Failed to run launcher: %v", err), err)
	}

	return domain.NewExitError(ExitGeneralError, "Failed to run launcher", err)
}

func (app *CLI) newServices(dryRun bool) (*Services, error) {
	services, err := app.services(app.cfg, dryRun)
	if err == nil {
		return services, nil
	}

	if errors.Is(err, config.ErrInvalidConfig) {
		return nil, domain.NewExitError(ExitConfigError, "invalid preferences file "+app.cfgPath, err)
	}

	return nil, domain.NewExitError(ExitSystemError, "failed to set up discovery", err)
}

func (app *CLI) output() domain.OutputPort {
	format := cliAdapter.FormatFromFlags(app.json, app.plain)

	return cliAdapter.NewPrinter(app.stdout, format, app.quiet)
}

// getVersion returns the linker supplied version, then the module version.
func getVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}
