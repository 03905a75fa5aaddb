// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/platform"
	"github.com/urfave/cli/v3"
)

func (app *CLI) createListCommand() *cli.Command {
	var query string

	return &cli.Command{
		Name:  "list",
		Usage: "Print the discovered applications",
		Description: `Runs discovery once and prints every application the launcher would show,
sorted by name.

EXAMPLES:
  canaveral list
  canaveral list --query term
  canaveral list --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Usage:       "only show applications whose name contains this text",
				Destination: &query,
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.runList(ctx, query)
		},
	}
}

func (app *CLI) runList(ctx context.Context, query string) error {
	services, err := app.newServices(false)
	if err != nil {
		return err
	}

	start := time.Now()
	snap := services.Catalog.Refresh(ctx)

	entries := snap.Catalog.Filter(query)

	result := domain.ListResult{
		Applications: entries,
		Total:        len(entries),
		Query:        strings.TrimSpace(query),
		Duration:     time.Since(start),
		Timestamp:    snap.Catalog.BuiltAt(),
	}

	if err := app.output().Catalog(result); err != nil {
		return domain.NewExitError(ExitGeneralError, "failed to write output", err)
	}

	return nil
}

func (app *CLI) createLaunchCommand() *cli.Command {
	var dryRun bool

	return &cli.Command{
		Name:      "launch",
		Usage:     "Start an application by name",
		ArgsUsage: "NAME",
		Description: `Starts the application whose name matches NAME. An exact, case-insensitive
match wins; otherwise NAME must match part of exactly one name.

EXAMPLES:
  canaveral launch firefox
  canaveral launch "Visual Studio Code"
  canaveral launch --dry-run term`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "resolve the application without starting it",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.runLaunch(ctx, strings.Join(cmd.Args().Slice(), " "), dryRun)
		},
	}
}

func (app *CLI) runLaunch(ctx context.Context, name string, dryRun bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewExitError(ExitUsageError, "launch needs an application name. See 'canaveral launch --help'.", ErrInvalidArgument)
	}

	services, err := app.newServices(dryRun)
	if err != nil {
		return err
	}

	snap := services.Catalog.Refresh(ctx)

	entry, err := snap.Catalog.Find(name)

	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return domain.NewExitError(ExitNotFoundError, domain.FormatErrorMessage(err, name, app.verbose), err)
	case errors.Is(err, domain.ErrAmbiguousName):
		return domain.NewExitError(ExitUsageError, domain.FormatErrorMessage(err, name, app.verbose), err)
	case err != nil:
		return domain.NewExitError(ExitGeneralError, "failed to resolve "+name, err)
	}

	if err := services.Launch.Launch(ctx, entry); err != nil {
		return domain.NewExitError(ExitLaunchError, domain.FormatErrorMessage(err, entry.DisplayName, app.verbose), err)
	}

	services.Launch.Settle(ctx)

	message := "Launched " + entry.DisplayName
	if dryRun {
		message = fmt.Sprintf("Would launch %s (%s)", entry.DisplayName, entry.LaunchTarget)
	}

	_ = app.output().Success(message, map[string]any{
		"name":     entry.DisplayName,
		"identity": entry.Identity,
		"path":     entry.LaunchTarget,
		"dry_run":  dryRun,
	})

	return nil
}

func (app *CLI) createRootsCommand() *cli.Command {
	return &cli.Command{
		Name:  "roots",
		Usage: "Show where applications are searched for",
		Action: func(_ context.Context, _ *cli.Command) error {
			return app.runRoots()
		},
	}
}

func (app *CLI) runRoots() error {
	services, err := app.newServices(false)
	if err != nil {
		return err
	}

	infos := make([]domain.RootInfo, 0, len(services.Roots))
	for _, root := range services.Roots {
		infos = append(infos, domain.RootInfo{
			Path:      root.Path,
			Exists:    platform.IsDir(root.Path),
			AllowList: root.AllowList,
		})
	}

	if err := app.output().Roots(infos); err != nil {
		return domain.NewExitError(ExitGeneralError, "failed to write output", err)
	}

	return nil
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			version := getVersion()

			_ = app.output().Success(version, map[string]string{"version": version})

			return nil
		},
	}
}
