// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging configures the process wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/canaveral-launcher/canaveral/internal/platform"
)

// EnvLevel overrides the configured log level.
const EnvLevel = "CANAVERAL_LOG_LEVEL"

// Sink selects where log records go.
type Sink int

// Log sinks.
const (
	// SinkFile writes to a rotating file. The interactive launcher owns the
	// terminal, so this is the default.
	SinkFile Sink = iota
	// SinkStderr writes text records to stderr, for --verbose CLI runs.
	SinkStderr
	// SinkNone discards all records.
	SinkNone
)

// Options configures Init.
type Options struct {
	Level   string
	File    string
	Sink    Sink
	Version string
	// Stderr replaces os.Stderr for SinkStderr.
	Stderr io.Writer
}

// Rotation limits for the log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Init installs the default logger and returns a function that flushes and
// closes the sink.
func Init(opts Options) (func() error, error) {
	level := opts.Level
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}

	writer, closeFn, err := resolveWriter(opts)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: ParseLevel(level)})

	logger := slog.New(handler).With(
		slog.String("app", platform.AppName),
		slog.String("version", opts.Version),
	)

	slog.SetDefault(logger)

	return closeFn, nil
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolveWriter(opts Options) (io.Writer, func() error, error) {
	switch opts.Sink {
	case SinkNone:
		return io.Discard, func() error { return nil }, nil
	case SinkStderr:
		if opts.Stderr != nil {
			return opts.Stderr, func() error { return nil }, nil
		}

		return os.Stderr, func() error { return nil }, nil
	case SinkFile:
		path := strings.TrimSpace(opts.File)
		if path == "" {
			path = platform.LogFile()
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}

		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}

		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %d", opts.Sink)
	}
}
