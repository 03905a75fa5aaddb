// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors of the launcher.
var (
	ErrMetadataUnreadable = errors.New("bundle metadata unreadable")
	ErrNotABundle         = errors.New("not an application bundle")
	ErrEntryNotFound      = errors.New("application not found")
	ErrAmbiguousName      = errors.New("application name is ambiguous")
	ErrLaunchFailed       = errors.New("launch failed")
	ErrNoLaunchCommand    = errors.New("no launch command")
	ErrNoTerminal         = errors.New("launcher requires a terminal environment")
	ErrAlreadyRunning     = errors.New("another launcher instance is already running")
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Explanation is the user facing account of a failed command.
type Explanation struct {
	Summary string
	Hints   []string
	// Details asks for the underlying error text to be shown as well.
	Details bool
}

// explainRule matches an error by sentinel first and by message text
// second. alwaysDetail forces the underlying error into the output.
type explainRule struct {
	sentinel     error
	fragments    []string
	alwaysDetail bool
	explain      func(name string) (summary string, hints []string)
}

//nolint:gochecknoglobals
var explainRules = []explainRule{
	{
		sentinel:     ErrAmbiguousName,
		alwaysDetail: true,
		explain: func(name string) (string, []string) {
			return fmt.Sprintf("More than one application matches '%s'", name),
				[]string{"Use the full application name", "Run 'canaveral list --query " + name + "' to see matches"}
		},
	},
	{
		sentinel:  ErrEntryNotFound,
		fragments: []string{"not found", "no such"},
		explain: func(name string) (string, []string) {
			if name == "" {
				return "Application not found", []string{"Run 'canaveral roots' to check the discovery locations"}
			}

			return fmt.Sprintf("Application '%s' not found", name),
				[]string{"Check the application name spelling", "Run 'canaveral list' to see discovered applications"}
		},
	},
	{
		fragments: []string{"permission", "denied"},
		explain: func(string) (string, []string) {
			return "Permission denied", []string{"Check that the application is executable by your user"}
		},
	},
	{
		sentinel: ErrNoLaunchCommand,
		explain: func(string) (string, []string) {
			return "The application does not declare how to start it", []string{"Check the Exec line of the desktop entry"}
		},
	},
	{
		sentinel:  ErrLaunchFailed,
		fragments: []string{"executable file not found", "exec:"},
		explain: func(string) (string, []string) {
			return "Could not start the application", []string{"Run with --verbose for more details", "Check the launcher log file"}
		},
	},
	{
		sentinel: ErrNoTerminal,
		explain: func(string) (string, []string) {
			return "The interactive launcher needs a terminal", []string{"Use 'canaveral list' or 'canaveral launch NAME' from scripts"}
		},
	},
}

func (r explainRule) build(name string, verbose bool) Explanation {
	summary, hints := r.explain(name)

	return Explanation{Summary: summary, Hints: hints, Details: verbose || r.alwaysDetail}
}

// Explain turns err into a summary and hints for the application named
// name. Sentinel matches win over text matches.
func Explain(err error, name string, verbose bool) Explanation {
	if err == nil {
		return Explanation{}
	}

	for _, rule := range explainRules {
		if rule.sentinel != nil && errors.Is(err, rule.sentinel) {
			return rule.build(name, verbose)
		}
	}

	text := strings.ToLower(err.Error())
	for _, rule := range explainRules {
		if slices.ContainsFunc(rule.fragments, func(fragment string) bool {
			return strings.Contains(text, fragment)
		}) {
			return rule.build(name, verbose)
		}
	}

	return Explanation{
		Summary: "Operation failed",
		Hints:   []string{"Run with --verbose for more details"},
		Details: verbose,
	}
}

// FormatErrorMessage renders Explain(err, name, verbose) as text. Without
// verbose only the first hint is shown, inline.
func FormatErrorMessage(err error, name string, verbose bool) string {
	exp := Explain(err, name, verbose)

	lines := []string{exp.Summary}
	if exp.Details && err != nil {
		lines = append(lines, "  Technical details: "+err.Error())
	}

	switch {
	case len(exp.Hints) == 0:
	case verbose:
		lines = append(lines, "  Suggestions:")
		for _, hint := range exp.Hints {
			lines = append(lines, "    • "+hint)
		}
	default:
		lines[0] += " (" + exp.Hints[0] + ")"
	}

	return strings.Join(lines, "\n")
}
