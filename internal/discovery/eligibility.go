// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// DefaultExcludePatterns match helper executables nested inside other bundles.
var DefaultExcludePatterns = []string{
	"**/Contents/Library/LoginItems/**",
	"**/Contents/XPCServices/**",
}

// Verdict is the outcome of an eligibility check.
type Verdict int

// Eligibility verdicts, in evaluation order.
const (
	Eligible Verdict = iota
	ExcludedSelf
	ExcludedBackgroundOnly
	ExcludedUIElement
	ExcludedHidden
	ExcludedPackageType
	ExcludedHelperPath
	ExcludedNotAllowListed
)

func (v Verdict) String() string {
	switch v {
	case Eligible:
		return "eligible"
	case ExcludedSelf:
		return "self"
	case ExcludedBackgroundOnly:
		return "background-only"
	case ExcludedUIElement:
		return "ui-element"
	case ExcludedHidden:
		return "hidden"
	case ExcludedPackageType:
		return "package-type"
	case ExcludedHelperPath:
		return "helper-path"
	case ExcludedNotAllowListed:
		return "not-allow-listed"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// PolicyOptions configures a Policy.
type PolicyOptions struct {
	SelfIdentifier string
	SelfName       string
	// Exclude patterns are matched against the slash separated bundle path.
	Exclude []string
	// Roots with a non-empty AllowList restrict the bundles beneath them.
	Roots []Root
}

type restrictedRoot struct {
	prefixes []string
	allow    []string
}

// Policy decides whether a bundle belongs in the catalog.
type Policy struct {
	selfIdentifier string
	selfName       string
	excludes       []glob.Glob
	restricted     []restrictedRoot
}

// NewPolicy compiles the exclude patterns and resolves restricted roots.
func NewPolicy(opts PolicyOptions) (*Policy, error) {
	policy := &Policy{
		selfIdentifier: opts.SelfIdentifier,
		selfName:       opts.SelfName,
	}

	for _, pattern := range opts.Exclude {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		policy.excludes = append(policy.excludes, compiled)
	}

	for _, root := range opts.Roots {
		if len(root.AllowList) == 0 {
			continue
		}

		restricted := restrictedRoot{
			prefixes: []string{withSlash(filepath.Clean(root.Path))},
			allow:    root.AllowList,
		}

		if resolved, err := filepath.EvalSymlinks(root.Path); err == nil && resolved != root.Path {
			restricted.prefixes = append(restricted.prefixes, withSlash(resolved))
		}

		policy.restricted = append(policy.restricted, restricted)
	}

	return policy, nil
}

// Evaluate applies the rules in order and returns the first exclusion, or
// Eligible.
func (p *Policy) Evaluate(meta *domain.BundleMetadata, path string) Verdict {
	name := DisplayName(meta, path)

	switch {
	case p.isSelf(meta, name):
		return ExcludedSelf
	case meta.BackgroundOnly:
		return ExcludedBackgroundOnly
	case meta.UIElement:
		return ExcludedUIElement
	case !meta.Visible():
		return ExcludedHidden
	case !meta.IsApplicationType():
		return ExcludedPackageType
	case p.isHelperPath(path):
		return ExcludedHelperPath
	case !p.isAllowListed(path, name):
		return ExcludedNotAllowListed
	default:
		return Eligible
	}
}

// IsEligible reports whether the bundle at path should be shown.
func (p *Policy) IsEligible(meta *domain.BundleMetadata, path string) bool {
	return p.Evaluate(meta, path) == Eligible
}

func (p *Policy) isSelf(meta *domain.BundleMetadata, name string) bool {
	if p.selfIdentifier != "" && meta.Identifier == p.selfIdentifier {
		return true
	}

	return p.selfName != "" && name == p.selfName
}

func (p *Policy) isHelperPath(path string) bool {
	slashed := filepath.ToSlash(path)

	for _, pattern := range p.excludes {
		if pattern.Match(slashed) {
			return true
		}
	}

	return false
}

func (p *Policy) isAllowListed(path, name string) bool {
	for _, root := range p.restricted {
		for _, prefix := range root.prefixes {
			if strings.HasPrefix(path, prefix) {
				return slices.Contains(root.allow, name)
			}
		}
	}

	return true
}

// DisplayName is the metadata name when present, otherwise the bundle file
// name without its extension.
func DisplayName(meta *domain.BundleMetadata, path string) string {
	if meta != nil && strings.TrimSpace(meta.Name) != "" {
		return strings.TrimSpace(meta.Name)
	}

	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func withSlash(path string) string {
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return path
	}

	return path + string(filepath.Separator)
}
