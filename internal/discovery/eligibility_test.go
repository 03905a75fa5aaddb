// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaveral-launcher/canaveral/internal/discovery"
	"github.com/canaveral-launcher/canaveral/internal/domain"
)

func newPolicy(t *testing.T) *discovery.Policy {
	t.Helper()

	policy, err := discovery.NewPolicy(discovery.PolicyOptions{
		SelfIdentifier: "org.canaveral.launcher",
		SelfName:       "Canaveral",
		Exclude:        discovery.DefaultExcludePatterns,
		Roots: []discovery.Root{
			{Path: "/Applications"},
			{Path: discovery.CoreServicesRoot, AllowList: discovery.DefaultCoreServicesAllowList},
		},
	})
	require.NoError(t, err)

	return policy
}

func app(id string) *domain.BundleMetadata {
	return &domain.BundleMetadata{Kind: domain.KindAppBundle, Identifier: id, PackageType: "APPL"}
}

func TestPolicyEvaluate(t *testing.T) {
	t.Parallel()

	policy := newPolicy(t)

	tests := []struct {
		name string
		meta *domain.BundleMetadata
		path string
		want discovery.Verdict
	}{
		{"regular app", app("com.example.mail"), "/Applications/Mail.app", discovery.Eligible},
		{"self by identifier", app("org.canaveral.launcher"), "/Applications/Rocket.app", discovery.ExcludedSelf},
		{"self by name", app("other"), "/Applications/Canaveral.app", discovery.ExcludedSelf},
		{
			"background only",
			&domain.BundleMetadata{Identifier: "x", PackageType: "APPL", BackgroundOnly: true},
			"/Applications/Agent.app", discovery.ExcludedBackgroundOnly,
		},
		{
			"ui element",
			&domain.BundleMetadata{Identifier: "x", PackageType: "APPL", UIElement: true},
			"/Applications/Menu.app", discovery.ExcludedUIElement,
		},
		{
			"hidden from launcher",
			&domain.BundleMetadata{Identifier: "x", PackageType: "APPL", VisibleInLauncher: domain.Bool(false)},
			"/Applications/Hidden.app", discovery.ExcludedHidden,
		},
		{
			"explicitly visible",
			&domain.BundleMetadata{Identifier: "x", PackageType: "APPL", VisibleInLauncher: domain.Bool(true)},
			"/Applications/Shown.app", discovery.Eligible,
		},
		{
			"missing package type",
			&domain.BundleMetadata{Identifier: "x"},
			"/Applications/Old.app", discovery.Eligible,
		},
		{
			"wrong package type",
			&domain.BundleMetadata{Identifier: "x", PackageType: "BNDL"},
			"/Applications/Plugin.app", discovery.ExcludedPackageType,
		},
		{"login item helper", app("h"), "/Applications/Mail.app/Contents/Library/LoginItems/Helper.app", discovery.ExcludedHelperPath},
		{"xpc service", app("h"), "/Applications/Mail.app/Contents/XPCServices/Render.app", discovery.ExcludedHelperPath},
		{"allow listed core service", app("com.apple.finder"), "/System/Library/CoreServices/Finder.app", discovery.Eligible},
		{"core service not allow listed", app("com.apple.dock"), "/System/Library/CoreServices/Dock.app", discovery.ExcludedNotAllowListed},
		{
			"desktop application",
			&domain.BundleMetadata{Kind: domain.KindDesktopEntry, Identifier: "e.desktop", Name: "Editor", PackageType: "Application"},
			"/usr/share/applications/e.desktop", discovery.Eligible,
		},
		{
			"desktop link",
			&domain.BundleMetadata{Kind: domain.KindDesktopEntry, Identifier: "l.desktop", Name: "Link", PackageType: "Link"},
			"/usr/share/applications/l.desktop", discovery.ExcludedPackageType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := policy.Evaluate(tt.meta, tt.path)
			assert.Equal(t, tt.want, got, "got %s", got)
			assert.Equal(t, tt.want == discovery.Eligible, policy.IsEligible(tt.meta, tt.path))
		})
	}
}

func TestPolicyRuleOrder(t *testing.T) {
	t.Parallel()

	policy := newPolicy(t)

	meta := &domain.BundleMetadata{Identifier: "org.canaveral.launcher", BackgroundOnly: true, PackageType: "BNDL"}

	assert.Equal(t, discovery.ExcludedSelf, policy.Evaluate(meta, "/System/Library/CoreServices/X.app"))
}

func TestNewPolicyRejectsBadPattern(t *testing.T) {
	t.Parallel()

	_, err := discovery.NewPolicy(discovery.PolicyOptions{Exclude: []string{"[unclosed"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Mail", discovery.DisplayName(app("x"), "/Applications/Mail.app"))
	assert.Equal(t, "Text Editor", discovery.DisplayName(&domain.BundleMetadata{Name: " Text Editor "}, "/a/editor.desktop"))
	assert.Equal(t, "editor", discovery.DisplayName(nil, "/a/editor.desktop"))
}

func TestVerdictString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "helper-path", discovery.ExcludedHelperPath.String())
	assert.Equal(t, "verdict(99)", discovery.Verdict(99).String())
}
