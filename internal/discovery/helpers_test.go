// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package discovery_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// tempDir returns a symlink free temporary directory.
func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

// plistXML renders an Info.plist with the given raw value fragments.
func plistXML(entries map[string]string) string {
	var body strings.Builder

	for key, value := range entries {
		fmt.Fprintf(&body, "\t<key>%s</key>\n\t%s\n", key, value)
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
` + body.String() + `</dict>
</plist>
`
}

// makeApp creates dir/name.app with an Info.plist built from entries.
func makeApp(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()

	bundle := filepath.Join(dir, name+".app")
	contents := filepath.Join(bundle, "Contents")

	require.NoError(t, os.MkdirAll(filepath.Join(contents, "MacOS"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contents, "Info.plist"), []byte(plistXML(entries)), 0o600))

	return bundle
}

// appID is the common Info.plist fragment for a regular application.
func appID(identifier string) map[string]string {
	return map[string]string{
		"CFBundleIdentifier":  "<string>" + identifier + "</string>",
		"CFBundlePackageType": "<string>APPL</string>",
	}
}

func writeDesktop(t *testing.T, dir, file, body string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}
