package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseWorkspaceModules(t *testing.T) {
	dir := t.TempDir()
	work := filepath.Join(dir, "go.work")
	writeFile(t, work, `go 1.24

use (
	./app // the app
	// ./disabled
	./lib
)

use ./tools
`)
	modules, err := parseWorkspaceModules(work)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "app"),
		filepath.Join(dir, "lib"),
		filepath.Join(dir, "tools"),
	}, modules)
}

func TestShouldDisableWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.work"), "go 1.24\n\nuse ./app\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other"), 0o755))

	require.Equal(t, filepath.Join(dir, "go.work"), findGoWork(filepath.Join(dir, "app")))
	require.False(t, shouldDisableWorkspace(filepath.Join(dir, "app")))
	require.True(t, shouldDisableWorkspace(filepath.Join(dir, "other")))
}

func TestShouldDisableWorkspaceWithoutWorkFile(t *testing.T) {
	dir := t.TempDir()
	if findGoWork(dir) != "" {
		t.Skip("a go.work file exists above the temp dir")
	}
	require.False(t, shouldDisableWorkspace(dir))
}

func TestParseWorkspaceModulesRejectsBadFile(t *testing.T) {
	work := filepath.Join(t.TempDir(), "go.work")
	writeFile(t, work, "use (\n")
	_, err := parseWorkspaceModules(work)
	require.Error(t, err)
}
