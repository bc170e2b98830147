package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MASCUI_CONFIG", "")

	cfg, err := loadConfig(newServeCmd())
	require.NoError(t, err)
	require.Equal(t, Config{Port: 8000, Dir: ".", Open: true, Out: "dist"}, cfg)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.toml")
	writeFile(t, file, "port = 9100\nout = \"public\"\nopen = false\n")
	t.Setenv("MASCUI_CONFIG", file)
	t.Setenv("MASCUI_PORT", "9200")

	cmd := newServeCmd()
	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, 9200, cfg.Port, "environment overrides file")
	require.Equal(t, "public", cfg.Out)
	require.False(t, cfg.Open)

	require.NoError(t, cmd.Flags().Set("port", "9300"))
	cfg, err = loadConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, 9300, cfg.Port, "flag overrides environment")
}

func TestLoadConfigWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mascui.toml"), "dir = \"app\"\n")
	t.Chdir(dir)
	t.Setenv("MASCUI_CONFIG", "")

	cfg, err := loadConfig(newBuildCmd())
	require.NoError(t, err)
	require.Equal(t, "app", cfg.Dir)
	require.Equal(t, "app", cfg.appDir(nil))
	require.Equal(t, "other", cfg.appDir([]string{"other"}))
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("MASCUI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := loadConfig(newServeCmd())
	require.Error(t, err)
}
