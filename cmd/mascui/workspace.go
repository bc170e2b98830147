package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/mod/modfile"
)

// findGoWork returns the nearest go.work at or above dir, or "".
func findGoWork(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for ; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, "go.work")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		if filepath.Dir(dir) == dir {
			return ""
		}
	}
}

// parseWorkspaceModules returns the absolute module directories listed in the
// use directives of workFile.
func parseWorkspaceModules(workFile string) ([]string, error) {
	data, err := os.ReadFile(workFile)
	if err != nil {
		return nil, err
	}
	wf, err := modfile.ParseWork(workFile, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", workFile, err)
	}
	dir := filepath.Dir(workFile)
	modules := make([]string, 0, len(wf.Use))
	for _, use := range wf.Use {
		path := filepath.FromSlash(use.Path)
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		modules = append(modules, path)
	}
	return modules, nil
}

// shouldDisableWorkspace reports whether a go.work above targetDir should be
// ignored because it does not list targetDir.
func shouldDisableWorkspace(targetDir string) bool {
	workFile := findGoWork(targetDir)
	if workFile == "" {
		return false
	}
	modules, err := parseWorkspaceModules(workFile)
	if err != nil {
		return false
	}
	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return false
	}
	return !slices.ContainsFunc(modules, func(m string) bool {
		return filepath.Clean(m) == absTarget
	})
}

// buildEnv returns the environment for go commands run against appDir.
func buildEnv(appDir string, extra ...string) []string {
	env := append(os.Environ(), extra...)
	if shouldDisableWorkspace(appDir) {
		env = append(env, "GOWORK=off")
	}
	return env
}
