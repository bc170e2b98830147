package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 500 * time.Millisecond

// watchRoots returns appDir plus every local module directory it depends on.
func watchRoots(appDir string) []string {
	roots := []string{appDir}

	gomodcache, err := exec.Command("go", "env", "GOMODCACHE").Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting GOMODCACHE: %v\n", err)
		return roots
	}
	list := exec.Command("go", "list", "-C", appDir, "-m", "-mod=readonly", "-f", "{{.Dir}}", "all")
	list.Env = buildEnv(appDir)
	out, err := list.Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing modules: %v\n", err)
		return roots
	}
	return append(roots, localModules(string(out), strings.TrimSpace(string(gomodcache)))...)
}

// localModules filters `go list -m` output down to directories outside the
// module cache.
func localModules(listOutput, gomodcache string) []string {
	var dirs []string
	for _, line := range strings.Split(strings.TrimSpace(listOutput), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || (gomodcache != "" && strings.HasPrefix(line, gomodcache)) {
			continue
		}
		dirs = append(dirs, line)
	}
	return dirs
}

// isSourceChange reports whether ev should trigger a rebuild.
func isSourceChange(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Ext(ev.Name) {
	case ".go", ".mod", ".sum":
		return true
	}
	return false
}

// watchFiles watches the app and its local modules and calls onRebuild once
// changes settle.
func watchFiles(appDir string, onRebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error setting up file watcher: %w", err)
	}
	defer watcher.Close()

	seen := make(map[string]bool)
	for _, root := range watchRoots(appDir) {
		if seen[root] {
			continue
		}
		seen[root] = true
		err := filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if info.IsDir() {
				if watchErr := watcher.Add(path); watchErr != nil {
					fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", path, watchErr)
				}
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error walking %s for file watching: %v\n", root, err)
		}
	}

	return debounce(watcher.Events, watcher.Errors, debounceDelay, onRebuild)
}

// debounce calls onRebuild once no source change has arrived for delay.
func debounce(events <-chan fsnotify.Event, errs <-chan error, delay time.Duration, onRebuild func() error) error {
	timer := time.NewTimer(delay)
	timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !isSourceChange(ev) {
				continue
			}
			fmt.Printf("File changed (%s), scheduling rebuild...\n", ev.Name)
			// Reset needs no drain with Go 1.23 timers.
			timer.Reset(delay)
		case <-timer.C:
			if err := onRebuild(); err != nil {
				fmt.Fprintf(os.Stderr, "Error during rebuild: %v\n", err)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
