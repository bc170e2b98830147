package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// browserCommand returns the command line that opens uri on goos.
func browserCommand(goos, uri string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{"open", uri}, nil
	case "linux", "freebsd", "openbsd":
		return []string{"xdg-open", uri}, nil
	case "windows":
		// cmd treats & as a command separator.
		return []string{"cmd", "/c", "start", strings.ReplaceAll(uri, "&", "^&")}, nil
	}
	return nil, fmt.Errorf("cannot open a browser on %s", goos)
}

// open opens uri in the default browser without waiting for it.
func open(uri string) error {
	argv, err := browserCommand(runtime.GOOS, uri)
	if err != nil {
		return err
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}
