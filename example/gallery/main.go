//go:build js

package main

import (
	"fmt"
	"os"

	"github.com/octoberswimmer/mascui/internal/gallery"
	"github.com/octoberswimmer/mascui/widget"
)

func main() {
	pgm := widget.NewProgram(gallery.New())
	if _, err := pgm.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
		os.Exit(1)
	}
}
