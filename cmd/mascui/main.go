// Command mascui builds, serves and renders mascui applications.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mascui",
		Short:        "Develop mascui applications",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newBuildCmd(), newRenderCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
