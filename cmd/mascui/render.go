package main

import (
	"fmt"

	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/internal/gallery"
	"github.com/octoberswimmer/mascui/widget"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the widget gallery as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			html := mascui.RenderString(widget.NewModel(gallery.New()))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
}
