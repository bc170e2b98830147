package style_test

import (
	"testing"

	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/elem"
	"github.com/octoberswimmer/mascui/style"
	"github.com/stretchr/testify/require"
)

func TestDeclarationsJoinInOrder(t *testing.T) {
	got := elem.Div(mascui.Markup(
		style.Display(style.DisplayFlex),
		style.Width(style.Px(120)),
		style.AlignItems(style.AlignCenter),
		style.MarginRight(style.Px(4)),
		style.FontSize("1em"),
	)).String()
	require.Equal(t,
		`<div style="display: flex; width: 120px; align-items: center; margin-right: 4px; font-size: 1em"></div>`,
		got)
}
