package prop_test

import (
	"testing"

	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/elem"
	"github.com/octoberswimmer/mascui/prop"
	"github.com/stretchr/testify/require"
)

func TestInputAttributes(t *testing.T) {
	got := elem.Input(mascui.Markup(
		prop.Type(prop.TypeRadio),
		prop.ID("a"),
		prop.Name("group"),
		prop.Value("1"),
		prop.Checked(true),
		prop.Disabled(false),
	)).String()
	require.Equal(t, `<input type="radio" id="a" name="group" value="1" checked/>`, got)
}

func TestLabelFor(t *testing.T) {
	require.Equal(t, `<label for="x"></label>`, elem.Label(mascui.Markup(prop.For("x"))).String())
}
