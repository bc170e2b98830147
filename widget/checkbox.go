package widget

import (
	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/css"
	"github.com/octoberswimmer/mascui/elem"
	"github.com/octoberswimmer/mascui/event"
	"github.com/octoberswimmer/mascui/prop"
	"github.com/octoberswimmer/mascui/style"
)

// Checkbox is a box that can be checked.
//
//	type Toggled bool
//
//	widget.NewCheckbox(isChecked, "Toggle me!", func(b bool) mascui.Msg {
//		return Toggled(b)
//	})
type Checkbox struct {
	isChecked bool
	onToggle  func(bool) mascui.Msg
	label     string
	id        string
	width     mascui.Length
	style     CheckboxStyleSheet
}

// NewCheckbox returns a checkbox showing isChecked. Clicking it publishes
// onToggle applied to the new state.
func NewCheckbox(isChecked bool, label string, onToggle func(bool) mascui.Msg) Checkbox {
	return Checkbox{
		isChecked: isChecked,
		onToggle:  onToggle,
		label:     label,
		width:     mascui.Shrink(),
		style:     DefaultCheckboxStyle{},
	}
}

// Width sets the width of the checkbox row.
func (c Checkbox) Width(width mascui.Length) Checkbox {
	c.width = width
	return c
}

// Style sets the style sheet of the checkbox.
func (c Checkbox) Style(style CheckboxStyleSheet) Checkbox {
	c.style = style
	return c
}

// ID sets the id shared by the input and its label.
func (c Checkbox) ID(id string) Checkbox {
	c.id = id
	return c
}

// Node implements Widget.
func (c Checkbox) Node(bus mascui.Bus, sheet *css.StyleSheet) *mascui.HTML {
	row := sheet.Insert(css.Row())
	spacing := sheet.Insert(css.Spacing(5))

	onToggle, isChecked := c.onToggle, c.isChecked

	return elem.Label(
		mascui.Markup(
			prop.For(c.id),
			mascui.Class(row, spacing),
			mascui.Style("width", css.Length(c.width)),
			style.AlignItems(style.AlignCenter),
		),
		// TODO: render c.style on the input once checkboxes draw their own box.
		elem.Input(
			mascui.Markup(
				prop.Type(prop.TypeCheckbox),
				prop.ID(c.id),
				prop.Checked(isChecked),
				event.Click(func(*mascui.Event) {
					if onToggle != nil {
						bus.Publish(onToggle(!isChecked))
					}
					bus.ScheduleRender()
				}),
			),
		),
		mascui.Text(c.label),
	)
}

// Element wraps the checkbox for composition.
func (c Checkbox) Element() Element {
	return NewElement(c)
}
