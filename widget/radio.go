package widget

import (
	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/css"
	"github.com/octoberswimmer/mascui/elem"
	"github.com/octoberswimmer/mascui/event"
	"github.com/octoberswimmer/mascui/prop"
	"github.com/octoberswimmer/mascui/style"
)

// Radio is a circular button representing one choice of a group.
//
//	type Choice int
//
//	const (
//		A Choice = iota
//		B
//	)
//
//	type Selected Choice
//
//	selected := A
//	onSelect := func(c Choice) mascui.Msg { return Selected(c) }
//	widget.NewRadio(A, "This is A", &selected, onSelect).Name("choice")
//	widget.NewRadio(B, "This is B", &selected, onSelect).Name("choice")
type Radio struct {
	isSelected bool
	onClick    mascui.Msg
	label      string
	id         string
	name       string
	style      RadioStyleSheet
}

// NewRadio returns a radio button for value. It is selected when selected
// is non-nil and equal to value. The message published on click is computed
// here, once.
func NewRadio[V comparable](value V, label string, selected *V, f func(V) mascui.Msg) Radio {
	return Radio{
		isSelected: selected != nil && *selected == value,
		onClick:    f(value),
		label:      label,
		style:      DefaultRadioStyle{},
	}
}

// Style sets the style sheet of the radio button.
func (r Radio) Style(style RadioStyleSheet) Radio {
	r.style = style
	return r
}

// Name sets the group name. The browser keeps at most one radio of a group
// selected.
func (r Radio) Name(name string) Radio {
	r.name = name
	return r
}

// ID sets the id shared by the input and its label.
func (r Radio) ID(id string) Radio {
	r.id = id
	return r
}

// Node implements Widget. The style sheet is not used.
func (r Radio) Node(bus mascui.Bus, _ *css.StyleSheet) *mascui.HTML {
	onClick := r.onClick

	// TODO: derive these styles from r.style.
	return elem.Label(
		mascui.Markup(
			style.Display(style.DisplayBlock),
			style.FontSize(style.Px(20)),
			prop.For(r.id),
		),
		elem.Input(
			mascui.Markup(
				prop.Type(prop.TypeRadio),
				prop.ID(r.id),
				prop.Name(r.name),
				style.MarginRight(style.Px(10)),
				prop.Checked(r.isSelected),
				event.Click(func(*mascui.Event) {
					bus.Publish(onClick)
				}),
			),
		),
		mascui.Text(r.label),
	)
}

// Element wraps the radio button for composition.
func (r Radio) Element() Element {
	return NewElement(r)
}
