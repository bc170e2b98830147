// Package gallery is a demo application showing every widget.
package gallery

import (
	"fmt"

	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/css"
	"github.com/octoberswimmer/mascui/elem"
	"github.com/octoberswimmer/mascui/widget"
)

// Choice is one of the options of the radio group.
type Choice int

const (
	ChoiceSmall Choice = iota
	ChoiceMedium
	ChoiceLarge
)

func (c Choice) String() string {
	switch c {
	case ChoiceSmall:
		return "Small"
	case ChoiceMedium:
		return "Medium"
	case ChoiceLarge:
		return "Large"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

var choices = []Choice{ChoiceSmall, ChoiceMedium, ChoiceLarge}

// Toggled reports the new state of the "dark mode" checkbox.
type Toggled bool

// Selected reports the newly selected size.
type Selected Choice

// Notified reports the new state of the notifications checkbox.
type Notified bool

// Model is the gallery state.
type Model struct {
	Dark     bool
	Notify   bool
	Selected *Choice
}

// New returns a gallery with nothing selected.
func New() *Model {
	return &Model{}
}

func (m *Model) Init() mascui.Cmd {
	return mascui.SetWindowTitle("mascui gallery")
}

func (m *Model) Update(msg mascui.Msg) mascui.Cmd {
	switch msg := msg.(type) {
	case Toggled:
		m.Dark = bool(msg)
	case Notified:
		m.Notify = bool(msg)
	case Selected:
		c := Choice(msg)
		m.Selected = &c
	}
	return nil
}

func (m *Model) View() widget.Element {
	items := []widget.Element{
		widget.NewCheckbox(m.Dark, "Dark mode", func(b bool) mascui.Msg { return Toggled(b) }).
			ID("dark").
			Width(mascui.Fill()).
			Element(),
		widget.NewCheckbox(m.Notify, "Notifications", func(b bool) mascui.Msg { return b }).
			ID("notify").
			Element().
			Map(func(msg mascui.Msg) mascui.Msg { return Notified(msg.(bool)) }),
	}
	for _, c := range choices {
		items = append(items, widget.NewRadio(c, c.String(), m.Selected, onSelect).
			Name("size").
			ID(fmt.Sprintf("size-%d", int(c))).
			Element())
	}
	return widget.NewElement(column{padding: 20, spacing: 10, items: items})
}

func onSelect(c Choice) mascui.Msg { return Selected(c) }

type column struct {
	padding, spacing uint16
	items            []widget.Element
}

func (c column) Node(bus mascui.Bus, sheet *css.StyleSheet) *mascui.HTML {
	var children mascui.List
	for _, item := range c.items {
		children = append(children, item.Node(bus, sheet))
	}
	return elem.Div(
		mascui.Markup(mascui.Class(
			sheet.Insert(css.Column()),
			sheet.Insert(css.Padding(c.padding)),
			sheet.Insert(css.Spacing(c.spacing)),
		)),
		children,
	)
}
