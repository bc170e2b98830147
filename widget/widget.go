// Package widget provides declarative controls rendered through mascui.
//
// A widget is a plain value built with chained setters. Rendering turns it
// into a virtual node, registering any layout rules it needs in the style
// sheet of the current render pass and wiring DOM events to a mascui.Bus.
package widget

import (
	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/css"
)

// Widget is anything that can render itself into a node for one render pass.
type Widget interface {
	Node(bus mascui.Bus, sheet *css.StyleSheet) *mascui.HTML
}

// Element is a type-erased widget, ready to be composed into a view.
type Element struct {
	widget Widget
}

// NewElement wraps w.
func NewElement(w Widget) Element {
	return Element{widget: w}
}

// Node renders the wrapped widget. The zero Element renders nothing.
func (e Element) Node(bus mascui.Bus, sheet *css.StyleSheet) *mascui.HTML {
	if e.widget == nil {
		return nil
	}
	return e.widget.Node(bus, sheet)
}

// Map returns an Element whose published messages are passed through f
// first. It lets a view embed elements built for a different message type.
func (e Element) Map(f func(mascui.Msg) mascui.Msg) Element {
	return Element{widget: mapped{inner: e, f: f}}
}

type mapped struct {
	inner Element
	f     func(mascui.Msg) mascui.Msg
}

func (m mapped) Node(bus mascui.Bus, sheet *css.StyleSheet) *mascui.HTML {
	return m.inner.Node(bus.Map(m.f), sheet)
}
