//go:build !js

package mascui

import (
	"fmt"

	"github.com/gost-dom/browser/dom"
	ev "github.com/gost-dom/browser/dom/event"
	"github.com/gost-dom/browser/html"
)

// Body inspects and drives the document body of a gost-dom window.
type Body struct {
	win html.Window
}

// InnerHTML returns the serialized content of the body.
func (b Body) InnerHTML() string {
	return b.win.Document().Body().InnerHTML()
}

func (b Body) find(selector string) (dom.Element, error) {
	el, err := b.win.Document().QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("gostdom: querySelector(%q): %w", selector, err)
	}
	if el == nil {
		return nil, fmt.Errorf("gostdom: nothing matches %q", selector)
	}
	return el, nil
}

// Attr returns an attribute of the first element matching selector and
// whether the attribute is present.
func (b Body) Attr(selector, name string) (string, bool, error) {
	el, err := b.find(selector)
	if err != nil {
		return "", false, err
	}
	val, ok := el.GetAttribute(name)
	return val, ok, nil
}

// Dispatch fires a non-bubbling event of the given type at the first element
// matching selector.
func (b Body) Dispatch(selector, eventType string) error {
	el, err := b.find(selector)
	if err != nil {
		return err
	}
	WrapGostNode(el).Call("dispatchEvent", &gostEvent{ev: &ev.Event{Type: eventType}})
	return nil
}

// RenderComponentInto mounts m into the body of win and re-renders after
// every message sent from its listeners.
func RenderComponentInto(win html.Window, m Model) (Body, error) {
	body, _, err := RenderComponentIntoWithSend(win, m)
	return body, err
}

// RenderComponentIntoWithSend is RenderComponentInto that also returns the
// send function the listeners use.
//
// Messages are handled synchronously: send runs Update and re-renders before
// returning. A render request published through a Bus re-renders without
// calling Update. Commands returned by Update are not run.
func RenderComponentIntoWithSend(win html.Window, m Model) (Body, func(Msg), error) {
	UseGostDOM(win)
	if win.Document().Body() == nil {
		return Body{}, nil, fmt.Errorf("gostdom: document has no <body>")
	}
	model := m
	var send func(Msg)
	send = func(msg Msg) {
		if !IsRenderRequest(msg) {
			model, _ = model.Update(msg)
		}
		_ = RenderIntoNode(WrapGostNode(win.Document().Body()), model, send)
	}
	if err := RenderIntoNode(WrapGostNode(win.Document().Body()), model, send); err != nil {
		return Body{}, nil, err
	}
	return Body{win: win}, send, nil
}
