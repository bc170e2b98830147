//go:build !js

package mascui

import "strings"

// Native builds have no browser. mascui still type-checks and renders to
// strings there, and UseGostDOM provides a document for the DOM code paths.

// SyscallJSValue stands in for syscall/js.Value outside WebAssembly.
type SyscallJSValue jsObject

// Event represents a DOM event.
type Event struct {
	Value  SyscallJSValue
	Target SyscallJSValue
}

func newEvent(jsEvent jsObject) *Event {
	return &Event{
		Value:  SyscallJSValue(jsEvent),
		Target: SyscallJSValue(jsEvent.Get("target")),
	}
}

// Node returns the DOM node h was mounted as.
//
// It panics if h has not been rendered into a document.
func (h *HTML) Node() SyscallJSValue {
	if h.node == nil {
		panic("mascui: (*HTML).Node() before DOM node creation")
	}
	return SyscallJSValue(h.node)
}

// RenderIntoNode renders the given component into the existing HTML element,
// replacing its content.
//
// If the Component's Render method does not return an element of the same type,
// an error of type ElementMismatchError is returned.
func RenderIntoNode(node SyscallJSValue, c Component, send func(Msg)) error {
	return renderIntoNode("RenderIntoNode", node, c, send)
}

// RenderTo configures the renderer to render the model to the passed DOM node.
func RenderTo(rootNode SyscallJSValue) ProgramOption {
	return func(p *Program) {
		p.renderer = newNodeRenderer(rootNode)
	}
}

// checkDOM reports whether a document is available. Native builds only have
// one after UseGostDOM.
func checkDOM() error {
	if global() == nil {
		return ErrNoDOM
	}
	return nil
}

func toLower(s string) string {
	return strings.ToLower(s)
}

var globalValue jsObject

func global() jsObject {
	return globalValue
}

func undefined() jsObject {
	return nil
}

func funcOf(fn func(this jsObject, args []jsObject) interface{}) jsFunc {
	return &gostFunc{call: fn}
}
