//go:build js

package mascui

import "syscall/js"

// Event represents a DOM event.
type Event struct {
	js.Value
	Target js.Value
}

func newEvent(jsEvent jsObject) *Event {
	v := jsEvent.(jsValue).v
	return &Event{Value: v, Target: v.Get("target")}
}

// Node returns the underlying JavaScript Element or TextNode.
//
// It panics if h has not been rendered into a document.
func (h *HTML) Node() SyscallJSValue {
	if h.node == nil {
		panic("mascui: (*HTML).Node() before DOM node creation")
	}
	return h.node.(jsValue).v
}

// RenderIntoNode renders the given component into the existing HTML element,
// replacing its content.
//
// If the Component's Render method does not return an element of the same type,
// an error of type ElementMismatchError is returned.
func RenderIntoNode(node SyscallJSValue, c Component, send func(Msg)) error {
	return renderIntoNode("RenderIntoNode", fromJS(node), c, send)
}

// RenderTo configures the renderer to render the model to the passed DOM node.
func RenderTo(rootNode SyscallJSValue) ProgramOption {
	return func(p *Program) {
		p.renderer = newNodeRenderer(fromJS(rootNode))
	}
}

func checkDOM() error {
	if doc := js.Global().Get("document"); doc.IsUndefined() || doc.IsNull() {
		return ErrNoDOM
	}
	return nil
}

// toLower goes through String.prototype since syscall/js cannot call methods
// on primitive strings (golang/go#35917).
func toLower(s string) string {
	lower := js.Global().Get("String").Get("prototype").Get("toLowerCase")
	return lower.Call("call", s).String()
}

var globalValue jsObject

func global() jsObject {
	if globalValue == nil {
		globalValue = fromJS(js.Global())
	}
	return globalValue
}

func undefined() jsObject {
	return jsValue{js.Undefined()}
}

type jsCallback struct {
	f js.Func
}

func funcOf(fn func(this jsObject, args []jsObject) interface{}) jsFunc {
	return &jsCallback{f: js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		in := make([]jsObject, len(args))
		for i, a := range args {
			in[i] = fromJS(a)
		}
		return toJS(fn(fromJS(this), in))
	})}
}

// String is opaque; the function source differs between toolchains.
func (c *jsCallback) String() string { return "func" }

func (c *jsCallback) Release() { c.f.Release() }

// jsValue adapts a syscall/js value to jsObject. null maps to a nil jsObject.
type jsValue struct {
	v js.Value
}

func fromJS(v js.Value) jsObject {
	if v.IsNull() {
		return nil
	}
	return jsValue{v}
}

func toJS(x interface{}) interface{} {
	switch x := x.(type) {
	case jsValue:
		return x.v
	case *jsCallback:
		return x.f
	}
	return x
}

func (w jsValue) Get(key string) jsObject { return fromJS(w.v.Get(key)) }
func (w jsValue) Set(key string, value interface{}) { w.v.Set(key, toJS(value)) }
func (w jsValue) Delete(key string) { w.v.Delete(key) }

func (w jsValue) Call(name string, args ...interface{}) jsObject {
	in := make([]interface{}, len(args))
	for i, a := range args {
		in[i] = toJS(a)
	}
	return fromJS(w.v.Call(name, in...))
}

func (w jsValue) Equal(other jsObject) bool {
	o, ok := other.(jsValue)
	return ok && w.v.Equal(o.v)
}

func (w jsValue) String() string    { return w.v.String() }
func (w jsValue) Truthy() bool      { return w.v.Truthy() }
func (w jsValue) IsUndefined() bool { return w.v.IsUndefined() }
func (w jsValue) Bool() bool        { return w.v.Bool() }
func (w jsValue) Int() int          { return w.v.Int() }
func (w jsValue) Float() float64    { return w.v.Float() }
