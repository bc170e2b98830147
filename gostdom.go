//go:build !js

package mascui

import (
	"fmt"

	"github.com/gost-dom/browser/dom"
	ev "github.com/gost-dom/browser/dom/event"
	"github.com/gost-dom/browser/html"
)

// UseGostDOM makes mascui render into win. Native programs and tests call it
// before rendering.
func UseGostDOM(win html.Window) {
	globalValue = &gostGlobal{win: win}
}

// WithGostDOM is a ProgramOption calling UseGostDOM.
func WithGostDOM(win html.Window) ProgramOption {
	return func(*Program) {
		UseGostDOM(win)
	}
}

// WrapGostNode converts a gost-dom node into a value RenderIntoNode and
// RenderTo accept.
func WrapGostNode(n dom.Node) SyscallJSValue {
	return SyscallJSValue(&gostNode{n: n})
}

// gostGlobal is the global object of a gost-dom window.
type gostGlobal struct {
	win html.Window
}

func (g *gostGlobal) Get(key string) jsObject {
	switch key {
	case "document":
		return &gostNode{n: g.win.Document()}
	case "readyState":
		return scalar{"complete"}
	}
	panic(fmt.Sprintf("gostdom: global.Get(%q) not implemented", key))
}

func (g *gostGlobal) Equal(o jsObject) bool {
	other, ok := o.(*gostGlobal)
	return ok && g == other
}

func (*gostGlobal) Set(string, interface{})              {}
func (*gostGlobal) Delete(string)                        {}
func (*gostGlobal) Call(string, ...interface{}) jsObject { return nil }
func (*gostGlobal) String() string                       { return "[object Window]" }
func (*gostGlobal) Truthy() bool                         { return true }
func (*gostGlobal) IsUndefined() bool                    { return false }
func (*gostGlobal) Bool() bool                           { return true }
func (*gostGlobal) Int() int                             { return 0 }
func (*gostGlobal) Float() float64                       { return 0 }

// gostNode is a gost-dom node seen through the jsObject interface. Unknown
// property names map to attributes.
type gostNode struct {
	n dom.Node
}

func (g *gostNode) element() (dom.Element, bool) {
	el, ok := g.n.(dom.Element)
	return el, ok
}

func (g *gostNode) document() dom.Document {
	if doc, ok := g.n.(dom.Document); ok {
		return doc
	}
	return g.n.OwnerDocument()
}

func (g *gostNode) Set(key string, value interface{}) {
	if doc, ok := g.n.(dom.Document); ok {
		if key == "title" {
			setDocumentTitle(doc, fmt.Sprint(value))
		}
		return
	}
	if key == "nodeValue" {
		g.n.SetTextContent(fmt.Sprint(value))
		return
	}
	el, ok := g.element()
	if !ok {
		return
	}
	if key == "innerHTML" {
		_ = el.SetInnerHTML(fmt.Sprint(value))
		return
	}
	el.SetAttribute(key, fmt.Sprint(value))
}

func (g *gostNode) Get(key string) jsObject {
	if doc, ok := g.n.(dom.Document); ok && key == "title" {
		if el, _ := doc.QuerySelector("title"); el != nil {
			return scalar{el.TextContent()}
		}
		return scalar{""}
	}
	switch key {
	case "nodeName":
		return scalar{g.n.NodeName()}
	case "parentNode":
		if p := g.n.Parent(); p != nil {
			return &gostNode{n: p}
		}
		return nil
	}
	el, ok := g.element()
	if !ok {
		return nil
	}
	switch key {
	case "innerHTML":
		return scalar{el.InnerHTML()}
	case "checked":
		// Checkedness is tracked as the attribute.
		_, on := el.GetAttribute("checked")
		return scalar{on}
	}
	val, _ := el.GetAttribute(key)
	return scalar{val}
}

// setDocumentTitle writes the <title> element, adding it to <head> if the
// document has none.
func setDocumentTitle(doc dom.Document, title string) {
	el, _ := doc.QuerySelector("title")
	if el == nil {
		head := doc.Head()
		if head == nil {
			return
		}
		el = doc.CreateElement("title")
		if _, err := head.AppendChild(el); err != nil {
			return
		}
	}
	el.SetTextContent(title)
}

func (g *gostNode) Delete(key string) {
	if el, ok := g.element(); ok {
		if key == "innerHTML" {
			_ = el.SetInnerHTML("")
			return
		}
		el.RemoveAttribute(key)
	}
}

func (g *gostNode) Call(name string, args ...interface{}) jsObject {
	switch name {
	case "appendChild":
		child := args[0].(*gostNode)
		_, _ = g.n.AppendChild(child.n)
		return child
	case "removeChild":
		child := args[0].(*gostNode)
		_, _ = g.n.RemoveChild(child.n)
		return child
	case "createElement":
		return &gostNode{n: g.document().CreateElement(args[0].(string))}
	case "createElementNS":
		return &gostNode{n: g.document().CreateElementNS(args[0].(string), args[1].(string))}
	case "createTextNode":
		return &gostNode{n: g.document().CreateText(args[0].(string))}
	case "setAttribute":
		if el, ok := g.element(); ok {
			el.SetAttribute(args[0].(string), fmt.Sprint(args[1]))
		}
		return nil
	case "removeAttribute":
		if el, ok := g.element(); ok {
			el.RemoveAttribute(args[0].(string))
		}
		return nil
	case "addEventListener":
		g.addEventListener(args[0].(string), args[1].(*gostFunc))
		return nil
	case "removeEventListener":
		if f := args[1].(*gostFunc); f.remove != nil {
			f.remove()
			f.remove = nil
		}
		return nil
	case "querySelector":
		return g.querySelector(args[0].(string))
	case "dispatchEvent":
		if tgt, ok := g.n.(ev.EventTarget); ok {
			tgt.DispatchEvent(args[0].(*gostEvent).ev)
		}
		return nil
	}
	panic(fmt.Sprintf("gostdom: Call(%q) not implemented", name))
}

func (g *gostNode) addEventListener(eventType string, f *gostFunc) {
	tgt, ok := g.n.(ev.EventTarget)
	if !ok {
		return
	}
	handler := ev.NewEventHandlerFuncWithoutError(func(e *ev.Event) {
		ge := &gostEvent{ev: e}
		f.call(ge, []jsObject{ge})
	})
	tgt.AddEventListener(eventType, handler)
	f.remove = func() { tgt.RemoveEventListener(eventType, handler) }
}

func (g *gostNode) querySelector(selector string) jsObject {
	type selectable interface {
		QuerySelector(string) (dom.Element, error)
	}
	s, ok := g.n.(selectable)
	if !ok {
		return nil
	}
	el, err := s.QuerySelector(selector)
	if err != nil || el == nil {
		return nil
	}
	return &gostNode{n: el}
}

func (g *gostNode) Equal(o jsObject) bool {
	other, ok := o.(*gostNode)
	return ok && g.n == other.n
}

func (g *gostNode) String() string   { return g.n.NodeName() }
func (*gostNode) Truthy() bool       { return true }
func (*gostNode) IsUndefined() bool  { return false }
func (*gostNode) Bool() bool         { return true }
func (*gostNode) Int() int           { return 0 }
func (*gostNode) Float() float64     { return 0 }

// gostFunc is a Go event callback. remove detaches it from the node it was
// last added to.
type gostFunc struct {
	call   func(this jsObject, args []jsObject) interface{}
	remove func()
}

func (f *gostFunc) Release() { f.remove = nil }

// gostEvent is a gost-dom event seen through the jsObject interface.
type gostEvent struct {
	ev *ev.Event
}

func (e *gostEvent) Get(key string) jsObject {
	switch key {
	case "type":
		return scalar{e.ev.Type}
	case "target":
		if n, ok := e.ev.Target.(dom.Node); ok {
			return &gostNode{n: n}
		}
	case "value":
		if el, ok := e.ev.Target.(dom.Element); ok {
			val, _ := el.GetAttribute("value")
			return scalar{val}
		}
	}
	return nil
}

func (e *gostEvent) Call(name string, _ ...interface{}) jsObject {
	switch name {
	case "preventDefault":
		e.ev.PreventDefault()
	case "stopPropagation":
		e.ev.StopPropagation()
	}
	return nil
}

func (e *gostEvent) Equal(o jsObject) bool {
	other, ok := o.(*gostEvent)
	return ok && e.ev == other.ev
}

func (*gostEvent) Set(string, interface{}) {}
func (*gostEvent) Delete(string)           {}
func (*gostEvent) String() string          { return "[object Event]" }
func (*gostEvent) Truthy() bool            { return true }
func (*gostEvent) IsUndefined() bool       { return false }
func (*gostEvent) Bool() bool              { return true }
func (*gostEvent) Int() int                { return 0 }
func (*gostEvent) Float() float64          { return 0 }
