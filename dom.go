package mascui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDOM is returned by [Program.Run] when no browser document is available
// to render into, e.g. when running natively without a gost-dom window.
var ErrNoDOM = errors.New("mascui: no DOM available; build for js/wasm or call UseGostDOM")

// jsObject is the subset of a JavaScript value used by the renderer. It is
// implemented over syscall/js under WebAssembly and over gost-dom natively.
type jsObject interface {
	Set(key string, value interface{})
	Get(key string) jsObject
	Delete(key string)
	Call(name string, args ...interface{}) jsObject
	String() string
	Truthy() bool
	Equal(other jsObject) bool
	IsUndefined() bool
	Bool() bool
	Int() int
	Float() float64
}

// jsFunc is a Go function exposed to JavaScript.
type jsFunc interface {
	Release()
}

// Core implements the Context method of the Component interface, and is the
// core/central struct which all Component implementations should embed.
type Core struct {
	prevRender *HTML
}

// Context implements the Component interface.
func (c *Core) Context() *Core { return c }

func (c *Core) isComponentOrHTML() {}

// Component represents a single visual component within an application. To
// define a new component simply implement the Render method and embed the
// Core struct:
//
//	type MyComponent struct {
//		mascui.Core
//		... additional component fields (state or properties) ...
//	}
//
//	func (c *MyComponent) Render(send func(mascui.Msg)) mascui.ComponentOrHTML {
//		... rendering ...
//	}
type Component interface {
	// Render is responsible for building HTML which represents the component.
	// The send function publishes messages to the program's update loop.
	Render(send func(Msg)) ComponentOrHTML

	// Context returns the components context, which is used internally by
	// mascui in order to store the previous component render for diffing.
	Context() *Core

	isComponentOrHTML()
}

// ComponentOrHTML represents one of:
//
//	Component
//	*HTML
//	nil
type ComponentOrHTML interface {
	isComponentOrHTML()
}

// MarkupOrChild represents one of:
//
//	Component
//	*HTML
//	List
//	nil
//	MarkupList
type MarkupOrChild interface{}

// Applyer represents some type of markup (a style, property, data, etc) which
// can be applied to a given HTML element or text node.
type Applyer interface {
	// Apply applies the markup to the given HTML element or text node.
	Apply(h *HTML)
}

type markupFunc func(h *HTML)

func (m markupFunc) Apply(h *HTML) { m(h) }

// attribute is a single attribute slot. Boolean attributes are serialized as
// their bare name.
type attribute struct {
	name    string
	value   string
	boolean bool
}

// HTML represents some form of HTML: an element with a specific tag, or some
// literal text (a TextNode).
type HTML struct {
	node jsObject

	namespace, tag, text, innerHTML string
	attributes                      []attribute
	eventListeners                  []*EventListener
	children                        []ComponentOrHTML
}

func (h *HTML) isComponentOrHTML() {}

// Tag returns the tag name of the element, or the empty string for text.
func (h *HTML) Tag() string { return h.tag }

func (h *HTML) setAttribute(a attribute) {
	for i := range h.attributes {
		if h.attributes[i].name == a.name {
			h.attributes[i] = a
			return
		}
	}
	h.attributes = append(h.attributes, a)
}

func (h *HTML) removeAttribute(name string) {
	for i := range h.attributes {
		if h.attributes[i].name == name {
			h.attributes = append(h.attributes[:i], h.attributes[i+1:]...)
			return
		}
	}
}

// appendAttribute extends the value of an existing attribute slot, or creates
// it at the end of the attribute list.
func (h *HTML) appendAttribute(name, value, sep string) {
	for i := range h.attributes {
		if h.attributes[i].name == name {
			if h.attributes[i].value != "" {
				h.attributes[i].value += sep
			}
			h.attributes[i].value += value
			return
		}
	}
	h.attributes = append(h.attributes, attribute{name: name, value: value})
}

// Attr returns the value of the named attribute and whether it is set.
func (h *HTML) Attr(name string) (string, bool) {
	for _, a := range h.attributes {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// EventListeners returns the listeners attached to the element.
func (h *HTML) EventListeners() []*EventListener { return h.eventListeners }

// Children returns the element's children.
func (h *HTML) Children() []ComponentOrHTML { return h.children }

// Tag returns an HTML element with the given tag name. Generally, this
// function is not used directly but rather the elem subpackage (which is type
// safe) is used instead.
func Tag(tag string, m ...MarkupOrChild) *HTML {
	h := &HTML{
		tag: tag,
	}
	for _, m := range m {
		apply(m, h)
	}
	return h
}

// Text returns a TextNode with the given literal text. Mounted into a DOM it
// becomes a text node, so user input needs no escaping there. RenderString
// and (*HTML).String write the text verbatim without escaping.
func Text(text string, m ...MarkupOrChild) *HTML {
	h := &HTML{
		text: text,
	}
	for _, m := range m {
		apply(m, h)
	}
	return h
}

// List represents a list of components or HTML.
type List []ComponentOrHTML

// If returns nil if cond is false, otherwise it returns the given children.
func If(cond bool, children ...ComponentOrHTML) MarkupOrChild {
	if cond {
		return List(children)
	}
	return nil
}

func apply(m MarkupOrChild, h *HTML) {
	switch m := m.(type) {
	case MarkupList:
		m.Apply(h)
	case nil:
		h.children = append(h.children, nil)
	case Component, *HTML:
		h.children = append(h.children, m.(ComponentOrHTML))
	case List:
		for _, child := range m {
			apply(child, h)
		}
	default:
		panic(fmt.Sprintf("mascui: invalid type %T does not match MarkupOrChild interface", m))
	}
}

// MarkupList represents a list of Applyer which is individually applied to an
// HTML element or text node.
//
// It may only be created through the Markup function.
type MarkupList struct {
	list []Applyer
}

// Apply applies the markup list to the given HTML element or text node.
func (m MarkupList) Apply(h *HTML) {
	for _, a := range m.list {
		if a == nil {
			continue
		}
		a.Apply(h)
	}
}

// Markup wraps a list of Applyer which is individually applied to an HTML
// element or text node.
func Markup(m ...Applyer) MarkupList {
	return MarkupList{list: m}
}

// MarkupIf returns nil if cond is false, otherwise it returns the given
// markup.
func MarkupIf(cond bool, markup ...Applyer) Applyer {
	if cond {
		return Markup(markup...)
	}
	return nil
}

// Attribute returns an Applyer which applies the given attribute to an
// element. Applying the same attribute twice replaces its value in place.
func Attribute(key, value string) Applyer {
	return markupFunc(func(h *HTML) {
		h.setAttribute(attribute{name: key, value: value})
	})
}

// BoolAttribute returns an Applyer which sets a boolean attribute (such as
// checked or disabled) when on is true and removes it otherwise.
func BoolAttribute(key string, on bool) Applyer {
	return markupFunc(func(h *HTML) {
		if !on {
			h.removeAttribute(key)
			return
		}
		h.setAttribute(attribute{name: key, boolean: true})
	})
}

// Class returns an Applyer which appends the given classes to the element's
// class attribute.
func Class(class ...string) Applyer {
	return markupFunc(func(h *HTML) {
		for _, c := range class {
			if c == "" {
				continue
			}
			h.appendAttribute("class", c, " ")
		}
	})
}

// Style returns an Applyer which appends the given inline style declaration
// to the element's style attribute.
func Style(key, value string) Applyer {
	return markupFunc(func(h *HTML) {
		h.appendAttribute("style", key+": "+value, "; ")
	})
}

// Namespace is Applyer which sets the namespace URI to associate with the
// created element. This is primarily used when working with, e.g., SVG.
//
// See https://developer.mozilla.org/en-US/docs/Web/API/Document/createElementNS#Valid Namespace URIs
func Namespace(uri string) Applyer {
	return markupFunc(func(h *HTML) {
		h.namespace = uri
	})
}

// UnsafeHTML is Applyer which unsafely sets the inner HTML of an HTML element.
//
// It is entirely up to the caller to ensure the input HTML is properly
// sanitized.
func UnsafeHTML(html string) Applyer {
	return markupFunc(func(h *HTML) {
		h.innerHTML = html
	})
}

// EventListener is markup that specifies a callback function to be invoked when
// the named DOM event is fired.
type EventListener struct {
	Name                string
	Listener            func(*Event)
	callPreventDefault  bool
	callStopPropagation bool
	wrapper             jsFunc
}

// PreventDefault prevents the default behavior of the event from occurring.
//
// See https://developer.mozilla.org/en-US/docs/Web/API/Event/preventDefault.
func (l *EventListener) PreventDefault() *EventListener {
	l.callPreventDefault = true
	return l
}

// StopPropagation prevents further propagation of the current event in the
// capturing and bubbling phases.
//
// See https://developer.mozilla.org/en-US/docs/Web/API/Event/stopPropagation.
func (l *EventListener) StopPropagation() *EventListener {
	l.callStopPropagation = true
	return l
}

// Apply implements the Applyer interface.
func (l *EventListener) Apply(h *HTML) {
	h.eventListeners = append(h.eventListeners, l)
}

// ElementMismatchError is returned when the element returned by a component
// does not match what is required for rendering.
type ElementMismatchError struct {
	method, got, want string
}

func (e ElementMismatchError) Error() string {
	if e.got == "" {
		return fmt.Sprintf("mascui: %s: expected Component.Render to return a %q, found text or nil", e.method, e.want)
	}
	return fmt.Sprintf("mascui: %s: expected Component.Render to return a %q, found %q", e.method, e.want, e.got)
}

// resolve renders nested components and returns a fresh tree made only of
// *HTML nodes. Markup slices are shared with the input.
func resolve(co ComponentOrHTML, send func(Msg)) *HTML {
	switch v := co.(type) {
	case nil:
		return nil
	case *HTML:
		if v == nil {
			return nil
		}
		h := &HTML{
			namespace:      v.namespace,
			tag:            v.tag,
			text:           v.text,
			innerHTML:      v.innerHTML,
			attributes:     v.attributes,
			eventListeners: v.eventListeners,
		}
		for _, child := range v.children {
			if r := resolve(child, send); r != nil {
				h.children = append(h.children, r)
			}
		}
		return h
	case Component:
		h := resolve(v.Render(send), send)
		v.Context().prevRender = h
		return h
	default:
		return nil
	}
}

// mounted holds the root of every tree rendered into an existing DOM node,
// so the next render can detach its listeners.
var mounted []*HTML

func takeMounted(node jsObject) *HTML {
	for i, h := range mounted {
		if h.node.Equal(node) {
			mounted = append(mounted[:i], mounted[i+1:]...)
			return h
		}
	}
	return nil
}

// renderIntoNode renders c and replaces the content of node with the result.
// The root element returned by c must have the same tag as node.
func renderIntoNode(methodName string, node jsObject, c Component, send func(Msg)) error {
	h := resolve(c, send)
	nodeName := toLower(node.Get("nodeName").String())
	if h == nil || h.tag == "" {
		return ElementMismatchError{method: methodName, want: nodeName}
	}
	if h.tag != nodeName {
		return ElementMismatchError{method: methodName, got: h.tag, want: nodeName}
	}

	prev := takeMounted(node)
	if prev != nil {
		prev.release()
		for _, a := range prev.attributes {
			if _, ok := h.Attr(a.name); !ok {
				node.Call("removeAttribute", a.name)
			}
		}
	}

	h.node = node
	h.applyAttributes()
	h.addEventListeners()
	node.Set("innerHTML", "")
	if h.innerHTML != "" {
		node.Set("innerHTML", h.innerHTML)
	} else {
		for _, child := range h.children {
			node.Call("appendChild", child.(*HTML).createNode())
		}
	}
	mounted = append(mounted, h)
	return nil
}

// createNode builds a detached DOM node for h and its children.
func (h *HTML) createNode() jsObject {
	document := global().Get("document")
	if h.tag == "" {
		h.node = document.Call("createTextNode", h.text)
		return h.node
	}
	if h.namespace != "" {
		h.node = document.Call("createElementNS", h.namespace, h.tag)
	} else {
		h.node = document.Call("createElement", h.tag)
	}
	h.applyAttributes()
	h.addEventListeners()
	if h.innerHTML != "" {
		h.node.Set("innerHTML", h.innerHTML)
		return h.node
	}
	for _, child := range h.children {
		h.node.Call("appendChild", child.(*HTML).createNode())
	}
	return h.node
}

func (h *HTML) applyAttributes() {
	for _, a := range h.attributes {
		h.node.Call("setAttribute", a.name, a.value)
	}
}

func (h *HTML) addEventListeners() {
	for _, l := range h.eventListeners {
		l := l
		l.wrapper = funcOf(func(_ jsObject, args []jsObject) interface{} {
			jsEvent := args[0]
			if l.callPreventDefault {
				jsEvent.Call("preventDefault")
			}
			if l.callStopPropagation {
				jsEvent.Call("stopPropagation")
			}
			l.Listener(newEvent(jsEvent))
			return undefined()
		})
		h.node.Call("addEventListener", l.Name, l.wrapper)
	}
}

// release detaches the root listeners and releases every listener wrapper in
// the tree.
func (h *HTML) release() {
	for _, l := range h.eventListeners {
		if l.wrapper == nil {
			continue
		}
		if h.node != nil {
			h.node.Call("removeEventListener", l.Name, l.wrapper)
		}
		l.wrapper.Release()
		l.wrapper = nil
	}
	for _, child := range h.children {
		if c, ok := child.(*HTML); ok {
			c.release()
		}
	}
}

// RenderBody renders the given component as the document body. The given
// Component's Render method must return a "body" element or an
// ElementMismatchError is returned.
func RenderBody(c Component, send func(Msg)) error {
	body, err := bodyNode()
	if err != nil {
		return err
	}
	return renderIntoNode("RenderBody", body, c, send)
}

func bodyNode() (jsObject, error) {
	if global() == nil {
		return nil, ErrNoDOM
	}
	body := global().Get("document").Call("querySelector", "body")
	if body == nil || !body.Truthy() {
		return nil, fmt.Errorf("mascui: document has no <body> element")
	}
	return body, nil
}

// SetTitle sets the title of the document.
func SetTitle(title string) {
	if global() == nil {
		return
	}
	global().Get("document").Set("title", title)
}

// voidElements are serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

func writeAttributes(sb *strings.Builder, attrs []attribute) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		if a.boolean {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(a.value)
		sb.WriteByte('"')
	}
}
