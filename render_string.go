package mascui

import "strings"

// RenderString renders the given Component to an HTML string via a pure-Go
// walk of its Render output. Attributes are written in the order they were
// applied; event listeners are omitted. Messages sent while rendering are
// discarded.
func RenderString(c Component) string {
	root := RenderHTML(c)
	if root == nil {
		return ""
	}
	return htmlString(root)
}

// RenderHTML returns the in-memory HTML tree produced by Component.Render,
// with nested components rendered in place. This bypasses DOM reconciliation
// and does not touch jsObject.
func RenderHTML(c Component) *HTML {
	return resolve(c, func(Msg) {})
}

// String serializes h and its children to HTML.
func (h *HTML) String() string {
	r := resolve(h, func(Msg) {})
	if r == nil {
		return ""
	}
	return htmlString(r)
}

// htmlString serializes an HTML tree to a string, preserving tags, attributes
// and text.
func htmlString(h *HTML) string {
	var sb strings.Builder
	writeHTML(&sb, h)
	return sb.String()
}

func writeHTML(sb *strings.Builder, h *HTML) {
	// text node
	if h.tag == "" {
		if h.innerHTML != "" {
			sb.WriteString(h.innerHTML)
			return
		}
		sb.WriteString(h.text)
		return
	}
	// element node
	sb.WriteString("<" + h.tag)
	writeAttributes(sb, h.attributes)
	if voidElements[h.tag] {
		sb.WriteString("/>")
		return
	}
	sb.WriteString(">")
	if h.innerHTML != "" {
		sb.WriteString(h.innerHTML)
	} else {
		for _, child := range h.children {
			if ch, ok := child.(*HTML); ok {
				writeHTML(sb, ch)
			}
		}
	}
	sb.WriteString("</" + h.tag + ">")
}
