// Package elem defines constructors for the HTML elements used by mascui
// views.
package elem

import "github.com/octoberswimmer/mascui"

// Body represents the main content of an HTML document.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/body
func Body(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("body", markup...)
}

// Break produces a line break in text.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/br
func Break(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("br", markup...)
}

// Div is the generic container for flow content.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/div
func Div(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("div", markup...)
}

// Input is used to create interactive controls for web-based forms in order to
// accept data from the user.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/input
func Input(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("input", markup...)
}

// Label represents a caption for an item in a user interface.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/label
func Label(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("label", markup...)
}

// Paragraph represents a paragraph of text.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/p
func Paragraph(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("p", markup...)
}

// Span is a generic inline container for phrasing content.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/span
func Span(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("span", markup...)
}

// Style contains style information for a document.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/style
func Style(markup ...mascui.MarkupOrChild) *mascui.HTML {
	return mascui.Tag("style", markup...)
}
