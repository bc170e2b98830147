// Package event defines listeners for the DOM events mascui views react to.
package event

import "github.com/octoberswimmer/mascui"

// Change is fired when a change to an element's value is committed by the
// user.
//
// https://developer.mozilla.org/docs/Web/Events/change
func Change(listener func(*mascui.Event)) *mascui.EventListener {
	return &mascui.EventListener{Name: "change", Listener: listener}
}

// Click is fired when a pointing device button has been pressed and released
// on an element.
//
// https://developer.mozilla.org/docs/Web/Events/click
func Click(listener func(*mascui.Event)) *mascui.EventListener {
	return &mascui.EventListener{Name: "click", Listener: listener}
}

// Input is fired synchronously when the value of an input, select, or
// textarea element is changed.
//
// https://developer.mozilla.org/docs/Web/Events/input
func Input(listener func(*mascui.Event)) *mascui.EventListener {
	return &mascui.EventListener{Name: "input", Listener: listener}
}
