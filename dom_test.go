package mascui

import (
	"errors"
	"fmt"
	"testing"
)

type testCore struct{ Core }

func (testCore) Render(send func(Msg)) ComponentOrHTML { return Tag("p") }

type testCorePtr struct{ *Core }

func (testCorePtr) Render(send func(Msg)) ComponentOrHTML { return Tag("p") }

func recoverStr(f func()) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprint(r)
		}
	}()
	f()
	return ""
}

func TestCore(t *testing.T) {
	// A *MyComponent with an embedded Core works as expected.
	t.Run("comp_ptr_and_core", func(t *testing.T) {
		v1 := Tag("v1")
		valid := Component(&testCore{})
		valid.Context().prevRender = v1
		if valid.Context().prevRender != v1 {
			t.Fatal("valid.Context().prevRender != v1")
		}
	})

	// A non-pointer MyComponent does not satisfy Component because Context
	// has a pointer receiver.
	t.Run("comp_and_core", func(t *testing.T) {
		isComponent := func(x interface{}) bool {
			_, ok := x.(Component)
			return ok
		}
		if isComponent(testCore{}) {
			t.Fatal("expected !isComponent(testCore{})")
		}
	})

	// Embedding *Core by accident leaves a nil context.
	t.Run("comp_ptr_and_core_ptr", func(t *testing.T) {
		invalid := Component(&testCorePtr{})
		got := recoverStr(func() {
			invalid.Context().prevRender = Tag("v1")
		})
		want := "runtime error: invalid memory address or nil pointer dereference"
		if got != want {
			t.Fatalf("got panic %q want %q", got, want)
		}
	})
}

func TestTag(t *testing.T) {
	markupCalled := false
	want := "foobar"
	h := Tag(want, Markup(markupFunc(func(h *HTML) {
		markupCalled = true
	})))
	if !markupCalled {
		t.Fatal("expected markup to be applied")
	}
	if h.Tag() != want {
		t.Fatalf("got tag %q want tag %q", h.Tag(), want)
	}
	if h.text != "" {
		t.Fatal("expected no text")
	}
}

func TestText(t *testing.T) {
	markupCalled := false
	want := "Hello world!"
	h := Text(want, Markup(markupFunc(func(h *HTML) {
		markupCalled = true
	})))
	if !markupCalled {
		t.Fatal("expected markup to be applied")
	}
	if h.text != want {
		t.Fatalf("got text %q want text %q", h.text, want)
	}
	if h.Tag() != "" {
		t.Fatal("expected no tag")
	}
}

func TestTextStringIsVerbatim(t *testing.T) {
	got := Tag("p", Text("<b>&</b>")).String()
	if want := "<p><b>&</b></p>"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTagInvalidChild(t *testing.T) {
	got := recoverStr(func() { Tag("div", 42) })
	want := "mascui: invalid type int does not match MarkupOrChild interface"
	if got != want {
		t.Fatalf("got panic %q want %q", got, want)
	}
}

func TestChildren(t *testing.T) {
	h := Tag("div",
		Text("a"),
		List{Text("b"), Tag("span")},
		If(false, Text("hidden")),
		If(true, Text("shown")),
	)
	var got []string
	for _, c := range h.Children() {
		c, ok := c.(*HTML)
		if !ok || c == nil {
			continue
		}
		if c.Tag() != "" {
			got = append(got, "<"+c.Tag()+">")
		} else {
			got = append(got, c.text)
		}
	}
	want := fmt.Sprint([]string{"a", "b", "<span>", "shown"})
	if fmt.Sprint(got) != want {
		t.Fatalf("got children %v want %v", got, want)
	}
}

type nestedComponent struct {
	Core
	renders int
}

func (c *nestedComponent) Render(send func(Msg)) ComponentOrHTML {
	c.renders++
	return Tag("span", Text(fmt.Sprint(c.renders)))
}

type outerComponent struct {
	Core
	child *nestedComponent
}

func (c *outerComponent) Render(send func(Msg)) ComponentOrHTML {
	return Tag("div", c.child, nil, Tag("input", Markup(Attribute("type", "text"))))
}

func TestRenderString(t *testing.T) {
	child := &nestedComponent{}
	c := &outerComponent{child: child}

	got := RenderString(c)
	want := `<div><span>1</span><input type="text"/></div>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if child.Context().prevRender == nil {
		t.Fatal("expected nested component render to be recorded")
	}

	if got := RenderString(c); got != `<div><span>2</span><input type="text"/></div>` {
		t.Fatalf("second render got %q", got)
	}
}

type nilComponent struct{ Core }

func (nilComponent) Render(send func(Msg)) ComponentOrHTML { return nil }

func TestRenderStringNil(t *testing.T) {
	if got := RenderString(&nilComponent{}); got != "" {
		t.Fatalf("got %q want empty string", got)
	}
	var h *HTML
	if got := h.String(); got != "" {
		t.Fatalf("got %q want empty string", got)
	}
}

func TestRenderStringUnsafeHTML(t *testing.T) {
	h := Tag("div", Markup(UnsafeHTML("<b>bold</b>")), Text("ignored"))
	if got, want := h.String(), "<div><b>bold</b></div>"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestElementMismatchError(t *testing.T) {
	err := error(ElementMismatchError{method: "RenderBody", got: "div", want: "body"})
	want := `mascui: RenderBody: expected Component.Render to return a "body", found "div"`
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
	err = ElementMismatchError{method: "RenderBody", want: "body"}
	want = `mascui: RenderBody: expected Component.Render to return a "body", found text or nil`
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
	var target ElementMismatchError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &target) {
		t.Fatal("expected errors.As to find ElementMismatchError")
	}
}
