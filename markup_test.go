package mascui

import "testing"

func TestNamespace(t *testing.T) {
	want := "b"
	h := Tag("a", Markup(Namespace(want)))
	if h.namespace != want {
		t.Fatalf("got namespace %q want %q", h.namespace, want)
	}
}

func TestAttributeOrder(t *testing.T) {
	h := Tag("label", Markup(
		Attribute("for", "x"),
		Class("r"),
		Style("width", "auto"),
		Class("s-5"),
		Style("align-items", "center"),
		Attribute("for", "y"),
	))
	want := `<label for="y" class="r s-5" style="width: auto; align-items: center"></label>`
	if got := h.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestClassSkipsEmpty(t *testing.T) {
	h := Tag("div", Markup(Class("", "a", ""), Class("b")))
	if got, _ := h.Attr("class"); got != "a b" {
		t.Fatalf("got class %q want %q", got, "a b")
	}
}

func TestBoolAttribute(t *testing.T) {
	on := Tag("input", Markup(Attribute("id", "a"), BoolAttribute("checked", true)))
	if got, want := on.String(), `<input id="a" checked/>`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	off := Tag("input", Markup(Attribute("id", "a"), BoolAttribute("checked", false)))
	if got, want := off.String(), `<input id="a"/>`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if _, ok := off.Attr("checked"); ok {
		t.Fatal("expected checked to be absent")
	}
	toggled := Tag("input", Markup(BoolAttribute("checked", true), BoolAttribute("checked", false)))
	if _, ok := toggled.Attr("checked"); ok {
		t.Fatal("expected a later false BoolAttribute to remove checked")
	}
}

func TestMarkupIf(t *testing.T) {
	h := Tag("div", Markup(
		MarkupIf(true, Attribute("a", "1")),
		MarkupIf(false, Attribute("b", "2")),
	))
	if _, ok := h.Attr("a"); !ok {
		t.Fatal("expected attribute a")
	}
	if _, ok := h.Attr("b"); ok {
		t.Fatal("expected no attribute b")
	}
}

func TestEventListenerMarkup(t *testing.T) {
	l := &EventListener{Name: "click", Listener: func(*Event) {}}
	h := Tag("button", Markup(l.PreventDefault().StopPropagation()))
	got := h.EventListeners()
	if len(got) != 1 || got[0] != l {
		t.Fatalf("got listeners %v", got)
	}
	if !l.callPreventDefault || !l.callStopPropagation {
		t.Fatal("expected preventDefault and stopPropagation to be set")
	}
	if s := h.String(); s != "<button></button>" {
		t.Fatalf("listeners must not be serialized, got %q", s)
	}
}
