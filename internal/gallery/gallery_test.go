//go:build !js

package gallery

import (
	"strings"
	"testing"

	"github.com/gost-dom/browser/html"
	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/widget"
)

func TestRenderString(t *testing.T) {
	got := mascui.RenderString(widget.NewModel(New()))
	for _, want := range []string{
		`<div class="c p-20 s-10">`,
		`<label for="dark" class="r s-5" style="width: 100%; align-items: center"><input type="checkbox" id="dark"/>Dark mode</label>`,
		`<input type="radio" id="size-1" name="size" style="margin-right: 10px"/>Medium</label>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered gallery missing %q\n%s", want, got)
		}
	}
}

func TestUpdate(t *testing.T) {
	m := New()
	if cmd := m.Update(Toggled(true)); cmd != nil {
		t.Fatalf("Update returned a command")
	}
	m.Update(Selected(ChoiceLarge))
	m.Update(Notified(true))
	if !m.Dark || !m.Notify {
		t.Errorf("got Dark=%v Notify=%v, want both true", m.Dark, m.Notify)
	}
	if m.Selected == nil || *m.Selected != ChoiceLarge {
		t.Errorf("got Selected=%v, want Large", m.Selected)
	}
}

func TestInteraction(t *testing.T) {
	win, err := html.NewWindowReader(strings.NewReader("<!DOCTYPE html><html><body></body></html>"))
	if err != nil {
		t.Fatalf("failed to create gost-dom window: %v", err)
	}
	m := New()
	body, _, err := mascui.RenderComponentIntoWithSend(win, widget.NewModel(m))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if err := body.Dispatch("#notify", "click"); err != nil {
		t.Fatal(err)
	}
	if !m.Notify {
		t.Errorf("notifications checkbox click did not reach Update")
	}
	if _, ok, _ := body.Attr("#notify", "checked"); !ok {
		t.Errorf("notifications checkbox not checked after click")
	}

	if err := body.Dispatch("#size-2", "click"); err != nil {
		t.Fatal(err)
	}
	if m.Selected == nil || *m.Selected != ChoiceLarge {
		t.Fatalf("got Selected=%v, want Large", m.Selected)
	}
	for id, want := range map[string]bool{"#size-0": false, "#size-1": false, "#size-2": true} {
		if _, ok, _ := body.Attr(id, "checked"); ok != want {
			t.Errorf("%s checked = %v, want %v", id, ok, want)
		}
	}
}

// quitAfterInit stops the program once the gallery's Init command has run.
type quitAfterInit struct {
	*Model
}

func (q quitAfterInit) Init() mascui.Cmd {
	return mascui.Sequence(q.Model.Init(), mascui.Quit)
}

func TestWindowTitle(t *testing.T) {
	win, err := html.NewWindowReader(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	if err != nil {
		t.Fatalf("failed to create gost-dom window: %v", err)
	}
	p := widget.NewProgram(quitAfterInit{New()}, mascui.WithGostDOM(win))
	if _, err := p.Run(); err != nil {
		t.Fatal(err)
	}
	title, _ := win.Document().QuerySelector("title")
	if title == nil || title.TextContent() != "mascui gallery" {
		t.Errorf("document title not set")
	}
}
