//go:build !js

package mascui

import "testing"

func TestNewObject(t *testing.T) {
	obj := NewObject(map[string]interface{}{
		"type":    "click",
		"checked": true,
		"detail":  2,
		"nested":  map[string]interface{}{"value": "x"},
	})
	if got := obj.Get("type").String(); got != "click" {
		t.Fatalf("got type %q", got)
	}
	if !obj.Get("checked").Bool() {
		t.Fatal("expected checked to be true")
	}
	if got := obj.Get("detail").Int(); got != 2 {
		t.Fatalf("got detail %d", got)
	}
	if got := obj.Get("nested").Get("value").String(); got != "x" {
		t.Fatalf("got nested value %q", got)
	}
	if obj.Get("missing") != nil {
		t.Fatal("expected missing key to be nil")
	}
	obj.Delete("type")
	if obj.Get("type") != nil {
		t.Fatal("expected deleted key to be nil")
	}
}
