package mascui

import (
	"reflect"
	"testing"
)

func TestBusPublish(t *testing.T) {
	var got []Msg
	b := NewBus(func(msg Msg) { got = append(got, msg) })
	b.Publish("a")
	b.Publish(1)
	if !reflect.DeepEqual(got, []Msg{"a", 1}) {
		t.Fatalf("got %v", got)
	}
}

func TestBusZeroValue(t *testing.T) {
	var b Bus
	b.Publish("dropped")
	b.ScheduleRender()
	b.Map(func(m Msg) Msg { return m }).Publish("dropped")
}

func TestBusScheduleRender(t *testing.T) {
	var got []Msg
	b := NewBus(func(msg Msg) { got = append(got, msg) }).Map(func(m Msg) Msg { return "mapped" })
	b.ScheduleRender()
	if len(got) != 1 || !IsRenderRequest(got[0]) {
		t.Fatalf("got %v, want a single render request", got)
	}
	if IsRenderRequest("mapped") {
		t.Fatal("plain message reported as render request")
	}
}

func TestBusMapComposes(t *testing.T) {
	var got []Msg
	b := NewBus(func(msg Msg) { got = append(got, msg) })
	wrap := func(tag string) func(Msg) Msg {
		return func(m Msg) Msg { return tag + "(" + m.(string) + ")" }
	}
	parent := b.Map(wrap("parent"))
	child := parent.Map(wrap("child"))

	child.Publish("x")
	parent.Publish("y")
	b.Publish("z")

	want := []Msg{"parent(child(x))", "parent(y)", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
