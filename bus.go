package mascui

// renderMsg asks the program to render the current model again without
// passing a message to Update.
type renderMsg struct{}

// Bus publishes messages from event handlers to the program's update loop.
// It is a small value meant to be copied into every handler closure that
// needs it.
//
// The zero Bus drops everything published on it.
type Bus struct {
	send   func(Msg)
	mapper func(Msg) Msg
}

// NewBus returns a Bus that delivers messages through send, usually the send
// function passed to Component.Render.
func NewBus(send func(Msg)) Bus {
	return Bus{send: send}
}

// Publish enqueues msg for the program's update cycle.
func (b Bus) Publish(msg Msg) {
	if b.send == nil {
		return
	}
	if b.mapper != nil {
		msg = b.mapper(msg)
	}
	b.send(msg)
}

// ScheduleRender requests a render of the whole tree. Unlike Publish it does
// not go through Update, and it is not affected by Map.
func (b Bus) ScheduleRender() {
	if b.send == nil {
		return
	}
	b.send(renderMsg{})
}

// Map returns a Bus that applies f to every published message before
// handing it to b. Mapping composes: the innermost mapper runs first.
func (b Bus) Map(f func(Msg) Msg) Bus {
	inner := b.mapper
	if inner == nil {
		b.mapper = f
		return b
	}
	b.mapper = func(msg Msg) Msg {
		return inner(f(msg))
	}
	return b
}

// IsRenderRequest reports whether msg was sent by Bus.ScheduleRender. Custom
// send functions use it to re-render without calling Update.
func IsRenderRequest(msg Msg) bool {
	_, ok := msg.(renderMsg)
	return ok
}
