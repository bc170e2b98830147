package mascui

import "sync"

// standardRenderer mounts every frame into root, or into the document body
// when root is unset. A frame replaces the node's previous content.
type standardRenderer struct {
	mu   sync.Mutex
	root jsObject
}

func newRenderer() renderer {
	return &standardRenderer{}
}

func newNodeRenderer(root jsObject) renderer {
	return &standardRenderer{root: root}
}

func (r *standardRenderer) start() {}

func (r *standardRenderer) render(c Component, send func(Msg)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root == nil || !r.root.Truthy() {
		return RenderBody(c, send)
	}
	return renderIntoNode("RenderIntoNode", r.root, c, send)
}
