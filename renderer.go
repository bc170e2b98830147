package mascui

// renderer is the interface for program renderers.
type renderer interface {
	// Start the renderer.
	start()

	// Write a frame to the renderer. The component's tree replaces whatever
	// the renderer drew before.
	render(Component, func(Msg)) error
}
