package mascui

// nilRenderer discards every frame. It is installed by WithoutRenderer.
type nilRenderer struct{}

func (n nilRenderer) start()                                {}
func (n nilRenderer) render(_ Component, _ func(Msg)) error { return nil }
