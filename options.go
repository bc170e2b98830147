package mascui

import "context"

// ProgramOption configures a Program at construction:
//
//	p := NewProgram(model, WithContext(ctx), WithoutCatchPanics())
type ProgramOption func(*Program)

// WithContext runs the Program under ctx. Cancelling ctx stops the program
// and Run returns ErrProgramKilled.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) {
		p.ctx = ctx
	}
}

// WithoutCatchPanics lets panics from Update or Render propagate out of Run.
// In the browser this takes down the WebAssembly instance.
func WithoutCatchPanics() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withoutCatchPanics
	}
}

// WithoutRenderer delivers messages to Update without mounting anything,
// which is handy for exercising update logic in tests.
func WithoutRenderer() ProgramOption {
	return func(p *Program) {
		p.renderer = &nilRenderer{}
	}
}

// WithFilter installs a function that sees every message before Update. It
// returns the message to process, possibly a different one, or nil to drop
// it. A filter can hold a QuitMsg back while a form has unsaved input:
//
//	func filter(m mascui.Model, msg mascui.Msg) mascui.Msg {
//		if _, ok := msg.(mascui.QuitMsg); ok && m.(form).dirty {
//			return nil
//		}
//		return msg
//	}
func WithFilter(filter func(Model, Msg) Msg) ProgramOption {
	return func(p *Program) {
		p.filter = filter
	}
}
