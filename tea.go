// Package mascui provides a framework for building browser applications
// based on the paradigms of The Elm Architecture. Models render into a
// virtual HTML tree which is mounted into the DOM; event handlers publish
// messages on a Bus and the program feeds them back through Update.
//
// The widget subpackage builds reusable controls (checkboxes, radio
// buttons) on top of this runtime.
package mascui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// ErrProgramKilled is returned by [Program.Run] after Kill or after the
// program's context is cancelled.
var ErrProgramKilled = errors.New("mascui: program was killed")

// Msg is anything delivered to Update: user input, command results, timers.
type Msg interface{}

// Model is the application state together with the functions driving it.
type Model interface {
	Component
	// Init returns the command to run once the program starts, or nil.
	Init() Cmd

	// Update applies msg and returns the next model and an optional
	// follow-up command.
	Update(Msg) (Model, Cmd)
}

// Cmd performs work off the update loop and reports back with a Msg. A nil
// Cmd does nothing.
type Cmd func() Msg

// startupOptions are bit flags set by ProgramOptions.
type startupOptions int16

func (s startupOptions) has(option startupOptions) bool {
	return s&option != 0
}

const (
	withoutCatchPanics startupOptions = 1 << iota
)

// QuitMsg ends the event loop. See Quit.
type QuitMsg struct{}

// Quit is a special command that tells the program to exit.
func Quit() Msg {
	return QuitMsg{}
}

// Program runs a Model in the browser.
type Program struct {
	initialModel   Model
	startupOptions startupOptions

	ctx    context.Context
	cancel context.CancelFunc

	msgs     chan Msg
	finished chan struct{}

	renderer renderer
	filter   func(Model, Msg) Msg
}

// NewProgram returns a Program for model. Nothing runs until Run.
func NewProgram(model Model, opts ...ProgramOption) *Program {
	p := &Program{
		initialModel: model,
		msgs:         make(chan Msg),
		finished:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ctx == nil {
		p.ctx = context.Background()
	}
	p.ctx, p.cancel = context.WithCancel(p.ctx)
	return p
}

// Run renders the initial model and processes messages until the program
// quits or is killed. It returns the final model.
func (p *Program) Run() (model Model, err error) {
	model = p.initialModel
	defer p.cancel()
	defer p.shutdown()

	if !p.startupOptions.has(withoutCatchPanics) {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("Caught panic:\n\n%s\n\nStopping program...\n\n", r)
				debug.PrintStack()
				err = fmt.Errorf("mascui: program panicked: %v", r)
			}
		}()
	}

	if p.renderer == nil {
		if err := checkDOM(); err != nil {
			return model, err
		}
		p.renderer = newRenderer()
	}

	var workers errgroup.Group
	defer func() {
		p.cancel()
		workers.Wait() //nolint:errcheck
	}()

	cmds := make(chan Cmd)
	if initCmd := model.Init(); initCmd != nil {
		workers.Go(func() error {
			p.sendCmd(cmds, initCmd)
			return nil
		})
	}

	p.renderer.start()
	if err := p.renderer.render(model, p.Send); err != nil {
		return model, err
	}

	workers.Go(func() error {
		p.runCommands(cmds)
		return nil
	})

	model, err = p.eventLoop(model, cmds)
	switch {
	case p.ctx.Err() != nil:
		err = ErrProgramKilled
	case err == nil:
		// Quitting shows the final state of the model.
		err = p.renderer.render(model, p.Send)
	}
	return model, err
}

// Send delivers msg to Update from outside the program. It blocks until Run
// accepts the message and returns immediately once the program has stopped.
func (p *Program) Send(msg Msg) {
	select {
	case <-p.ctx.Done():
	case p.msgs <- msg:
	}
}

// Bus returns a Bus publishing to this program.
func (p *Program) Bus() Bus {
	return NewBus(p.Send)
}

// Quit stops the program from outside, rendering the final model first.
// Models quit themselves by returning the Quit command.
func (p *Program) Quit() {
	p.Send(Quit())
}

// Kill stops the program without a final render. Run returns
// ErrProgramKilled.
func (p *Program) Kill() {
	p.cancel()
}

// Wait blocks until Run has returned.
func (p *Program) Wait() {
	<-p.finished
}

func (p *Program) shutdown() {
	select {
	case p.finished <- struct{}{}:
	default:
	}
}
