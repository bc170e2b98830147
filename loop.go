package mascui

import (
	"golang.org/x/sync/errgroup"
)

// runCommands executes commands handed over by the event loop until the
// program stops. Each command runs in its own goroutine; a command that never
// returns leaks that goroutine.
func (p *Program) runCommands(cmds <-chan Cmd) {
	for {
		select {
		case <-p.ctx.Done():
			return
		case cmd := <-cmds:
			if cmd == nil {
				continue
			}
			go func() {
				p.Send(cmd())
			}()
		}
	}
}

// sendCmd hands cmd to the command runner unless the program is stopping.
func (p *Program) sendCmd(cmds chan<- Cmd, cmd Cmd) {
	select {
	case <-p.ctx.Done():
	case cmds <- cmd:
	}
}

// runSequence runs cmds one after another. A command yielding a BatchMsg has
// its members run concurrently, and the sequence waits for all of them.
func (p *Program) runSequence(cmds sequenceMsg) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		msg := cmd()
		batch, ok := msg.(BatchMsg)
		if !ok {
			p.Send(msg)
			continue
		}
		g, _ := errgroup.WithContext(p.ctx)
		for _, c := range batch {
			if c == nil {
				continue
			}
			g.Go(func() error {
				p.Send(c())
				return nil
			})
		}
		g.Wait() //nolint:errcheck
	}
}

// eventLoop receives messages, updates the model and renders it. Render
// requests from a Bus render without calling Update.
func (p *Program) eventLoop(model Model, cmds chan<- Cmd) (Model, error) {
	for {
		var msg Msg
		select {
		case <-p.ctx.Done():
			return model, nil
		case msg = <-p.msgs:
		}

		if p.filter != nil {
			msg = p.filter(model, msg)
		}

		switch msg := msg.(type) {
		case nil:
			continue
		case QuitMsg:
			return model, nil
		case renderMsg:
			if err := p.renderer.render(model, p.Send); err != nil {
				return model, err
			}
			continue
		case BatchMsg:
			for _, cmd := range msg {
				p.sendCmd(cmds, cmd)
			}
			continue
		case sequenceMsg:
			go p.runSequence(msg)
			continue
		case setWindowTitleMsg:
			SetTitle(string(msg))
			continue
		}

		var cmd Cmd
		model, cmd = model.Update(msg)
		p.sendCmd(cmds, cmd)
		if err := p.renderer.render(model, p.Send); err != nil {
			return model, err
		}
	}
}
