package widget

import (
	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/css"
	"github.com/octoberswimmer/mascui/elem"
)

// Application is a program whose view is built from widgets.
type Application interface {
	Init() mascui.Cmd
	Update(msg mascui.Msg) mascui.Cmd
	View() Element
}

type appModel struct {
	mascui.Core
	app Application
}

// NewModel adapts app to a mascui.Model. Every render uses a fresh style
// sheet and emits it as a <style> element ahead of the view.
func NewModel(app Application) mascui.Model {
	return &appModel{app: app}
}

// NewProgram runs app in a mascui.Program.
func NewProgram(app Application, opts ...mascui.ProgramOption) *mascui.Program {
	return mascui.NewProgram(NewModel(app), opts...)
}

func (m *appModel) Init() mascui.Cmd {
	return m.app.Init()
}

func (m *appModel) Update(msg mascui.Msg) (mascui.Model, mascui.Cmd) {
	return m, m.app.Update(msg)
}

func (m *appModel) Render(send func(mascui.Msg)) mascui.ComponentOrHTML {
	sheet := css.NewStyleSheet()
	content := m.app.View().Node(mascui.NewBus(send), sheet)
	return elem.Body(sheet.Node(), content)
}
