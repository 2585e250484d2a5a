package main

import (
	"github.com/hubastard/iui/engine/core"
	"github.com/hubastard/iui/engine/geom"
	"github.com/hubastard/iui/engine/ui"
	"github.com/hubastard/iui/engine/ui/paint"
	"github.com/sirupsen/logrus"
)

const (
	toggleID  ui.ID = "_toggle1"
	button1ID ui.ID = "_btn_1"
	button2ID ui.ID = "_btn_2"
)

// LayerUI draws a toggle that shows or hides two buttons.
type LayerUI struct {
	ctx    *ui.Context
	log    *logrus.Entry
	target paint.Renderer
	reset  bool // forget the toggle on the next frame
}

func NewLayerUI(opts ui.Options, log *logrus.Entry) *LayerUI {
	return &LayerUI{ctx: ui.New(opts), log: log}
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	r, ok := e.Renderer.(paint.Renderer)
	if !ok {
		l.log.Warn("renderer cannot draw quads, widgets stay invisible")
		return
	}
	l.target = r
}

func (l *LayerUI) OnDetach(e *core.Engine) {
	l.log.WithField("frames", l.ctx.Frames()).Debug("ui layer detached")
}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	if l.target == nil {
		return
	}
	f := ui.Begin(l.ctx, l.target)
	defer f.End()

	if l.reset {
		f.ForgetKind(ui.KindToggle, toggleID)
		l.reset = false
	}

	show := ui.InvokeStored(f, ui.Toggle(toggleID), geom.Raw(0, 120, 50, 50), paint.DrawToggleButton)
	if !show {
		return
	}
	if ui.Invoke(f, ui.Button(button1ID), geom.Raw(0, 0, 50, 50), paint.DrawButton) {
		l.log.Info("button 1 was pressed")
	}
	if ui.Invoke(f, ui.Button(button2ID), geom.Raw(0, 60, 50, 50), paint.DrawButton) {
		l.log.Info("button 2 was pressed")
	}
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	// R is an edge, not a held state, so it is taken from the event.
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyR {
		l.reset = true
		return true
	}
	l.ctx.Push(ev)
	return false
}
