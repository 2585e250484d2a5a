package core

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "core")

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) { eng.HandleEvent(app, ev) })

	app.OnStart(eng)
	log.WithFields(logrus.Fields{
		"title":  cfg.Title,
		"width":  w,
		"height": h,
		"layers": eng.Layers.Len(),
	}).Info("Engine started")

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		eng.Frame++

		win.SwapBuffers()
	}

	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.WithField("frames", eng.Frame).Info("Engine exit")
	return nil
}

// HandleEvent updates the polled input state, then hands ev to the app and
// the layer stack. Resize events also resize the renderer.
func (e *Engine) HandleEvent(app App, ev Event) {
	e.Input.Handle(ev)
	app.OnEvent(e, ev)
	switch v := ev.(type) {
	case EventResize:
		if v.W >= 1 && v.H >= 1 && e.Renderer != nil {
			e.Renderer.Resize(v.W, v.H)
		}
	case EventCloseRequested:
		if e.Window != nil {
			e.Window.RequestClose()
		}
	}
	e.Layers.Dispatch(e, ev)
}

// PushLayer attaches l and places it on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	l.OnAttach(e)
	e.Layers.Push(l)
}
