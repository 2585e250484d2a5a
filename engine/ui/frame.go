package ui

import (
	"github.com/hubastard/iui/engine/geom"
	"github.com/sirupsen/logrus"
)

// DrawFunc issues the draw commands for one widget. It must not touch the
// Context and should draw nothing when !clip.Visible().
type DrawFunc[V, T any] func(clip geom.ClipRect, v V, target T)

// Frame is one open rendering frame. T is the rendering target handed to
// draw routines; the UI never looks into it.
type Frame[T any] struct {
	ctx    *Context
	target T
	seq    uint64
	ended  bool
}

// Begin opens a frame: it rolls the interaction slots forward and takes the
// events pushed since the previous frame as this frame's batch. A frame still
// open from before is closed first.
func Begin[T any](c *Context, target T) *Frame[T] {
	if c.current != 0 {
		c.log.WithField("frame", c.current).Warn("frame was never ended, closing it")
	}
	c.seq++
	c.current = c.seq
	c.state.advance(c.events.Pointer(), c.events.Swap())
	return &Frame[T]{ctx: c, target: target, seq: c.seq}
}

// End closes the frame. Further invocations on it are ignored.
func (f *Frame[T]) End() {
	if f.live() {
		f.ctx.current = 0
	}
	f.ended = true
}

func (f *Frame[T]) live() bool { return !f.ended && f.ctx.current == f.seq }

func (f *Frame[T]) Target() T { return f.target }

// Seq is the frame's number, starting at 1.
func (f *Frame[T]) Seq() uint64 { return f.seq }

// Interaction exposes the slots as the frame has resolved them so far.
func (f *Frame[T]) Interaction() *Interaction { return &f.ctx.state }

// Forget drops the stored state of id, as when its widget is torn down.
func (f *Frame[T]) Forget(id ID) bool {
	if !f.live() {
		f.stale(id)
		return false
	}
	return f.ctx.store.Forget(id)
}

// ForgetKind drops the stored state of one widget kind under id only.
func (f *Frame[T]) ForgetKind(kind Kind, id ID) bool {
	if !f.live() {
		f.stale(id)
		return false
	}
	return f.ctx.store.ForgetKind(kind, id)
}

func (f *Frame[T]) stale(id ID) {
	f.ctx.log.WithFields(logrus.Fields{"frame": f.seq, "id": string(id)}).Warn("frame is closed, ignoring widget")
}

// Invoke resolves w for this frame, draws it and returns its result.
// Widgets are resolved in call order; that order also decides which of
// several overlapping widgets ends up hovered.
func Invoke[R, V, T any](f *Frame[T], w Widget[R, V], clip geom.ClipRect, draw DrawFunc[V, T]) R {
	if !f.live() {
		f.stale(w.ID())
		var zero R
		return zero
	}
	var v V
	f.ctx.state.track(w.ID(), clip)
	r := w.Resolve(clip, &f.ctx.state, &v)
	if draw != nil {
		draw(clip, v, f.target)
	}
	return r
}

// InvokeStored is Invoke for stateful widgets. w is seeded with the result it
// produced last time and its new result is stored for the next frame. A
// stored value of the wrong type seeds w with R's zero value. With nothing
// stored w keeps the state it was built with.
func InvokeStored[R, V, T any](f *Frame[T], w Stateful[R, V], clip geom.ClipRect, draw DrawFunc[V, T]) R {
	if !f.live() {
		f.stale(w.ID())
		var zero R
		return zero
	}
	prev, ok := Load[R](&f.ctx.store, w.Kind(), w.ID())
	if ok || f.ctx.store.Has(w.Kind(), w.ID()) {
		w.Seed(prev)
	}
	r := Invoke[R, V, T](f, w, clip, draw)
	f.ctx.store.Commit(w.Kind(), w.ID(), r)
	return r
}
