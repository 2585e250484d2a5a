package ui

import (
	"github.com/hubastard/iui/engine/core"
	"github.com/hubastard/iui/engine/geom"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// MaxPendingEvents is the queue length past which pointer moves are
	// coalesced. Zero means DefaultMaxPending, a negative value never
	// coalesces. Presses and releases are never dropped.
	MaxPendingEvents int
	Log              *logrus.Entry
}

// Context owns everything the UI keeps across frames: the event queue, the
// interaction slots and the stored widget results. Widgets only touch it
// through a Frame.
type Context struct {
	events Events
	state  Interaction
	store  Store
	log    *logrus.Entry

	current uint64 // seq of the open frame, 0 when none is open
	seq     uint64
}

func New(opts Options) *Context {
	log := opts.Log
	if log == nil {
		log = logrus.WithField("component", "ui")
	}
	limit := opts.MaxPendingEvents
	if limit == 0 {
		limit = DefaultMaxPending
	}
	c := &Context{
		events: *NewEvents(limit, log),
		store:  *NewStore(log),
		log:    log,
	}
	c.state.pointer = geom.Outside
	return c
}

// Push feeds one raw platform event to the UI. Call it from the event loop
// between frames; events pushed while a frame is open wait for the next one.
func (c *Context) Push(ev core.Event) { c.events.Push(ev) }

// Pointer is the live pointer position, updated on every move.
func (c *Context) Pointer() geom.Point { return c.events.Pointer() }

// Pending reports how many pointer events wait for the next frame.
func (c *Context) Pending() int { return c.events.Pending() }

// Interaction returns the slots as the last frame left them. The view is
// read-only; only a Frame moves it forward.
func (c *Context) Interaction() *Interaction { return &c.state }

// Stored reports whether a result is stored for (kind, id).
func (c *Context) Stored(kind Kind, id ID) bool { return c.store.Has(kind, id) }

// Frames returns how many frames have been opened.
func (c *Context) Frames() uint64 { return c.seq }

// InFrame reports whether a frame is open.
func (c *Context) InFrame() bool { return c.current != 0 }

// Peek reads a stored result without a frame. It never creates an entry.
func Peek[R any](c *Context, kind Kind, id ID) (R, bool) {
	return Load[R](&c.store, kind, id)
}

// StoredLen returns the number of stored widget results.
func (c *Context) StoredLen() int { return c.store.Len() }
