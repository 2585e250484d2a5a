package ui

import (
	"github.com/hubastard/iui/engine/core"
	"github.com/hubastard/iui/engine/geom"
	"github.com/sirupsen/logrus"
)

type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerPress
	PointerRelease
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	default:
		return "invalid"
	}
}

// PointerEvent is a classified mouse event. Position is only set for moves,
// Button only for presses and releases.
type PointerEvent struct {
	Kind     PointerKind
	Position geom.Point
	Button   core.MouseButton
}

// DefaultMaxPending bounds the moves queued between two frames. Presses and
// releases are always kept.
const DefaultMaxPending = 256

// Events turns the raw platform stream into per-frame batches of pointer
// events. Pushes land in the pending buffer; Swap hands it over as the batch
// for the frame about to render. The zero value is ready to use with no
// bound on the pending queue.
type Events struct {
	pending []PointerEvent
	active  []PointerEvent

	pointer geom.Point
	moved   bool

	limit   int
	dropped int
	log     *logrus.Entry
}

// NewEvents returns a classifier that coalesces moves once limit events are
// pending. A limit of zero or less means unbounded.
func NewEvents(limit int, log *logrus.Entry) *Events {
	return &Events{limit: limit, log: log}
}

// Push classifies ev. Moves update the pointer position at once, so Pointer
// is current even between frames. Anything that is not a mouse move or
// button event is ignored.
func (q *Events) Push(ev core.Event) {
	switch e := ev.(type) {
	case core.EventMouseMove:
		q.pointer = geom.Pt(e.X, e.Y)
		q.moved = true
		q.enqueue(PointerEvent{Kind: PointerMove, Position: q.pointer})
	case core.EventMouseButton:
		kind := PointerRelease
		if e.Down {
			kind = PointerPress
		}
		q.enqueue(PointerEvent{Kind: kind, Button: e.Button})
	}
}

// enqueue appends ev. A full queue makes room by dropping its oldest move;
// moves only matter for their position, which is already tracked. Presses
// and releases are never dropped, so they may push the queue past its limit.
func (q *Events) enqueue(ev PointerEvent) {
	if q.limit > 0 && len(q.pending) >= q.limit {
		if i := firstMove(q.pending); i >= 0 {
			q.dropped++
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
		} else if ev.Kind == PointerMove {
			q.dropped++
			return
		}
	}
	q.pending = append(q.pending, ev)
}

func firstMove(evs []PointerEvent) int {
	for i, ev := range evs {
		if ev.Kind == PointerMove {
			return i
		}
	}
	return -1
}

// Swap makes everything pushed so far the active batch and starts an empty
// pending queue. The returned slice stays valid until the next Swap.
func (q *Events) Swap() []PointerEvent {
	q.pending, q.active = q.active[:0], q.pending
	if q.dropped > 0 {
		if q.log != nil {
			q.log.WithField("dropped", q.dropped).Debug("pointer moves dropped from a full queue")
		}
		q.dropped = 0
	}
	return q.active
}

// Pointer returns the last known pointer position, or geom.Outside before
// the first move.
func (q *Events) Pointer() geom.Point {
	if !q.moved {
		return geom.Outside
	}
	return q.pointer
}

// Pending reports how many events wait for the next Swap.
func (q *Events) Pending() int { return len(q.pending) }

// Reset drops every queued event. The pointer position is kept.
func (q *Events) Reset() {
	q.pending = q.pending[:0]
	q.active = q.active[:0]
	q.dropped = 0
}

// HasPress reports whether batch holds a press of any button.
func HasPress(batch []PointerEvent) bool { return hasKind(batch, PointerPress) }

// HasRelease reports whether batch holds a release of any button.
func HasRelease(batch []PointerEvent) bool { return hasKind(batch, PointerRelease) }

func hasKind(batch []PointerEvent, k PointerKind) bool {
	for _, ev := range batch {
		if ev.Kind == k {
			return true
		}
	}
	return false
}
