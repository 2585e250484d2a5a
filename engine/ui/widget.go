package ui

import "github.com/hubastard/iui/engine/geom"

// ID names one widget instance across frames. Callers own its stability;
// reusing an ID for a different widget mixes up their stored state.
type ID string

// NoID is reserved: it marks an empty hovered/pressed slot and never claims
// one.
const NoID ID = ""

// Kind tags the widget types whose results can be stored.
type Kind uint8

const (
	KindButton Kind = iota + 1
	KindToggle
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Widget is implemented by every widget kind. R is what the widget reports
// to the host each frame, V the visual state handed to its draw routine.
//
// Resolve reads the interaction state for the frame and fills v. It must run
// at most once per invocation; the Frame takes care of that.
type Widget[R, V any] interface {
	ID() ID
	Resolve(clip geom.ClipRect, in *Interaction, v *V) R
}

// Stateful widgets get last frame's result back through Seed before they
// are resolved.
type Stateful[R, V any] interface {
	Widget[R, V]
	Kind() Kind
	Seed(prev R)
}

// Flags is the hover/press/click view of one widget, shared by all kinds.
type Flags struct {
	Over    bool
	Down    bool
	Clicked bool
}
