package ui

import "github.com/hubastard/iui/engine/geom"

// Interaction is the cross-frame hover/press bookkeeping. There is one per
// Context and only an open Frame writes to it.
//
// Clicks are detected one frame late: the frame boundary copies Pressed into
// WasPressed before any widget runs, so a widget that was down last frame and
// is hovered but no longer down this frame has been clicked.
type Interaction struct {
	hovered    ID
	pressed    ID
	wasPressed ID
	released   ID

	pointer geom.Point
	batch   []PointerEvent
	press   bool
	release bool
}

// advance runs the frame boundary transition.
func (in *Interaction) advance(pointer geom.Point, batch []PointerEvent) {
	in.wasPressed = in.pressed
	in.hovered = NoID
	in.pressed = NoID
	in.released = NoID

	in.pointer = pointer
	in.batch = batch
	in.press = HasPress(batch)
	in.release = HasRelease(batch)
}

// track hit tests id against the pointer and claims the global slots for it.
// Widgets are tracked in call order, so with overlapping widgets the last
// one wins.
func (in *Interaction) track(id ID, clip geom.ClipRect) bool {
	over := clip.Contains(in.pointer)
	if !over || id == NoID {
		return over
	}
	in.hovered = id
	if in.wasPressed == id || in.press {
		in.pressed = id
		in.wasPressed = id
	}
	if in.release {
		in.released = id
		in.pressed = NoID
	}
	return over
}

// Flags reports how id relates to the current slots.
func (in *Interaction) Flags(id ID, clip geom.ClipRect) Flags {
	var f Flags
	f.Over = clip.Contains(in.pointer)
	if id == NoID {
		return f
	}
	f.Down = f.Over && in.pressed == id
	f.Clicked = f.Over && !f.Down && in.wasPressed == id
	return f
}

func (in *Interaction) Hovered() ID           { return in.hovered }
func (in *Interaction) Pressed() ID           { return in.pressed }
func (in *Interaction) WasPressed() ID        { return in.wasPressed }
func (in *Interaction) Released() ID          { return in.released }
func (in *Interaction) Pointer() geom.Point   { return in.pointer }
func (in *Interaction) Batch() []PointerEvent { return in.batch }
func (in *Interaction) IsHovered(id ID) bool  { return id != NoID && in.hovered == id }
func (in *Interaction) IsPressed(id ID) bool  { return id != NoID && in.pressed == id }
