package ui

import "github.com/hubastard/iui/engine/geom"

// ToggleVisual is what a toggle button's draw routine gets to see.
type ToggleVisual struct {
	Activated bool
	Over      bool
	Down      bool
	Clicked   bool
}

// UIToggle flips its state every time it is clicked. Its state lives in the
// Context's store between frames, so it has to be invoked with InvokeStored.
type UIToggle struct {
	id ID
	on bool
}

// Toggle returns a toggle button that starts switched off.
func Toggle(id ID) *UIToggle { return &UIToggle{id: id} }

// ToggleWith returns a toggle button starting in the given state.
func ToggleWith(id ID, on bool) *UIToggle { return &UIToggle{id: id, on: on} }

func (t *UIToggle) ID() ID         { return t.id }
func (t *UIToggle) Kind() Kind     { return KindToggle }
func (t *UIToggle) Seed(prev bool) { t.on = prev }
func (t *UIToggle) On() bool       { return t.on }

func (t *UIToggle) Resolve(clip geom.ClipRect, in *Interaction, v *ToggleVisual) bool {
	f := in.Flags(t.id, clip)
	*v = ToggleVisual{Activated: t.on, Over: f.Over, Down: f.Down, Clicked: f.Clicked}
	if f.Clicked {
		v.Activated = !t.on
	}
	return v.Activated
}
