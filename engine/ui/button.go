package ui

import "github.com/hubastard/iui/engine/geom"

// ButtonVisual is what a button's draw routine gets to see.
type ButtonVisual struct {
	Over    bool
	Down    bool
	Clicked bool
}

// UIButton reports true on the frame it is clicked.
type UIButton struct {
	id ID
}

func Button(id ID) *UIButton { return &UIButton{id: id} }

func (b *UIButton) ID() ID { return b.id }

func (b *UIButton) Resolve(clip geom.ClipRect, in *Interaction, v *ButtonVisual) bool {
	f := in.Flags(b.id, clip)
	*v = ButtonVisual{Over: f.Over, Down: f.Down, Clicked: f.Clicked}
	return v.Clicked
}
