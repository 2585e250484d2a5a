// Package paint holds the draw routines for the ui widgets. They only read
// the visual state they are given and issue quads to a Renderer.
package paint

import (
	"github.com/hubastard/iui/engine/colors"
	"github.com/hubastard/iui/engine/geom"
	"github.com/hubastard/iui/engine/ui"
)

// Renderer draws solid quads centered at (cx, cy). Coordinates are window
// pixels with the origin at the top-left corner.
type Renderer interface {
	DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32)
}

var (
	ButtonIdle    = colors.Blue
	ButtonOver    = colors.Green
	ButtonDown    = colors.Red
	ButtonClicked = colors.White

	ToggleOn      = colors.Green
	ToggleOff     = colors.Red
	ToggleClicked = colors.White
)

// DrawButton fills the visible part of the button, colored by its state.
func DrawButton(clip geom.ClipRect, v ui.ButtonVisual, r Renderer) {
	if !clip.Visible() {
		return
	}
	c := ButtonIdle
	switch {
	case v.Clicked:
		c = ButtonClicked
	case v.Down:
		c = ButtonDown
	case v.Over:
		c = ButtonOver
	}
	fill(r, clip, c)
}

// DrawToggleButton fills the visible part of the toggle: green when on, red
// when off, darker while held and slightly darker while hovered.
func DrawToggleButton(clip geom.ClipRect, v ui.ToggleVisual, r Renderer) {
	if !clip.Visible() {
		return
	}
	c := ToggleOff
	if v.Activated {
		c = ToggleOn
	}
	switch {
	case v.Clicked:
		c = ToggleClicked
	case v.Down:
		c = c.Scale(0.7)
	case v.Over:
		c = c.Scale(0.8)
	}
	fill(r, clip, c)
}

func fill(r Renderer, clip geom.ClipRect, c colors.Color) {
	vis := visiblePart(clip)
	ctr := vis.Center()
	r.DrawQuad(float32(ctr.X), float32(ctr.Y), float32(vis.W), float32(vis.H), c, 0)
}

func visiblePart(clip geom.ClipRect) geom.Rect {
	return clip.Within(clip.Bounds).Clip
}
