// Package geom holds the axis-aligned rectangles used for hit testing.
package geom

import (
	"fmt"
	"math"
)

type Point struct{ X, Y float64 }

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Outside is a point no finite rectangle contains.
var Outside = Point{X: math.Inf(-1), Y: math.Inf(-1)}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string { return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H) }

// Contains reports whether p lies in r. Both edges are inclusive, so a point
// at X+W or Y+H is inside.
func (r Rect) Contains(p Point) bool {
	if p.X < r.X || p.Y < r.Y {
		return false
	}
	if p.X > r.X+r.W || p.Y > r.Y+r.H {
		return false
	}
	return true
}

// Intersects compares origin distance against the summed extents. The test is
// strict: rectangles that only touch do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return math.Abs(r.X-o.X)*2 < r.W+o.W &&
		math.Abs(r.Y-o.Y)*2 < r.H+o.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// ClipRect is a widget's bounds together with the box that limits where it
// can be seen and hit.
type ClipRect struct {
	Bounds Rect
	Clip   Rect
}

// Raw returns an unclipped rectangle: the clip box equals the bounds.
func Raw(x, y, w, h float64) ClipRect {
	r := Rect{X: x, Y: y, W: w, H: h}
	return ClipRect{Bounds: r, Clip: r}
}

func Clipped(bounds, clip Rect) ClipRect { return ClipRect{Bounds: bounds, Clip: clip} }

// Within returns c with its clip box narrowed to the overlap with parent.
// When the two do not overlap the clip box collapses to an empty rectangle at
// the parent's origin.
func (c ClipRect) Within(parent Rect) ClipRect {
	x0 := math.Max(c.Clip.X, parent.X)
	y0 := math.Max(c.Clip.Y, parent.Y)
	x1 := math.Min(c.Clip.X+c.Clip.W, parent.X+parent.W)
	y1 := math.Min(c.Clip.Y+c.Clip.H, parent.Y+parent.H)
	if x1 < x0 || y1 < y0 {
		return ClipRect{Bounds: c.Bounds, Clip: Rect{X: parent.X, Y: parent.Y}}
	}
	return ClipRect{Bounds: c.Bounds, Clip: Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}}
}

// Contains reports whether p is inside both the bounds and the clip box.
func (c ClipRect) Contains(p Point) bool {
	return c.Bounds.Contains(p) && c.Clip.Contains(p)
}

// Visible reports whether any part of the bounds falls in the clip box.
func (c ClipRect) Visible() bool { return c.Bounds.Intersects(c.Clip) }
