// Package vfxtest provides doubles for code that draws through vfx.Surface.
package vfxtest

import (
	"image/color"

	"laser-defense/pkg/geom"
)

// Call is one recorded drawing primitive.
type Call struct {
	Op     string // "circle", "rect", "strokeRect", "line", "polygon", "text", "sprite"
	Pos    geom.Vec
	Rect   geom.Rect
	Text   string
	Sprite string
	Frame  int
	Color  color.Color
}

// RecordingSurface remembers every primitive drawn on it.
type RecordingSurface struct {
	Calls []Call
}

func (r *RecordingSurface) FillCircle(center geom.Vec, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "circle", Pos: center, Color: clr})
}

func (r *RecordingSurface) FillRect(rect geom.Rect, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "rect", Rect: rect, Pos: rect.TopLeft(), Color: clr})
}

func (r *RecordingSurface) StrokeRect(rect geom.Rect, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "strokeRect", Rect: rect, Pos: rect.TopLeft(), Color: clr})
}

func (r *RecordingSurface) StrokeLine(a, b geom.Vec, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "line", Pos: a, Rect: geom.Rect{X: a.X, Y: a.Y, W: b.X - a.X, H: b.Y - a.Y}, Color: clr})
}

func (r *RecordingSurface) FillPolygon(points []geom.Vec, clr color.Color) {
	c := Call{Op: "polygon", Color: clr}
	if len(points) > 0 {
		c.Pos = points[0]
	}
	r.Calls = append(r.Calls, c)
}

func (r *RecordingSurface) DrawText(s string, pos geom.Vec, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: s, Pos: pos, Color: clr})
}

func (r *RecordingSurface) DrawSprite(sprite string, frame int, dst geom.Rect, rotation float64, alpha float64) {
	r.Calls = append(r.Calls, Call{Op: "sprite", Sprite: sprite, Frame: frame, Rect: dst, Pos: dst.TopLeft()})
}

// Count returns how many calls used op.
func (r *RecordingSurface) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every string drawn with DrawText, in order.
func (r *RecordingSurface) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Sprites returns the recorded sprite calls for the given sprite name.
func (r *RecordingSurface) Sprites(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == "sprite" && c.Sprite == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets all recorded calls.
func (r *RecordingSurface) Reset() {
	r.Calls = r.Calls[:0]
}

// FixedRandom is a utils.Random that always returns the same values.
type FixedRandom struct {
	Int   int
	Float float64
}

func (f FixedRandom) Intn(n int) int {
	if f.Int >= n {
		return n - 1
	}
	return f.Int
}

func (f FixedRandom) Float64() float64 { return f.Float }
