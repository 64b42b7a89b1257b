// pkg/geom/geom.go
package geom

import "math"

// Vec is a point or direction in screen space (Y grows downwards).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Sum returns X+Y.
func (v Vec) Sum() float64 { return v.X + v.Y }

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a rect with the given top-left corner and size.
func RectAt(topLeft, size Vec) Rect {
	return Rect{X: topLeft.X, Y: topLeft.Y, W: size.X, H: size.Y}
}

// RectCentered builds a rect of the given size centered on c.
func RectCentered(c, size Vec) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, W: size.X, H: size.Y}
}

func (r Rect) TopLeft() Vec     { return Vec{r.X, r.Y} }
func (r Rect) TopRight() Vec    { return Vec{r.X + r.W, r.Y} }
func (r Rect) BottomLeft() Vec  { return Vec{r.X, r.Y + r.H} }
func (r Rect) BottomRight() Vec { return Vec{r.X + r.W, r.Y + r.H} }
func (r Rect) Center() Vec      { return Vec{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Size() Vec        { return Vec{r.W, r.H} }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }

// MovedTo returns r with its top-left corner at p.
func (r Rect) MovedTo(p Vec) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// CenteredOn returns r re-centered on c.
func (r Rect) CenteredOn(c Vec) Rect {
	r.X, r.Y = c.X-r.W/2, c.Y-r.H/2
	return r
}

// Intersects reports whether r and o overlap with a non-empty area.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Corners returns the corners clockwise starting at the top-left one.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// InRange reports whether b lies within radius r of a.
func InRange(a, b Vec, r float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy <= r*r
}

// DirectionDeg returns the unit vector for an angle in degrees where 0° points down
// and angles grow counter-clockwise on screen.
func DirectionDeg(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{math.Sin(rad), math.Cos(rad)}
}

// AngleDeg is the inverse of DirectionDeg: the angle of d in degrees in [-180, 180].
func AngleDeg(d Vec) float64 {
	return math.Atan2(d.X, d.Y) * 180 / math.Pi
}
