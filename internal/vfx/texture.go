// internal/vfx/texture.go
package vfx

import (
	"image/color"
	"math"

	"laser-defense/pkg/geom"
)

// Texture форма, которой рисуется частица.
type Texture int

const (
	TextureCircle Texture = iota
	TextureRect
	TextureLine
	TexturePlus
	TextureStar
)

// starPoints вершины пентаграммы единичного радиуса, внешние и внутренние через одну.
var starPoints = func() []geom.Vec {
	pts := make([]geom.Vec, 0, 11)
	for i := 0; i <= 10; i++ {
		a := math.Pi * (0.1 + 0.2*float64(i%10))
		r := 1.0
		if i%2 == 1 {
			r = 1.0 / 3
		}
		pts = append(pts, geom.V(r*math.Cos(a), r*math.Sin(a)))
	}
	return pts
}()

// TextureStyle параметры рисования одной частицы.
type TextureStyle struct {
	Position     geom.Vec
	Direction    geom.Vec
	Size         float64
	Color        color.Color
	Outline      bool
	OutlineColor color.Color
	OutlineWidth float64
}

// Render рисует текстуру t на поверхности s.
func (t Texture) Render(s Surface, st TextureStyle) {
	p, size := st.Position, st.Size
	switch t {
	case TextureCircle:
		if st.Outline {
			s.FillCircle(p, size+st.OutlineWidth, st.OutlineColor)
		}
		s.FillCircle(p, size, st.Color)
	case TextureRect:
		if st.Outline {
			w := st.OutlineWidth
			s.FillRect(geom.Rect{X: p.X - w, Y: p.Y - w, W: size + 2*w, H: size + 2*w}, st.OutlineColor)
		}
		s.FillRect(geom.Rect{X: p.X, Y: p.Y, W: size, H: size}, st.Color)
	case TextureLine:
		d := st.Direction
		if st.Outline {
			w := st.OutlineWidth
			a := p.Sub(d.Scale(w))
			b := p.Add(d.Scale(size + 2*w))
			s.StrokeLine(a, b, 1+2*w, st.OutlineColor)
		}
		s.StrokeLine(p, p.Add(d.Scale(size)), 1, st.Color)
	case TexturePlus:
		w := 0.0
		if st.Outline {
			w = st.OutlineWidth
			s.FillPolygon(plusBar(p, size/3+w, size+w), st.OutlineColor)
			s.FillPolygon(plusBar(p, size+w, size/3+w), st.OutlineColor)
		}
		s.FillPolygon(plusBar(p, size/3, size), st.Color)
		s.FillPolygon(plusBar(p, size, size/3), st.Color)
	case TextureStar:
		pts := make([]geom.Vec, len(starPoints))
		for i, sp := range starPoints {
			pts[i] = p.Add(sp.Scale(size))
		}
		s.FillPolygon(pts, st.Color)
	}
}

func plusBar(c geom.Vec, halfW, halfH float64) []geom.Vec {
	return []geom.Vec{
		{X: c.X - halfW, Y: c.Y - halfH},
		{X: c.X + halfW, Y: c.Y - halfH},
		{X: c.X + halfW, Y: c.Y + halfH},
		{X: c.X - halfW, Y: c.Y + halfH},
	}
}
