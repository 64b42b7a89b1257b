// internal/vfx/surface.go
package vfx

import (
	"image/color"

	"laser-defense/pkg/geom"
)

// Surface принимает примитивы рисования. Его реализуют холсты Ebiten и raylib,
// а в тестах подставляется записывающая заглушка.
type Surface interface {
	FillCircle(center geom.Vec, radius float64, clr color.Color)
	FillRect(r geom.Rect, clr color.Color)
	StrokeRect(r geom.Rect, width float64, clr color.Color)
	StrokeLine(a, b geom.Vec, width float64, clr color.Color)
	FillPolygon(points []geom.Vec, clr color.Color)
	DrawText(s string, pos geom.Vec, clr color.Color)
	// DrawSprite рисует кадр frame спрайта sprite в прямоугольник dst,
	// повернув его на rotation градусов по часовой стрелке вокруг центра.
	DrawSprite(sprite string, frame int, dst geom.Rect, rotation float64, alpha float64)
}

// OffsetSurface сдвигает все примитивы на Offset (используется камерой).
type OffsetSurface struct {
	Target Surface
	Offset geom.Vec
}

func (o OffsetSurface) FillCircle(center geom.Vec, radius float64, clr color.Color) {
	o.Target.FillCircle(center.Add(o.Offset), radius, clr)
}

func (o OffsetSurface) FillRect(r geom.Rect, clr color.Color) {
	o.Target.FillRect(r.MovedTo(r.TopLeft().Add(o.Offset)), clr)
}

func (o OffsetSurface) StrokeRect(r geom.Rect, width float64, clr color.Color) {
	o.Target.StrokeRect(r.MovedTo(r.TopLeft().Add(o.Offset)), width, clr)
}

func (o OffsetSurface) StrokeLine(a, b geom.Vec, width float64, clr color.Color) {
	o.Target.StrokeLine(a.Add(o.Offset), b.Add(o.Offset), width, clr)
}

func (o OffsetSurface) FillPolygon(points []geom.Vec, clr color.Color) {
	moved := make([]geom.Vec, len(points))
	for i, p := range points {
		moved[i] = p.Add(o.Offset)
	}
	o.Target.FillPolygon(moved, clr)
}

func (o OffsetSurface) DrawText(s string, pos geom.Vec, clr color.Color) {
	o.Target.DrawText(s, pos.Add(o.Offset), clr)
}

func (o OffsetSurface) DrawSprite(sprite string, frame int, dst geom.Rect, rotation float64, alpha float64) {
	o.Target.DrawSprite(sprite, frame, dst.MovedTo(dst.TopLeft().Add(o.Offset)), rotation, alpha)
}

// LerpColor линейно интерполирует цвет, ограничивая каналы диапазоном [0, 255].
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	ch := func(a, b uint8) uint8 {
		v := float64(a) + t*(float64(b)-float64(a))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{R: ch(from.R, to.R), G: ch(from.G, to.G), B: ch(from.B, to.B), A: ch(from.A, to.A)}
}

// WithAlpha возвращает непрозрачный цвет c с альфой a (0..255), без премультипликации.
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 255 {
		a = 255
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// MeasureText возвращает размер строки в пикселях. Все поверхности рисуют
// моноширинным шрифтом 7x13.
func MeasureText(s string) geom.Vec {
	return geom.V(float64(len(s))*charWidth, charHeight)
}
