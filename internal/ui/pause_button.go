// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// PauseButton рисует "паузу" во время игры и "play" на паузе
type PauseButton struct {
	Center     geom.Vec
	Size       float64
	IsPaused   bool
	PauseColor color.Color
	PlayColor  color.Color
	sinceClick float64
}

func NewPauseButton(center geom.Vec, size float64, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		Center:     center,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		sinceClick: math.Inf(1),
	}
}

func (b *PauseButton) Update(dt float64) {
	b.sinceClick += dt
}

func (b *PauseButton) Draw(s vfx.Surface) {
	size := b.Size * clickScale(b.sinceClick)

	if b.IsPaused {
		// Треугольник (play)
		tri := []geom.Vec{
			b.Center.Add(geom.V(-size/2, -size*0.6)),
			b.Center.Add(geom.V(-size/2, size*0.6)),
			b.Center.Add(geom.V(size/2, 0)),
		}
		s.FillPolygon(tri, b.PlayColor)
		for i := range tri {
			s.StrokeLine(tri[i], tri[(i+1)%len(tri)], 1, color.White)
		}
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.3
	height := size * 1.2
	spacing := size * 0.2
	for _, x := range []float64{-width - spacing/2, spacing / 2} {
		bar := geom.Rect{X: b.Center.X + x, Y: b.Center.Y - height/2, W: width, H: height}
		s.FillRect(bar, b.PauseColor)
		s.StrokeRect(bar, 1, color.White)
	}
}

func (b *PauseButton) IsClicked(mouse geom.Vec) bool {
	return mouse.Dist(b.Center) <= b.Size
}

// SetPaused синхронизирует кнопку с сессией; при смене кнопка вздрагивает.
func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.sinceClick = 0
	}
	b.IsPaused = paused
}
