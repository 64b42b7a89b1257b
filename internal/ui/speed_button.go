// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"

	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// SpeedButton - две стрелки "перемотки", цвет показывает выбранную скорость
type SpeedButton struct {
	Center       geom.Vec
	Size         float64
	StateColors  []color.Color
	CurrentState int
	sinceClick   float64
}

func NewSpeedButton(center geom.Vec, size float64, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		Center:      center,
		Size:        size,
		StateColors: stateColors,
		sinceClick:  math.Inf(1),
	}
}

func (b *SpeedButton) Update(dt float64) {
	b.sinceClick += dt
}

func (b *SpeedButton) Draw(s vfx.Surface) {
	size := b.Size * clickScale(b.sinceClick)
	clr := b.StateColors[min(b.CurrentState, len(b.StateColors)-1)]

	height := size * 1.2
	width := size
	offset := width * 0.8

	for _, dx := range []float64{0, offset} {
		tri := []geom.Vec{
			b.Center.Add(geom.V(dx-width, -height/2)),
			b.Center.Add(geom.V(dx, 0)),
			b.Center.Add(geom.V(dx-width, height/2)),
		}
		s.FillPolygon(tri, clr)
		for i := range tri {
			s.StrokeLine(tri[i], tri[(i+1)%len(tri)], 1, color.White)
		}
	}
}

// IsClicked - попадание проверяем по кругу, форма кнопки сложная
func (b *SpeedButton) IsClicked(mouse geom.Vec) bool {
	return mouse.Dist(b.Center) <= b.Size*1.5
}

// SetState показывает выбранную скорость; при смене кнопка вздрагивает.
func (b *SpeedButton) SetState(state int) {
	if state != b.CurrentState {
		b.sinceClick = 0
	}
	b.CurrentState = state
}
