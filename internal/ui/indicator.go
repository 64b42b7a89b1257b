// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"strconv"

	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// StatIndicator - цветной значок и число рядом (монеты).
type StatIndicator struct {
	Pos    geom.Vec
	Radius float64
	Color  color.RGBA
	value  int
	flash  float64
}

func NewStatIndicator(pos geom.Vec, radius float64, clr color.RGBA) *StatIndicator {
	return &StatIndicator{Pos: pos, Radius: radius, Color: clr, flash: math.Inf(1)}
}

func (i *StatIndicator) Update(dt float64) {
	i.flash += dt
}

// SetValue обновляет число; изменение ненадолго увеличивает значок.
func (i *StatIndicator) SetValue(v int) {
	if v != i.value {
		i.flash = 0
	}
	i.value = v
}

func (i *StatIndicator) Value() int { return i.value }

// Draw отрисовывает индикатор
func (i *StatIndicator) Draw(s vfx.Surface) {
	center := i.Pos.Add(geom.V(i.Radius, i.Radius))
	r := i.Radius * clickScale(i.flash*2)
	s.FillCircle(center, r, i.Color)

	text := strconv.Itoa(i.value)
	size := vfx.MeasureText(text)
	s.DrawText(text, geom.V(i.Pos.X+i.Radius*2+6, center.Y-size.Y/2), color.White)
}
