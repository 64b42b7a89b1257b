// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

const (
	LivesPips      = 10
	LivesPipRadius = 5.0
	LivesPipGap    = 3.0
)

// LivesIndicator отображает жизни строкой кружков, каждый кружок - десятая
// часть стартового запаса.
type LivesIndicator struct {
	Pos geom.Vec
}

func NewLivesIndicator(x, y float64) *LivesIndicator {
	return &LivesIndicator{Pos: geom.V(x, y)}
}

// Filled возвращает число закрашенных кружков; любая ненулевая доля
// закрашивает кружок.
func Filled(lives, maxLives int) int {
	if lives <= 0 || maxLives <= 0 {
		return 0
	}
	n := (lives*LivesPips + maxLives - 1) / maxLives
	return min(n, LivesPips)
}

// Draw рисует кружки и число жизней справа от них.
func (i *LivesIndicator) Draw(s vfx.Surface, lives, maxLives int, clr color.RGBA) {
	filled := Filled(lives, maxLives)
	step := LivesPipRadius*2 + LivesPipGap
	for j := range LivesPips {
		c := i.Pos.Add(geom.V(LivesPipRadius+float64(j)*step, LivesPipRadius))
		pip := color.RGBA{0, 0, 0, 255}
		if j < filled {
			pip = clr
			// Последняя треть запаса подсвечивается тревожным цветом
			if filled <= LivesPips/3 {
				pip = color.RGBA{255, 140, 0, 255}
			}
		}
		s.FillCircle(c, LivesPipRadius, pip)
	}

	text := strconv.Itoa(lives)
	s.DrawText(text, i.Pos.Add(geom.V(LivesPips*step+4, LivesPipRadius-vfx.MeasureText(text).Y/2)), color.White)
}

// Width возвращает ширину индикатора вместе с числом.
func (i *LivesIndicator) Width() float64 {
	return LivesPips*(LivesPipRadius*2+LivesPipGap) + 4 + vfx.MeasureText("100").X
}
