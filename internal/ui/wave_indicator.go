// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	Pos          geom.Vec // центр верхнего края текста
	Color        color.RGBA
	LastColor    color.RGBA // цвет последней волны
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		Pos:          geom.V(x, y),
		Color:        clr,
		LastColor:    color.RGBA{255, 0, 0, 255},
		OutlineColor: color.RGBA{0, 0, 0, 255},
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает номер волны (с единицы) с однопиксельной обводкой.
// До первой волны ничего не рисуется.
func (i *WaveIndicator) Draw(s vfx.Surface, waveNumber int, last bool) {
	text := ToRoman(waveNumber)
	if text == "" {
		return
	}
	textColor := i.Color
	if last {
		textColor = i.LastColor
	}

	pos := geom.V(i.Pos.X-vfx.MeasureText(text).X/2, i.Pos.Y)
	for _, d := range []geom.Vec{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
		s.DrawText(text, pos.Add(d), i.OutlineColor)
	}
	s.DrawText(text, pos, textColor)
}
