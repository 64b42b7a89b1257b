// internal/ui/button.go
package ui

import (
	"image/color"
	"math"

	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// clickScale - кнопка вздрагивает после клика и за доли секунды возвращается к размеру.
func clickScale(sinceClick float64) float64 {
	return 1.0 + 0.3*math.Exp(-sinceClick*8)
}

// Button представляет собой кликабельную кнопку с текстом.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool

	hovered    bool
	sinceClick float64
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  color.RGBA{0, 0, 0, 255},
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{130, 130, 130, 255},
		sinceClick: math.Inf(1),
	}
}

// Update запоминает наведение курсора и продвигает анимацию клика.
func (b *Button) Update(dt float64, mouse geom.Vec) {
	b.hovered = b.Rect.ContainsPoint(mouse)
	b.sinceClick += dt
}

// IsClicked проверяет, попадает ли клик в кнопку.
func (b *Button) IsClicked(mouse geom.Vec) bool {
	return !b.Disabled && b.Rect.ContainsPoint(mouse)
}

// Click запускает анимацию нажатия.
func (b *Button) Click() {
	b.sinceClick = 0
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(s vfx.Surface) {
	bg := b.BgColor
	if b.hovered && !b.Disabled {
		bg = b.HoverColor
	}
	if b.Disabled {
		bg.A /= 2
	}
	rect := geom.RectCentered(b.Rect.Center(), b.Rect.Size().Scale(clickScale(b.sinceClick)))
	s.FillRect(rect, bg)
	s.StrokeRect(rect, 2, color.RGBA{80, 80, 80, 255})

	textPos := rect.Center().Sub(vfx.MeasureText(b.Text).Scale(0.5))
	s.DrawText(b.Text, textPos, b.TextColor)
}
