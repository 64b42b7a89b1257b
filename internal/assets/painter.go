// internal/assets/painter.go
package assets

import (
	"image/color"
	"math"

	"laser-defense/internal/config"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// Спрайты рисуются примитивами, поэтому оба фронтенда обходятся без файлов
// с картинками. Координаты кадра заданы долями (0..1) прямоугольника назначения.

// pen переводит локальные координаты кадра в экранные с учетом поворота.
type pen struct {
	s     vfx.Surface
	dst   geom.Rect
	sin   float64
	cos   float64
	alpha float64
}

func (p *pen) pt(u, v float64) geom.Vec {
	c := p.dst.Center()
	x := (u - 0.5) * p.dst.W
	y := (v - 0.5) * p.dst.H
	// поворот по часовой стрелке (ось Y направлена вниз)
	return geom.V(c.X+x*p.cos-y*p.sin, c.Y+x*p.sin+y*p.cos)
}

func (p *pen) tint(c color.RGBA) color.NRGBA {
	return vfx.WithAlpha(c, float64(c.A)*p.alpha)
}

func (p *pen) quad(c color.RGBA, u, v, w, h float64) {
	p.s.FillPolygon([]geom.Vec{p.pt(u, v), p.pt(u+w, v), p.pt(u+w, v+h), p.pt(u, v+h)}, p.tint(c))
}

func (p *pen) circle(c color.RGBA, u, v, r float64) {
	p.s.FillCircle(p.pt(u, v), r*min(p.dst.W, p.dst.H), p.tint(c))
}

func (p *pen) line(c color.RGBA, u0, v0, u1, v1, width float64) {
	p.s.StrokeLine(p.pt(u0, v0), p.pt(u1, v1), width*min(p.dst.W, p.dst.H), p.tint(c))
}

type painter func(p *pen, frame int)

var painters = map[string]painter{
	SpriteEnemy:      paintEnemy,
	SpriteTurretBlue: turretPainter(color.RGBA{50, 100, 255, 255}),
	SpriteTurretRed:  turretPainter(color.RGBA{255, 60, 60, 255}),
	SpriteBullet:     paintBullet,
	SpriteExplosion:  paintExplosion,
	SpriteImpact:     paintImpact,
	SpriteBeam:       func(*pen, int) {}, // луч рисуется линией
}

// PaintSprite рисует кадр frame спрайта sprite в dst, повернув его на rotation
// градусов по часовой стрелке вокруг центра. Неизвестный спрайт рисуется
// пурпурным квадратом.
func PaintSprite(s vfx.Surface, sprite string, frame int, dst geom.Rect, rotation, alpha float64) {
	rad := rotation * math.Pi / 180
	p := &pen{s: s, dst: dst, sin: math.Sin(rad), cos: math.Cos(rad), alpha: alpha}
	paint, ok := painters[sprite]
	if !ok {
		p.quad(color.RGBA{255, 0, 255, 255}, 0, 0, 1, 1)
		return
	}
	paint(p, max(frame, 0))
}

// HasPainter сообщает, умеет ли PaintSprite рисовать спрайт.
func HasPainter(sprite string) bool {
	_, ok := painters[sprite]
	return ok
}

func paintEnemy(p *pen, tier int) {
	body := config.TierColors[min(tier, len(config.TierColors)-1)]
	p.quad(vfx.LerpColor(body, color.RGBA{0, 0, 0, 255}, 0.5), 0.05, 0.05, 0.9, 0.9)
	p.quad(body, 0.15, 0.15, 0.7, 0.7)
	for _, u := range []float64{0.35, 0.65} {
		p.circle(color.RGBA{255, 255, 255, 255}, u, 0.4, 0.1)
		p.circle(color.RGBA{0, 0, 0, 255}, u, 0.42, 0.05)
	}
}

// turretPainter: кадр 0 - основание, кадр 1 - ствол, смотрящий вверх.
func turretPainter(barrel color.RGBA) painter {
	return func(p *pen, frame int) {
		if frame == 0 {
			p.quad(config.TurretBaseColor, 0, 0, 1, 1)
			p.quad(config.TurretBarrelColor, 0.12, 0.12, 0.76, 0.76)
			return
		}
		p.quad(barrel, 0.42, 0.05, 0.16, 0.5)
		p.circle(barrel, 0.5, 0.5, 0.2)
		p.circle(config.TurretBaseColor, 0.5, 0.5, 0.08)
	}
}

// bulletAngles - направление штриха пули для кадров 0..3
var bulletAngles = [...]float64{0, 135, 90, 45}

func paintBullet(p *pen, frame int) {
	a := bulletAngles[frame%len(bulletAngles)] * math.Pi / 180
	dx, dy := 0.35*math.Sin(a), -0.35*math.Cos(a)
	p.line(color.RGBA{120, 200, 255, 255}, 0.5-dx, 0.5-dy, 0.5+dx, 0.5+dy, 0.3)
	p.circle(color.RGBA{255, 255, 255, 255}, 0.5+dx, 0.5+dy, 0.15)
}

func paintExplosion(p *pen, frame int) {
	t := min(float64(frame)/4, 1)
	outer := vfx.LerpColor(color.RGBA{255, 220, 60, 255}, color.RGBA{200, 40, 0, 255}, t)
	outer.A = uint8(255 * (1 - 0.8*t))
	p.circle(outer, 0.5, 0.5, 0.15+0.35*t)
	if frame < 3 {
		p.circle(color.RGBA{255, 255, 220, 255}, 0.5, 0.5, 0.1+0.1*t)
	}
}

func paintImpact(p *pen, frame int) {
	t := min(float64(frame)/2, 1)
	ring := color.RGBA{200, 230, 255, uint8(255 * (1 - 0.6*t))}
	p.circle(ring, 0.5, 0.5, 0.2+0.3*t)
}
