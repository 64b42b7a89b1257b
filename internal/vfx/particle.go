// internal/vfx/particle.go
package vfx

import (
	"image/color"

	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// ParticleData параметры частицы: все визуальные величины линейно
// интерполируются от Initial* к Final* за время жизни.
type ParticleData struct {
	Position  geom.Vec
	Direction geom.Vec
	Lifetime  float64

	Texture Texture

	InitialColor color.RGBA
	FinalColor   color.RGBA

	InitialSize float64
	FinalSize   float64

	InitialSpeed float64
	FinalSpeed   float64
	Gravity      float64 // добавка к вертикальной компоненте направления, в секунду

	Outline      bool
	OutlineColor color.RGBA
	OutlineWidth float64
}

// DefaultParticleData значения по умолчанию: белая точка 10→0 px, 60→0 px/s, 1 с.
func DefaultParticleData() ParticleData {
	return ParticleData{
		Lifetime:     1,
		Texture:      TextureCircle,
		InitialColor: color.RGBA{255, 255, 255, 255},
		FinalColor:   color.RGBA{255, 255, 255, 255},
		InitialSize:  10,
		FinalSize:    0,
		InitialSpeed: 60,
		FinalSpeed:   0,
		OutlineColor: color.RGBA{0, 0, 0, 255},
		OutlineWidth: 1,
	}
}

// Particle одна частица эмиттера.
type Particle struct {
	data      ParticleData
	position  geom.Vec
	direction geom.Vec
	color     color.RGBA
	size      float64
	age       float64
	alive     bool
}

// NewParticle создает частицу из копии data.
func NewParticle(data ParticleData) *Particle {
	return &Particle{
		data:      data,
		position:  data.Position,
		direction: data.Direction,
		color:     data.InitialColor,
		size:      data.InitialSize,
		alive:     true,
	}
}

// Update продвигает частицу на dt секунд.
func (p *Particle) Update(dt float64) {
	p.age += dt
	rel := p.age / p.data.Lifetime

	p.color = LerpColor(p.data.InitialColor, p.data.FinalColor, rel)
	step := dt * utils.Lerp(p.data.InitialSpeed, p.data.FinalSpeed, rel)
	p.direction.Y += dt * p.data.Gravity * 0.5
	p.position = p.position.Add(p.direction.Scale(step))
	p.size = utils.Lerp(p.data.InitialSize, p.data.FinalSize, rel)

	if p.age > p.data.Lifetime {
		p.alive = false
	}
}

// Render рисует частицу ее текстурой.
func (p *Particle) Render(s Surface) {
	p.data.Texture.Render(s, TextureStyle{
		Position:     p.position,
		Direction:    p.direction,
		Size:         p.size,
		Color:        p.color,
		Outline:      p.data.Outline,
		OutlineColor: p.data.OutlineColor,
		OutlineWidth: p.data.OutlineWidth,
	})
}

func (p *Particle) Alive() bool        { return p.alive }
func (p *Particle) Position() geom.Vec { return p.position }
func (p *Particle) Size() float64      { return p.size }
func (p *Particle) Age() float64       { return p.age }
