// internal/vfx/celebration.go
package vfx

import (
	"image/color"

	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// WinCelebrationEffect два салюта из нижних углов владельца.
// Стреляют Duration секунд, затем ждут, пока погаснут все искры.
type WinCelebrationEffect struct {
	effectBase
	Duration float64
	left     *Emitter
	right    *Emitter
	elapsed  float64
}

func NewWinCelebrationEffect(rng utils.Random) *WinCelebrationEffect {
	spark := func(from, to float64) *Emitter {
		p := DefaultParticleData()
		p.Lifetime = 1.5
		p.Texture = TextureLine
		p.InitialColor = color.RGBA{255, 255, 0, 255}
		p.FinalColor = color.RGBA{218, 145, 0, 255}
		p.InitialSize, p.FinalSize = 16, 4
		p.InitialSpeed, p.FinalSpeed = 512, 0
		p.Gravity = 0.5
		return NewEmitter(EmitterData{
			Particle:     p,
			MaxParticles: 99999,
			Rate:         256,
			AngleFrom:    from,
			AngleTo:      to,
		}, rng)
	}
	return &WinCelebrationEffect{
		Duration: 2,
		left:     spark(155, 170),
		right:    spark(190, 205),
	}
}

func (e *WinCelebrationEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.elapsed += dt

	if e.elapsed > e.Duration {
		e.left.Data.Rate = 0
		e.right.Data.Rate = 0
		if e.left.ParticleCount() == 0 && e.right.ParticleCount() == 0 {
			e.done = true
			return
		}
	}

	e.left.Data.Position = geom.V(pos.X, pos.Y+size.Y)
	e.right.Data.Position = geom.V(pos.X+size.X, pos.Y+size.Y)
	e.left.Update(dt)
	e.right.Update(dt)
}

func (e *WinCelebrationEffect) Render(s Surface) {
	e.left.Render(s)
	e.right.Render(s)
}

// ParticleCount возвращает число искр обоих салютов.
func (e *WinCelebrationEffect) ParticleCount() int {
	return e.left.ParticleCount() + e.right.ParticleCount()
}
