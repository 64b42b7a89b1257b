// internal/vfx/emitter.go
package vfx

import (
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// AreaDirection способ выбора направления при эмиссии из области.
type AreaDirection int

const (
	AreaRandomDirection AreaDirection = iota
	AreaTowardCenter
)

// EmitterData параметры эмиттера. Если Area задан, частицы появляются в случайной
// точке области; иначе в Position с углом из [AngleFrom, AngleTo] (градусы, 0° вниз).
type EmitterData struct {
	Particle     ParticleData
	Position     geom.Vec
	Area         *geom.Rect
	AreaMode     AreaDirection
	MaxParticles int
	Rate         float64 // частиц в секунду
	AngleFrom    float64
	AngleTo      float64
}

// Emitter копит "бюджет времени" и выпускает по частице на каждый интервал 1/Rate.
type Emitter struct {
	Data      EmitterData
	budget    float64
	particles []*Particle
	rng       utils.Random
}

// NewEmitter создает эмиттер; бюджет сразу равен одному интервалу,
// поэтому первая частица появляется на первом же обновлении.
func NewEmitter(data EmitterData, rng utils.Random) *Emitter {
	e := &Emitter{Data: data, rng: rng}
	if data.Rate > 0 {
		e.budget = 1 / data.Rate
	}
	return e
}

// Update выпускает новые частицы, двигает живые и удаляет умершие.
func (e *Emitter) Update(dt float64) {
	if e.Data.Rate > 0 {
		e.budget += dt
		interval := 1 / e.Data.Rate
		n := int(e.budget * e.Data.Rate)
		for i := 0; i < n; i++ {
			if len(e.particles) < e.Data.MaxParticles {
				e.spawn()
			}
			e.budget -= interval
		}
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Update(dt)
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(e.particles); i++ {
		e.particles[i] = nil
	}
	e.particles = alive
}

func (e *Emitter) spawn() {
	data := e.Data.Particle
	if area := e.Data.Area; area != nil {
		data.Position = geom.V(
			area.X+e.rng.Float64()*area.W,
			area.Y+e.rng.Float64()*area.H,
		)
		if e.Data.AreaMode == AreaTowardCenter {
			data.Direction = geom.DirectionDeg(geom.AngleDeg(area.Center().Sub(data.Position)))
		} else {
			data.Direction = geom.V(e.rng.Float64()*2-1, e.rng.Float64()*2-1)
		}
	} else {
		data.Position = e.Data.Position
		data.Direction = geom.DirectionDeg(utils.Range(e.rng, e.Data.AngleFrom, e.Data.AngleTo))
	}
	e.particles = append(e.particles, NewParticle(data))
}

// Render рисует все живые частицы.
func (e *Emitter) Render(s Surface) {
	for _, p := range e.particles {
		p.Render(s)
	}
}

// ParticleCount возвращает число живых частиц.
func (e *Emitter) ParticleCount() int {
	return len(e.particles)
}

// Particles возвращает живые частицы (только для чтения).
func (e *Emitter) Particles() []*Particle {
	return e.particles
}
