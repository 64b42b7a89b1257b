// internal/vfx/gradient_line.go
package vfx

import (
	"image/color"

	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// GradientLineData параметры бегущей линии. Точки пути и длина хвоста заданы
// в долях размеров владельца (0..1), чтобы линия масштабировалась вместе с ним.
type GradientLineData struct {
	Path         []geom.Vec
	LineLength   float64
	LoopDuration float64 // время одного прохода по всему пути
	LoopCount    int     // -1: бесконечно
	Color        color.RGBA
}

// GradientLineEffect ведет "голову" по пути с постоянной скоростью, тянет за ней
// хвост фиксированной длины с градиентом прозрачности и сыплет частицами с головы.
type GradientLineEffect struct {
	effectBase
	data       GradientLineData
	emitter    *Emitter
	pathLength float64

	frontIndex int
	frontPos   geom.Vec
	endReached bool
	loop       int
	fadeTime   float64
	points     []geom.Vec
}

func NewGradientLineEffect(data GradientLineData, rng utils.Random) *GradientLineEffect {
	p := DefaultParticleData()
	p.Lifetime = 0.5
	p.InitialColor = color.RGBA{255, 255, 255, 255}
	p.FinalColor = color.RGBA{200, 200, 200, 255}
	p.InitialSize, p.FinalSize = 3, 0
	p.InitialSpeed, p.FinalSpeed = 20, 0
	if data.LoopCount == 0 {
		data.LoopCount = 1
	}
	if data.Color == (color.RGBA{}) {
		data.Color = color.RGBA{255, 255, 255, 255}
	}

	e := &GradientLineEffect{
		data: data,
		emitter: NewEmitter(EmitterData{
			Particle:     p,
			MaxParticles: 30,
			Rate:         30,
			AngleTo:      360,
		}, rng),
	}
	if len(data.Path) > 0 {
		e.frontPos = data.Path[0]
	}
	for i := 0; i+1 < len(data.Path); i++ {
		e.pathLength += data.Path[i].Dist(data.Path[i+1])
	}
	return e
}

func (e *GradientLineEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	path := e.data.Path
	if len(path) < 2 || e.pathLength == 0 || e.data.LoopDuration <= 0 {
		e.done = true
		return
	}
	speed := e.pathLength / e.data.LoopDuration

	e.points = e.points[:0]
	next := e.frontPos
	remaining := speed * dt

	for remaining > 0 && !e.endReached {
		if next == path[e.frontIndex] {
			e.frontIndex++
		}
		if e.frontIndex >= len(path) {
			if e.data.LoopCount != -1 {
				e.loop++
				if e.loop >= e.data.LoopCount {
					e.endReached = true
					break
				}
			}
			e.frontIndex = 0
		}
		next, remaining = stepToward(next, path[e.frontIndex], remaining)
	}
	e.frontPos = next

	backIndex := e.frontIndex - 1
	if backIndex < 0 {
		backIndex = 0
		if e.loop > 0 {
			backIndex = len(path) - 1
		}
	}
	remaining = e.data.LineLength
	if e.endReached {
		e.fadeTime += dt
		remaining = e.data.LineLength - e.fadeTime*speed
		e.emitter.Data.Rate = 10
		if remaining <= 0 {
			e.points = e.points[:0]
			e.emitter.Data.Rate = 0
			if e.emitter.ParticleCount() == 0 {
				e.done = true
			}
			e.emitter.Update(dt)
			return
		}
	}

	// хвост: идем назад от головы, пока не израсходуем длину линии
	tail := []geom.Vec{next}
	for remaining > 0 && backIndex >= 0 {
		if next == path[backIndex] {
			backIndex--
			continue
		}
		next, remaining = stepToward(next, path[backIndex], remaining)
		tail = append(tail, next)
	}

	// tail идет от головы назад; разворачиваем, чтобы линия шла от хвоста к голове
	for i := len(tail) - 1; i >= 0; i-- {
		e.points = append(e.points, e.toParent(tail[i]))
	}

	e.emitter.Data.Position = e.toParent(e.frontPos)
	e.emitter.Update(dt)
}

func stepToward(from, to geom.Vec, budget float64) (geom.Vec, float64) {
	d := to.Sub(from)
	dist := d.Len()
	if budget >= dist {
		return to, budget - dist
	}
	return from.Add(d.Scale(budget / dist)), 0
}

func (e *GradientLineEffect) toParent(p geom.Vec) geom.Vec {
	return geom.V(e.parentPos.X+p.X*e.parentSize.X, e.parentPos.Y+p.Y*e.parentSize.Y)
}

func (e *GradientLineEffect) Render(s Surface) {
	n := len(e.points)
	for i := 0; i+1 < n; i++ {
		alpha := 255 * float64(i+1) / float64(n-1)
		s.StrokeLine(e.points[i], e.points[i+1], 1, WithAlpha(e.data.Color, alpha))
	}
	e.emitter.Render(s)
}

// Points возвращает последнюю вычисленную ломаную в координатах экрана.
func (e *GradientLineEffect) Points() []geom.Vec { return e.points }

// Front возвращает положение головы в долях владельца.
func (e *GradientLineEffect) Front() geom.Vec { return e.frontPos }
