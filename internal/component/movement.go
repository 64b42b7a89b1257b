// internal/component/movement.go
package component

import "laser-defense/pkg/geom"

// Position - левый верхний угол сущности и ее размер
type Position struct {
	TopLeft geom.Vec
	Size    geom.Vec
}

func (p *Position) Rect() geom.Rect  { return geom.RectAt(p.TopLeft, p.Size) }
func (p *Position) Center() geom.Vec { return p.Rect().Center() }

// Velocity - компонент скорости, пикселей в секунду
type Velocity struct {
	Speed float64
}

// Path - компонент пути
type Path struct {
	Points       []geom.Vec
	CurrentIndex int // индекс следующей точки
}
