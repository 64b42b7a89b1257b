// internal/system/movement.go
package system

import (
	"laser-defense/internal/component"
	"laser-defense/internal/entity"
)

// MovementSystem продвигает врагов по их путям
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update двигает живых врагов на Speed*dt пикселей, пересекая при необходимости
// несколько точек пути за один шаг. Прошедший последнюю точку враг помечается
// выбывшим и дает Leaked; из мира его убирает World.PruneDead.
func (s *MovementSystem) Update(deltaTime float64) []entity.Outcome {
	var outcomes []entity.Outcome
	for _, id := range s.world.EnemyIDs() {
		if !s.world.IsAlive(id) {
			continue
		}
		pos, hasPos := s.world.Positions[id]
		vel, hasVel := s.world.Velocities[id]
		path, hasPath := s.world.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}
		if walk(pos, path, vel.Speed*deltaTime) {
			s.world.Enemies[id].ReachedEnd = true
			outcomes = append(outcomes, s.world.NewOutcome(entity.Leaked, id, 0))
		}
	}
	return outcomes
}

// walk продвигает pos по path на distance и сообщает, пройдена ли последняя точка.
func walk(pos *component.Position, path *component.Path, distance float64) bool {
	if len(path.Points) == 0 {
		return true
	}
	next := pos.TopLeft
	remaining := distance

	for remaining > 0 {
		if next == path.Points[path.CurrentIndex] {
			path.CurrentIndex++
		}
		if path.CurrentIndex > len(path.Points)-1 {
			pos.TopLeft = next
			return true
		}

		d := path.Points[path.CurrentIndex].Sub(next)
		dist := d.Len()
		if remaining >= dist {
			next = path.Points[path.CurrentIndex]
			remaining -= dist
		} else {
			next = next.Add(d.Scale(remaining / dist))
			remaining = 0
		}
	}
	pos.TopLeft = next
	return false
}
