// internal/entity/outcome.go
package entity

import (
	"laser-defense/internal/types"
	"laser-defense/pkg/geom"
)

// OutcomeKind тип результата обновления сущности.
type OutcomeKind int

const (
	// Killed враг умер от урона. Приходит не больше одного раза на врага.
	Killed OutcomeKind = iota
	// Leaked враг дошел до конца пути.
	Leaked
	// DamageFlushed накопленный урон врага сброшен; Amount содержит сумму.
	DamageFlushed
)

func (k OutcomeKind) String() string {
	switch k {
	case Killed:
		return "Killed"
	case Leaked:
		return "Leaked"
	case DamageFlushed:
		return "DamageFlushed"
	}
	return "Unknown"
}

// Outcome событие, которое сессия обрабатывает после обновления систем.
// Уровень и позиция врага копируются, чтобы пережить его удаление.
type Outcome struct {
	Kind     OutcomeKind
	Enemy    types.EntityID
	Tier     int
	Position geom.Vec
	Amount   float64
}

// NewOutcome фиксирует результат kind для врага id.
func (w *World) NewOutcome(kind OutcomeKind, id types.EntityID, amount float64) Outcome {
	o := Outcome{Kind: kind, Enemy: id, Amount: amount}
	if enemy, ok := w.Enemies[id]; ok {
		o.Tier = enemy.Tier
	}
	if pos, ok := w.Positions[id]; ok {
		o.Position = pos.TopLeft
	}
	return o
}

// Count возвращает число результатов вида kind.
func Count(outcomes []Outcome, kind OutcomeKind) int {
	n := 0
	for _, o := range outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
