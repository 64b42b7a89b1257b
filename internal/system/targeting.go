// internal/system/targeting.go
package system

import (
	"fmt"

	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/types"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// Candidates возвращает живых врагов, чей центр не дальше rangePx от origin,
// в порядке появления.
func Candidates(w *entity.World, origin geom.Vec, rangePx float64) []types.EntityID {
	var in []types.EntityID
	for _, id := range w.EnemyIDs() {
		if w.IsAlive(id) && geom.InRange(w.Positions[id].Center(), origin, rangePx) {
			in = append(in, id)
		}
	}
	return in
}

// SelectTarget выбирает цель среди врагов в радиусе rangePx от origin.
// from позиция снаряда, от которой режимы Nearest и Last меряют расстояние.
// Возвращает 0, если в радиусе никого нет. Неизвестный режим вызывает панику.
func SelectTarget(w *entity.World, mode defs.AimMode, origin, from geom.Vec, rangePx float64, rng utils.Random) types.EntityID {
	if !mode.Valid() {
		panic(fmt.Sprintf("system: unknown aim mode %d", int(mode)))
	}
	in := Candidates(w, origin, rangePx)
	if len(in) == 0 {
		return 0
	}
	dist := func(id types.EntityID) float64 {
		return w.Positions[id].TopLeft.Dist(from)
	}

	switch mode {
	case defs.AimFirst:
		// максимум по (индекс точки, |Σточки − Σпозиции|); при равенстве побеждает последний
		best := in[0]
		bestIdx, bestDiff := progressKey(w, best)
		for _, id := range in[1:] {
			idx, diff := progressKey(w, id)
			if idx > bestIdx || (idx == bestIdx && diff >= bestDiff) {
				best, bestIdx, bestDiff = id, idx, diff
			}
		}
		return best
	case defs.AimNearest:
		best := in[0]
		for _, id := range in[1:] {
			if dist(id) < dist(best) {
				best = id
			}
		}
		return best
	case defs.AimLast:
		best := in[0]
		for _, id := range in[1:] {
			if dist(id) > dist(best) {
				best = id
			}
		}
		return best
	default:
		return in[rng.Intn(len(in))]
	}
}

// progressKey ключ сортировки режима First: индекс следующей точки и
// |сумма координат точки − сумма координат врага|.
func progressKey(w *entity.World, id types.EntityID) (int, float64) {
	path := w.Paths[id]
	if path.CurrentIndex >= len(path.Points) {
		return path.CurrentIndex, 0
	}
	diff := path.Points[path.CurrentIndex].Sum() - w.Positions[id].TopLeft.Sum()
	if diff < 0 {
		diff = -diff
	}
	return path.CurrentIndex, diff
}
