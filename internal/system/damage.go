// internal/system/damage.go
package system

import (
	"laser-defense/internal/entity"
	"laser-defense/internal/types"
)

// ApplyDamage снимает здоровье врага и копит урон в буфере. Смертельный удар
// принудительно сбрасывает буфер и один раз возвращает Killed.
// Мертвые и убранные враги урон не получают.
func ApplyDamage(w *entity.World, id types.EntityID, points float64) []entity.Outcome {
	if !w.IsAlive(id) {
		return nil
	}
	health := w.Healths[id]
	health.Value -= points
	health.Buffer += points
	if health.Value > 0 {
		return nil
	}
	outcomes := UnbufferDamage(w, id, true)
	health.Killed = true
	return append(outcomes, w.NewOutcome(entity.Killed, id, 0))
}

// UnbufferDamage ограничивает буфер максимальным здоровьем и, если он превысил
// порог (или force), возвращает DamageFlushed с накопленной суммой и обнуляет буфер.
func UnbufferDamage(w *entity.World, id types.EntityID, force bool) []entity.Outcome {
	health, ok := w.Healths[id]
	if !ok {
		return nil
	}
	health.Buffer = min(health.Max, health.Buffer)
	if health.Buffer <= health.Threshold && !force {
		return nil
	}
	amount := health.Buffer
	health.Buffer = 0
	if amount <= 0 {
		return nil
	}
	return []entity.Outcome{w.NewOutcome(entity.DamageFlushed, id, amount)}
}
