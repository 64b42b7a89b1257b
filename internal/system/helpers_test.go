package system

import (
	"testing"

	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/internal/vfx/vfxtest"
	"laser-defense/pkg/geom"
)

var testPath = []geom.Vec{{X: 0, Y: 100}, {X: 2000, Y: 100}}

func newTestWorld() *entity.World {
	return entity.NewWorld(assets.DefaultRegistry(), config.Default(), vfx.NewManager(), vfxtest.FixedRandom{Float: 0.5})
}

func mustSchedule(t *testing.T, doc string) *defs.WaveSchedule {
	t.Helper()
	schedule, err := defs.ParseWaveSchedule([]byte(doc))
	if err != nil {
		t.Fatalf("ParseWaveSchedule failed: %v", err)
	}
	return schedule
}

// spawnEnemy ставит врага уровня tier в pos; путь уходит вправо на 1000 px.
func spawnEnemy(w *entity.World, tier int, pos geom.Vec) types.EntityID {
	return w.CreateEnemy(tier, []geom.Vec{pos, pos.Add(geom.V(1000, 0))}, 50, 5)
}

// enemyCenteredAt создает врага, центр которого находится в c.
func enemyCenteredAt(w *entity.World, c geom.Vec) types.EntityID {
	return spawnEnemy(w, 0, c.Sub(geom.V(config.EnemySize/2, config.EnemySize/2)))
}

func tower(t *testing.T, id string) defs.TowerDefinition {
	t.Helper()
	catalog, err := defs.NewTowerCatalog(defs.DefaultTowers())
	if err != nil {
		t.Fatalf("default towers invalid: %v", err)
	}
	def, ok := catalog.Get(id)
	if !ok {
		t.Fatalf("tower %s missing", id)
	}
	return def
}

func placeTurret(t *testing.T, w *entity.World, id string, topLeft geom.Vec) types.EntityID {
	t.Helper()
	return w.CreateTurret(tower(t, id), topLeft)
}

func totalOf(outcomes []entity.Outcome, kind entity.OutcomeKind) float64 {
	sum := 0.0
	for _, o := range outcomes {
		if o.Kind == kind {
			sum += o.Amount
		}
	}
	return sum
}

// eventLog подписывается на все события планировщика и запоминает их типы.
func eventLog(d *event.Dispatcher) *[]event.EventType {
	var got []event.EventType
	record := event.ListenerFunc(func(e event.Event) { got = append(got, e.Type) })
	for _, t := range []event.EventType{event.WaveStarted, event.WaveCompleted, event.EnemySpawned, event.GameWon} {
		d.Subscribe(t, record)
	}
	return &got
}

func countEvents(events []event.EventType, t event.EventType) int {
	n := 0
	for _, e := range events {
		if e == t {
			n++
		}
	}
	return n
}

func killAll(w *entity.World) {
	for _, id := range w.EnemyIDs() {
		ApplyDamage(w, id, w.Healths[id].Value)
	}
	w.PruneDead()
}
