package system

import (
	"errors"
	"testing"

	"laser-defense/internal/defs"
	"laser-defense/internal/event"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

func TestDueCount(t *testing.T) {
	cell := func(pulse, duration float64, count int) defs.SpawnCell {
		return defs.SpawnCell{SpawnKey: defs.SpawnKey{Pulse: pulse, Duration: duration}, Count: count}
	}
	tests := []struct {
		name    string
		cell    defs.SpawnCell
		elapsed float64
		want    int
	}{
		{"before pulse", cell(2, 1, 5), 1.9, 0},
		{"at pulse", cell(2, 1, 5), 2, 0},
		{"halfway", cell(2, 1, 5), 2.5, 2},
		{"finished", cell(2, 1, 5), 3, 5},
		{"long after", cell(2, 1, 5), 100, 5},
		{"zero duration", cell(1, 0, 7), 1, 7},
		{"accumulated rounding", cell(0, 1, 5), 0.9999999999999999, 5},
		{"empty cell", cell(0, 1, 0), 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueCount(tt.cell, tt.elapsed); got != tt.want {
				t.Errorf("DueCount(%+v, %v) = %d, want %d", tt.cell, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestWaveSpawnsFiveEnemiesOverOneSecond(t *testing.T) {
	w := newTestWorld()
	d := event.NewDispatcher()
	events := eventLog(d)
	s := NewWaveSystem(w, mustSchedule(t, `{"0": {"0": {"1": {"0": "5"}}}}`), [][]geom.Vec{testPath}, d)

	if s.Wave() != -1 || s.Phase() != WaveIdle {
		t.Fatalf("fresh scheduler: wave %d phase %v", s.Wave(), s.Phase())
	}
	if !s.RequestNextWave() {
		t.Fatal("RequestNextWave refused from Idle")
	}
	if s.Wave() != 0 || s.Phase() != WaveActive {
		t.Fatalf("after request: wave %d phase %v", s.Wave(), s.Phase())
	}

	for range 60 {
		s.Update(1.0 / 60)
	}
	if w.EnemyCount() != 5 {
		t.Fatalf("spawned %d enemies after 1s, want 5", w.EnemyCount())
	}
	for _, id := range w.EnemyIDs() {
		if tier := w.Enemies[id].Tier; tier != 0 {
			t.Errorf("enemy tier = %d, want 0", tier)
		}
	}
	if countEvents(*events, event.WaveCompleted) != 1 {
		t.Errorf("WaveCompleted dispatched %d times", countEvents(*events, event.WaveCompleted))
	}
	// Последняя волна ждет, пока враги живы
	if s.Phase() != WaveActive {
		t.Fatalf("phase = %v while enemies are alive, want WaveActive", s.Phase())
	}

	killAll(w)
	s.Update(1.0 / 60)
	if s.Phase() != WaveWon {
		t.Fatalf("phase = %v after clearing the last wave, want Won", s.Phase())
	}
	if countEvents(*events, event.GameWon) != 1 || countEvents(*events, event.EnemySpawned) != 5 {
		t.Errorf("unexpected events: %v", *events)
	}
	if s.RequestNextWave() {
		t.Error("RequestNextWave accepted after Won")
	}
}

func TestWaveWithEquivalentDurationKeysCompletes(t *testing.T) {
	w := newTestWorld()
	schedule := mustSchedule(t, `{"0": {"0": {"1": {"0": "5"}, "1.0": {"0": "3"}}}, "1": {"0": {"1": {"0": "1"}}}}`)
	s := NewWaveSystem(w, schedule, [][]geom.Vec{testPath}, nil)
	s.RequestNextWave()

	for range 600 {
		s.Update(1.0 / 60)
	}
	if n := w.EnemyCount(); n != 8 {
		t.Errorf("spawned %d enemies, want 8", n)
	}
	if s.Phase() != WaveIdle || s.Wave() != 0 {
		t.Errorf("phase %v wave %d, want Idle after wave 0", s.Phase(), s.Wave())
	}
}

func TestWaveUpdateIsIdempotentForSameTime(t *testing.T) {
	w := newTestWorld()
	s := NewWaveSystem(w, mustSchedule(t, `{"0": {"0": {"2": {"0": "10"}}}}`), [][]geom.Vec{testPath}, nil)
	s.RequestNextWave()

	if got := len(s.Update(0.5)); got != 2 {
		t.Fatalf("first update spawned %d, want 2", got)
	}
	if got := len(s.Update(0)); got != 0 {
		t.Errorf("repeated tick spawned %d more enemies", got)
	}
	if w.EnemyCount() != 2 {
		t.Errorf("world holds %d enemies, want 2", w.EnemyCount())
	}
}

func TestWaveProgressIsMonotonicAndBounded(t *testing.T) {
	w := newTestWorld()
	schedule := mustSchedule(t, `
"0":
  "0":
    "3": {"0": "7", "2": "3"}
  "1.5":
    "0": {"1": "4"}
    "2": {"3": "5"}
`)
	s := NewWaveSystem(w, schedule, [][]geom.Vec{testPath}, nil)
	s.RequestNextWave()
	def, _ := schedule.Wave(0)
	rng := utils.NewPRNGService(7)

	prev := map[defs.SpawnKey]int{}
	total := 0
	for range 400 {
		total += len(s.Update(rng.Float64() * 0.05))
		for _, c := range def.Cells {
			n := s.Progress().Spawned(c.SpawnKey)
			if n < prev[c.SpawnKey] {
				t.Fatalf("count for %+v went down: %d -> %d", c.SpawnKey, prev[c.SpawnKey], n)
			}
			if n > c.Count {
				t.Fatalf("count for %+v is %d, only %d scheduled", c.SpawnKey, n, c.Count)
			}
			prev[c.SpawnKey] = n
		}
	}
	if total != def.Total() || s.Progress().Total() != def.Total() {
		t.Errorf("issued %d (progress %d), want %d", total, s.Progress().Total(), def.Total())
	}
}

func TestWaveGoesIdleBetweenWaves(t *testing.T) {
	w := newTestWorld()
	s := NewWaveSystem(w, mustSchedule(t, `{"0": {"0": {"0": {"0": "2"}}}, "3": {"0": {"0": {"1": "1"}}}}`), [][]geom.Vec{testPath}, nil)

	s.RequestNextWave()
	s.Update(0.1)
	if s.Phase() != WaveIdle || s.Wave() != 0 {
		t.Fatalf("after wave 0: phase %v wave %d, want Idle 0", s.Phase(), s.Wave())
	}

	s.RequestNextWave()
	if s.Wave() != 3 {
		t.Fatalf("next wave = %d, want 3", s.Wave())
	}
	spawned := s.Update(0.1)
	if len(spawned) != 1 || w.Enemies[spawned[0]].Tier != 1 {
		t.Fatalf("wave 3 spawned %v", spawned)
	}
	if s.Phase() != WaveActive {
		t.Fatalf("phase = %v with enemies alive, want WaveActive", s.Phase())
	}
	killAll(w)
	s.Update(0.1)
	if s.Phase() != WaveWon {
		t.Errorf("phase = %v, want Won", s.Phase())
	}
}

func TestWaveSpawnsRoundRobinOverPaths(t *testing.T) {
	w := newTestWorld()
	other := []geom.Vec{{X: 0, Y: 300}, {X: 500, Y: 300}}
	s := NewWaveSystem(w, mustSchedule(t, `{"0": {"0": {"0": {"0": "3"}}}}`), [][]geom.Vec{testPath, other}, nil)
	s.RequestNextWave()
	spawned := s.Update(0)

	want := []geom.Vec{testPath[0], other[0], testPath[0]}
	if len(spawned) != len(want) {
		t.Fatalf("spawned %d enemies, want %d", len(spawned), len(want))
	}
	for i, id := range spawned {
		if got := w.Positions[id].TopLeft; got != want[i] {
			t.Errorf("enemy %d starts at %v, want %v", i, got, want[i])
		}
	}
}

func TestWaveSnapshotResumesExactDelta(t *testing.T) {
	schedule := mustSchedule(t, `{"0": {"0": {"2": {"1": "10"}}}}`)
	s := NewWaveSystem(newTestWorld(), schedule, [][]geom.Vec{testPath}, nil)
	s.RequestNextWave()
	if got := len(s.Update(1)); got != 5 {
		t.Fatalf("spawned %d before snapshot, want 5", got)
	}
	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	w := newTestWorld()
	restored := NewWaveSystem(w, schedule, [][]geom.Vec{testPath}, nil)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Wave() != 0 || restored.Phase() != WaveActive || restored.Elapsed() != 1 {
		t.Fatalf("restored wave %d phase %v elapsed %v", restored.Wave(), restored.Phase(), restored.Elapsed())
	}
	if got := len(restored.Update(0)); got != 0 {
		t.Errorf("restored scheduler respawned %d enemies", got)
	}
	if got := len(restored.Update(1)); got != 5 {
		t.Errorf("restored scheduler spawned %d, want the remaining 5", got)
	}
}

func TestWaveRestoreRejectsMismatchedSnapshot(t *testing.T) {
	schedule := mustSchedule(t, `{"0": {"0": {"1": {"0": "5"}}}}`)
	tests := []struct {
		name string
		snap defs.ProgressSnapshot
	}{
		{"unknown wave", defs.ProgressSnapshot{Wave: 4, Active: true}},
		{"over issued", defs.ProgressSnapshot{Wave: 0, Active: true, Cells: []defs.SpawnRecord{{Pulse: 0, Duration: 1, Tier: 0, Spawned: 6}}}},
		{"negative elapsed", defs.ProgressSnapshot{Wave: 0, Elapsed: -1}},
		{"active before first wave", defs.ProgressSnapshot{Wave: -1, Active: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := defs.MarshalProgress(tt.snap)
			if err != nil {
				t.Fatal(err)
			}
			s := NewWaveSystem(newTestWorld(), schedule, [][]geom.Vec{testPath}, nil)
			if err := s.Restore(data); !errors.Is(err, ErrBadSnapshot) {
				t.Errorf("expected ErrBadSnapshot, got %v", err)
			}
		})
	}

	s := NewWaveSystem(newTestWorld(), schedule, [][]geom.Vec{testPath}, nil)
	if err := s.Restore([]byte{0xc1}); err == nil {
		t.Error("expected a decode error for garbage input")
	}
}

func TestWaveIndexClampsAtLastWave(t *testing.T) {
	schedule := mustSchedule(t, `{"0": {"0": {"0": {"0": "1"}}}, "1": {"0": {"0": {"0": "1"}}}}`)
	data, err := defs.MarshalProgress(defs.ProgressSnapshot{Wave: 1})
	if err != nil {
		t.Fatal(err)
	}
	s := NewWaveSystem(newTestWorld(), schedule, [][]geom.Vec{testPath}, nil)
	if err := s.Restore(data); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !s.RequestNextWave() {
		t.Fatal("RequestNextWave refused")
	}
	if s.Wave() != 1 {
		t.Errorf("wave = %d, want it clamped to 1", s.Wave())
	}
}
