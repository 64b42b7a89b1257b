package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseWaveScheduleJSON(t *testing.T) {
	s, err := ParseWaveSchedule([]byte(`{"0": {"0": {"1": {"0": "5"}}}, "1": {"0.5": {"2": {"1": "3", "2": 4}}}}`))
	if err != nil {
		t.Fatalf("ParseWaveSchedule failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	w0, ok := s.Wave(0)
	if !ok {
		t.Fatal("wave 0 missing")
	}
	if got := w0.Count(SpawnKey{Pulse: 0, Duration: 1, Tier: 0}); got != 5 {
		t.Errorf("wave 0 count = %d, want 5", got)
	}
	w1, _ := s.Wave(1)
	if got := w1.Count(SpawnKey{Pulse: 0.5, Duration: 2, Tier: 2}); got != 4 {
		t.Errorf("numeric counts should load too, got %d", got)
	}
	if w1.Total() != 7 {
		t.Errorf("wave 1 total = %d, want 7", w1.Total())
	}
}

func TestParseWaveScheduleYAML(t *testing.T) {
	doc := `
"0":
  "0":
    "10": {"0": "8"}
  "12.5":
    "5": {"1": "4"}
`
	s, err := ParseWaveSchedule([]byte(doc))
	if err != nil {
		t.Fatalf("ParseWaveSchedule failed: %v", err)
	}
	w, _ := s.Wave(0)
	if len(w.Cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(w.Cells))
	}
	if w.Cells[1].Pulse != 12.5 || w.Cells[1].Tier != 1 {
		t.Errorf("unexpected second cell %+v", w.Cells[1])
	}
}

func TestParseWaveScheduleMergesEquivalentKeys(t *testing.T) {
	s, err := ParseWaveSchedule([]byte(`{"0": {"0": {"1": {"0": "5"}, "1.0": {"0": "3"}}, "0.00": {"1": {"0": "2"}}}}`))
	if err != nil {
		t.Fatalf("ParseWaveSchedule failed: %v", err)
	}
	w, _ := s.Wave(0)
	if len(w.Cells) != 1 {
		t.Fatalf("keys with the same value should share one cell, got %+v", w.Cells)
	}
	if got := w.Count(SpawnKey{Pulse: 0, Duration: 1, Tier: 0}); got != 10 {
		t.Errorf("merged count = %d, want 10", got)
	}
	p := NewWaveProgress()
	p.Advance(w.Cells[0].SpawnKey, 10)
	if !p.Complete(w) {
		t.Error("issuing the merged count should complete the wave")
	}
}

func TestParseWaveScheduleSkipsMalformedEntries(t *testing.T) {
	doc := `{"0": {"0": {"1": {"0": "5", "x": "1", "1": "many"}}, "soon": {"1": {"0": "2"}}}, "first": {}}`
	s, err := ParseWaveSchedule([]byte(doc))
	if err != nil {
		t.Fatalf("ParseWaveSchedule failed: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("only wave 0 should load, got %v", s.Indices())
	}
	w, _ := s.Wave(0)
	if w.Total() != 5 {
		t.Errorf("only the valid cell should load, total = %d", w.Total())
	}
}

func TestParseWaveScheduleErrors(t *testing.T) {
	if _, err := ParseWaveSchedule([]byte(`{}`)); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("empty mapping: expected ErrEmptySchedule, got %v", err)
	}
	if _, err := ParseWaveSchedule([]byte(``)); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("empty document: expected ErrEmptySchedule, got %v", err)
	}
	if _, err := ParseWaveSchedule([]byte(`[1, 2]`)); err == nil {
		t.Error("sequence document should fail")
	}
	if _, err := ParseWaveSchedule([]byte(`{"0": [`)); err == nil {
		t.Error("broken document should fail")
	}
}

func TestLoadWaveSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	if err := os.WriteFile(path, []byte(`{"3": {"0": {"1": {"0": "1"}}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadWaveSchedule(path)
	if err != nil {
		t.Fatalf("LoadWaveSchedule failed: %v", err)
	}
	if first, ok := s.Next(-1); !ok || first != 3 {
		t.Errorf("first wave = (%d, %v), want (3, true)", first, ok)
	}
	if _, err := LoadWaveSchedule(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadTowerDefinitions(t *testing.T) {
	doc := `
- id: TOWER_BLUE
  name: Blue Turret
  projectile: BULLET
  range: 100
  fireRate: 1
  cost: 50
  aimMode: nearest
  visuals:
    sprite: turret_blue
    color: "#3264ff"
- id: TOWER_RED
  name: Red Turret
  projectile: BEAM
  range: 140
  fireRate: 0.33
  cost: 150
`
	path := filepath.Join(t.TempDir(), "towers.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	catalog, err := LoadTowerDefinitions(path)
	if err != nil {
		t.Fatalf("LoadTowerDefinitions failed: %v", err)
	}
	blue, ok := catalog.Get("TOWER_BLUE")
	if !ok {
		t.Fatal("TOWER_BLUE missing")
	}
	if blue.AimMode != AimNearest {
		t.Errorf("aim mode = %v, want NEAREST", blue.AimMode)
	}
	if blue.Visuals.Color.B != 0xff || blue.Visuals.Color.G != 0x64 {
		t.Errorf("color not parsed: %+v", blue.Visuals.Color)
	}
	red, _ := catalog.Get("TOWER_RED")
	if red.AimMode != AimFirst {
		t.Errorf("missing aim mode should default to FIRST, got %v", red.AimMode)
	}
	if len(catalog.All()) != 2 || catalog.All()[0].ID != "TOWER_BLUE" {
		t.Error("catalog should keep document order")
	}
}

func TestNewTowerCatalogRejectsBadDefinitions(t *testing.T) {
	good := DefaultTowers()
	if _, err := NewTowerCatalog(good); err != nil {
		t.Fatalf("default towers should be valid: %v", err)
	}
	dup := append(DefaultTowers(), DefaultTowers()[0])
	if _, err := NewTowerCatalog(dup); err == nil {
		t.Error("duplicate ids should fail")
	}
	bad := DefaultTowers()
	bad[1].Projectile = "ROCKET"
	if _, err := NewTowerCatalog(bad); err == nil {
		t.Error("unknown projectile should fail")
	}
	bad = DefaultTowers()
	bad[0].FireRate = 0
	if _, err := NewTowerCatalog(bad); err == nil {
		t.Error("zero fire rate should fail")
	}
}

func TestParseLevel(t *testing.T) {
	doc := `
name: test
width: 512
height: 288
paths:
  - [[0, 96], [200, 96], [200, 200]]
zones:
  - {x: 32, y: 32, w: 128, h: 48}
`
	level, err := ParseLevel([]byte(doc))
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if len(level.Paths) != 1 || len(level.Paths[0]) != 3 {
		t.Fatalf("unexpected paths %+v", level.Paths)
	}
	if level.Paths[0][2].Y != 200 {
		t.Errorf("last waypoint = %v", level.Paths[0][2])
	}
	if len(level.Zones) != 1 || level.Zones[0].W != 128 {
		t.Errorf("unexpected zones %+v", level.Zones)
	}

	if _, err := ParseLevel([]byte("width: 10\nheight: 10\npaths: []\n")); err == nil {
		t.Error("level without paths should fail")
	}
	if _, err := ParseLevel([]byte("width: 10\nheight: 10\npaths: [[[0, 0]]]\n")); err == nil {
		t.Error("single-point path should fail")
	}
}

func TestShippedDataFilesLoad(t *testing.T) {
	dir := filepath.Join("..", "..", "assets", "data")

	schedule, err := LoadWaveSchedule(filepath.Join(dir, "waves.json"))
	if err != nil {
		t.Fatalf("waves.json: %v", err)
	}
	if schedule.Len() != 5 {
		t.Errorf("waves.json has %d waves, want 5", schedule.Len())
	}
	if w, _ := schedule.Wave(1); w.Total() != 12 {
		t.Errorf("wave 1 total = %d, want 12", w.Total())
	}

	towers, err := LoadTowerDefinitions(filepath.Join(dir, "towers.yaml"))
	if err != nil {
		t.Fatalf("towers.yaml: %v", err)
	}
	red, ok := towers.Get("TOWER_RED")
	if !ok || red.Projectile != ProjectileBeam || red.AimMode != AimNearest {
		t.Errorf("TOWER_RED = %+v", red)
	}

	level, err := LoadLevel(filepath.Join(dir, "level.yaml"))
	if err != nil {
		t.Fatalf("level.yaml: %v", err)
	}
	if len(level.Paths) != 2 || len(level.Zones) != 4 {
		t.Errorf("level has %d paths and %d zones, want 2 and 4", len(level.Paths), len(level.Zones))
	}
}
