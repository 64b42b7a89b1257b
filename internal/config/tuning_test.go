package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning should validate: %v", err)
	}
}

func TestParseTuningOverridesOnlyGivenFields(t *testing.T) {
	doc := []byte(`
session:
  startingCoins: 500
enemy:
  flushThreshold: 12.5
`)
	tuning, err := ParseTuning(doc)
	if err != nil {
		t.Fatalf("ParseTuning failed: %v", err)
	}
	if tuning.Session.StartingCoins != 500 {
		t.Errorf("StartingCoins = %d, want 500", tuning.Session.StartingCoins)
	}
	if tuning.Enemy.FlushThreshold != 12.5 {
		t.Errorf("FlushThreshold = %v, want 12.5", tuning.Enemy.FlushThreshold)
	}
	if tuning.Session.StartingLives != 100 {
		t.Errorf("StartingLives should keep its default, got %d", tuning.Session.StartingLives)
	}
	if len(tuning.Session.SpeedOptions) != 3 {
		t.Errorf("SpeedOptions should keep its default, got %v", tuning.Session.SpeedOptions)
	}
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero lives", "session:\n  startingLives: 0\n"},
		{"empty speeds", "session:\n  speedOptions: []\n"},
		{"negative speed option", "session:\n  speedOptions: [1, -2]\n"},
		{"zero enemy speed", "enemy:\n  speed: 0\n"},
		{"no bullet jumps", "bullet:\n  maxJumps: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseTuning([]byte("session: [unclosed")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("beam:\n  damagePerShot: 35\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning failed: %v", err)
	}
	if tuning.Beam.DamagePerShot != 35 {
		t.Errorf("DamagePerShot = %v, want 35", tuning.Beam.DamagePerShot)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestShippedTuningKeepsDefaults(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join("..", "..", "assets", "data", "tuning.yaml"))
	if err != nil {
		t.Fatalf("LoadTuning failed: %v", err)
	}
	if tuning.Session.StartingCoins != 60 {
		t.Errorf("StartingCoins = %d, want 60", tuning.Session.StartingCoins)
	}
	if tuning.Bullet != Default().Bullet {
		t.Errorf("bullet tuning should keep defaults, got %+v", tuning.Bullet)
	}
}
