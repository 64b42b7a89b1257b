package entity

import (
	"testing"

	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/vfx"
	"laser-defense/internal/vfx/vfxtest"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(assets.DefaultRegistry(), config.Default(), vfx.NewManager(), vfxtest.FixedRandom{Float: 0.5})
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
