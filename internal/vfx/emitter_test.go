package vfx

import (
	"image/color"
	"math"
	"testing"

	"laser-defense/internal/vfx/vfxtest"
	"laser-defense/pkg/geom"
)

func longLivedParticle() ParticleData {
	p := DefaultParticleData()
	p.Lifetime = 10
	return p
}

func TestEmitterSpendsBudgetPerInterval(t *testing.T) {
	e := NewEmitter(EmitterData{Particle: longLivedParticle(), MaxParticles: 100, Rate: 4}, vfxtest.FixedRandom{})

	// стартовый бюджет 0.25 + 0.25 = два интервала
	e.Update(0.25)
	if got := e.ParticleCount(); got != 2 {
		t.Fatalf("ParticleCount() = %d, want 2", got)
	}
	e.Update(0.25)
	if got := e.ParticleCount(); got != 3 {
		t.Errorf("ParticleCount() after second update = %d, want 3", got)
	}
}

func TestEmitterRespectsMaxParticles(t *testing.T) {
	e := NewEmitter(EmitterData{Particle: longLivedParticle(), MaxParticles: 3, Rate: 100}, vfxtest.FixedRandom{})
	for i := 0; i < 10; i++ {
		e.Update(0.1)
		if e.ParticleCount() > 3 {
			t.Fatalf("ParticleCount() = %d exceeds the cap", e.ParticleCount())
		}
	}
	if e.ParticleCount() != 3 {
		t.Errorf("ParticleCount() = %d, want 3", e.ParticleCount())
	}
}

func TestEmitterDropsDeadParticlesInSamePass(t *testing.T) {
	p := DefaultParticleData()
	p.Lifetime = 0.1
	e := NewEmitter(EmitterData{Particle: p, MaxParticles: 10, Rate: 1}, vfxtest.FixedRandom{})

	e.Update(0.5)
	if got := e.ParticleCount(); got != 0 {
		t.Errorf("particle older than its lifetime should be gone, count = %d", got)
	}
}

func TestEmitterWithZeroRateNeverSpawns(t *testing.T) {
	e := NewEmitter(EmitterData{Particle: longLivedParticle(), MaxParticles: 10}, vfxtest.FixedRandom{})
	for i := 0; i < 5; i++ {
		e.Update(1)
	}
	if e.ParticleCount() != 0 {
		t.Errorf("ParticleCount() = %d, want 0", e.ParticleCount())
	}
}

func TestEmitterSpawnsInsideArea(t *testing.T) {
	area := geom.Rect{X: 100, Y: 200, W: 50, H: 20}
	e := NewEmitter(EmitterData{
		Particle:     longLivedParticle(),
		Area:         &area,
		AreaMode:     AreaTowardCenter,
		MaxParticles: 10,
		Rate:         1,
	}, vfxtest.FixedRandom{Float: 0.5})
	e.Data.Particle.InitialSpeed, e.Data.Particle.FinalSpeed = 0, 0

	e.Update(0.01)
	if e.ParticleCount() != 1 {
		t.Fatalf("ParticleCount() = %d, want 1", e.ParticleCount())
	}
	pos := e.Particles()[0].Position()
	if !area.ContainsPoint(pos) {
		t.Errorf("particle spawned at %v outside %v", pos, area)
	}
}

func TestParticleInterpolation(t *testing.T) {
	data := DefaultParticleData()
	data.Direction = geom.V(1, 0)
	data.Lifetime = 1
	data.InitialSpeed, data.FinalSpeed = 10, 10
	data.InitialSize, data.FinalSize = 10, 0
	data.InitialColor = color.RGBA{0, 0, 0, 255}
	data.FinalColor = color.RGBA{200, 100, 0, 255}

	p := NewParticle(data)
	p.Update(0.5)

	if math.Abs(p.Position().X-5) > 1e-9 {
		t.Errorf("Position().X = %v, want 5", p.Position().X)
	}
	if math.Abs(p.Size()-5) > 1e-9 {
		t.Errorf("Size() = %v, want 5", p.Size())
	}
	if want := (color.RGBA{100, 50, 0, 255}); p.color != want {
		t.Errorf("color = %v, want %v", p.color, want)
	}
	if !p.Alive() {
		t.Error("particle should still be alive at half its lifetime")
	}

	p.Update(0.6)
	if p.Alive() {
		t.Error("particle should die once its age exceeds the lifetime")
	}
}

func TestParticleGravityBendsDirection(t *testing.T) {
	data := DefaultParticleData()
	data.Direction = geom.V(1, 0)
	data.Gravity = 2
	p := NewParticle(data)
	p.Update(0.5)
	if p.direction.Y <= 0 {
		t.Errorf("gravity should push direction downwards, got %v", p.direction)
	}
}

func TestTexturesDrawSomething(t *testing.T) {
	tests := []struct {
		texture Texture
		op      string
	}{
		{TextureCircle, "circle"},
		{TextureRect, "rect"},
		{TextureLine, "line"},
		{TexturePlus, "polygon"},
		{TextureStar, "polygon"},
	}
	for _, tt := range tests {
		s := &vfxtest.RecordingSurface{}
		tt.texture.Render(s, TextureStyle{Position: geom.V(10, 10), Direction: geom.V(0, 1), Size: 4, Color: color.White})
		if s.Count(tt.op) == 0 {
			t.Errorf("texture %d drew %v, want at least one %q", tt.texture, s.Calls, tt.op)
		}
	}
}
