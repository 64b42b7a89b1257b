package vfx

import (
	"testing"

	"laser-defense/internal/types"
	"laser-defense/internal/vfx/vfxtest"
	"laser-defense/pkg/geom"
)

// stubEffect завершается после заданного числа обновлений.
type stubEffect struct {
	effectBase
	updates  int
	lifespan int
	renders  int
	lastPos  geom.Vec
}

func (e *stubEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.lastPos = pos
	e.updates++
	if e.lifespan > 0 && e.updates >= e.lifespan {
		e.done = true
	}
}

func (e *stubEffect) Render(s Surface) { e.renders++ }

type otherStubEffect struct{ stubEffect }

func TestManagerUniqueReplacesSameType(t *testing.T) {
	m := NewManager()
	owner := types.EntityID(1)

	m.AddEffect(owner, &stubEffect{}, false)
	m.AddEffect(owner, &otherStubEffect{}, false)
	m.AddEffect(owner, &stubEffect{}, true)

	if got := m.Count(owner); got != 2 {
		t.Errorf("Count() = %d, want 2 (one stub replaced, other type kept)", got)
	}

	m.AddEffect(owner, &stubEffect{}, false)
	if got := m.Count(owner); got != 3 {
		t.Errorf("non-unique add should stack, Count() = %d", got)
	}
}

func TestManagerDropsOwnersThatStopRendering(t *testing.T) {
	m := NewManager()
	owner := types.EntityID(7)
	m.AddEffect(owner, &stubEffect{}, false)

	// новая запись переживает первый Update без Render
	m.Update(0.1)
	if !m.Has(owner) {
		t.Fatal("fresh owner should survive the first update")
	}

	m.Update(0.1)
	if m.Has(owner) {
		t.Error("owner that was not rendered between updates should be forgotten")
	}
	if m.Count(owner) != 0 {
		t.Errorf("Count() of a forgotten owner = %d, want 0", m.Count(owner))
	}
}

func TestManagerKeepsRenderedOwners(t *testing.T) {
	m := NewManager()
	owner := types.EntityID(3)
	fx := &stubEffect{}
	m.AddEffect(owner, fx, false)
	s := &vfxtest.RecordingSurface{}

	for i := 0; i < 5; i++ {
		m.Update(0.1)
		m.Render(owner, s)
	}
	if !m.Has(owner) || m.Count(owner) != 1 {
		t.Fatalf("rendered owner lost its effect: has=%v count=%d", m.Has(owner), m.Count(owner))
	}
	if fx.updates != 5 || fx.renders != 5 {
		t.Errorf("updates=%d renders=%d, want 5 and 5", fx.updates, fx.renders)
	}
}

func TestManagerRemovesFinishedEffects(t *testing.T) {
	m := NewManager()
	owner := types.EntityID(2)
	m.AddEffect(owner, &stubEffect{lifespan: 2}, false)
	m.AddEffect(owner, &stubEffect{}, false)

	m.Update(0.1)
	m.Render(owner, &vfxtest.RecordingSurface{})
	if m.Count(owner) != 2 {
		t.Fatalf("Count() = %d, want 2", m.Count(owner))
	}
	m.Update(0.1)
	if m.Count(owner) != 1 {
		t.Errorf("finished effect should be removed, Count() = %d", m.Count(owner))
	}
}

func TestManagerTransformReachesEffects(t *testing.T) {
	m := NewManager()
	owner := types.EntityID(4)
	fx := &stubEffect{}
	m.AddEffect(owner, fx, false)
	m.Transform(owner, geom.V(40, 60), geom.V(32, 32))
	m.Update(0.016)

	if fx.lastPos != geom.V(40, 60) {
		t.Errorf("effect saw parent at %v, want (40, 60)", fx.lastPos)
	}
}

func TestManagerRemoveAndClear(t *testing.T) {
	m := NewManager()
	owner := types.EntityID(5)
	a, b := &stubEffect{}, &stubEffect{}
	m.AddEffect(owner, a, false)
	m.AddEffect(owner, b, false)

	m.RemoveEffect(owner, a)
	if m.Count(owner) != 1 {
		t.Fatalf("Count() after RemoveEffect = %d, want 1", m.Count(owner))
	}
	m.ClearEffects(owner)
	if m.Count(owner) != 0 || !m.Has(owner) {
		t.Errorf("ClearEffects should empty the owner but keep it, count=%d has=%v", m.Count(owner), m.Has(owner))
	}
	if m.Count(types.EntityID(99)) != 0 {
		t.Error("unknown owner should report zero effects")
	}
}
