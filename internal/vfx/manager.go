// internal/vfx/manager.go
package vfx

import (
	"reflect"
	"sort"

	"laser-defense/internal/types"
	"laser-defense/pkg/geom"
)

// entry стек эффектов одного владельца и его последняя трансформация.
type entry struct {
	rendered bool
	pos      geom.Vec
	size     geom.Vec
	effects  []Effect
}

// Manager хранит эффекты по идентификатору владельца.
// Владелец, который не вызвал Render между двумя Update, считается исчезнувшим,
// и его эффекты удаляются на следующем Update.
type Manager struct {
	entries map[types.EntityID]*entry
}

// NewManager создает пустой реестр эффектов.
func NewManager() *Manager {
	return &Manager{entries: make(map[types.EntityID]*entry)}
}

// ensure возвращает запись владельца, создавая ее при необходимости.
// Новая запись считается отрисованной, чтобы пережить первый Update.
func (m *Manager) ensure(owner types.EntityID) *entry {
	e, ok := m.entries[owner]
	if !ok {
		e = &entry{rendered: true}
		m.entries[owner] = e
	}
	return e
}

// AddEffect добавляет эффект владельцу. При unique сначала удаляются
// эффекты того же конкретного типа.
func (m *Manager) AddEffect(owner types.EntityID, effect Effect, unique bool) {
	e := m.ensure(owner)
	if unique {
		kind := reflect.TypeOf(effect)
		kept := e.effects[:0]
		for _, fx := range e.effects {
			if reflect.TypeOf(fx) != kind {
				kept = append(kept, fx)
			}
		}
		clear(e.effects[len(kept):])
		e.effects = kept
	}
	e.effects = append(e.effects, effect)
}

// RemoveEffect снимает конкретный эффект с владельца.
func (m *Manager) RemoveEffect(owner types.EntityID, effect Effect) {
	e := m.ensure(owner)
	for i, fx := range e.effects {
		if fx == effect {
			e.effects = append(e.effects[:i], e.effects[i+1:]...)
			return
		}
	}
}

// ClearEffects снимает все эффекты владельца, сохраняя его запись.
func (m *Manager) ClearEffects(owner types.EntityID) {
	m.ensure(owner).effects = nil
}

// Count возвращает число активных эффектов владельца.
func (m *Manager) Count(owner types.EntityID) int {
	e, ok := m.entries[owner]
	if !ok {
		return 0
	}
	return len(e.effects)
}

// Has сообщает, есть ли у владельца запись.
func (m *Manager) Has(owner types.EntityID) bool {
	_, ok := m.entries[owner]
	return ok
}

// Transform запоминает позицию и размер владельца для привязанных эффектов.
func (m *Manager) Transform(owner types.EntityID, pos, size geom.Vec) {
	e := m.ensure(owner)
	e.pos = pos
	e.size = size
}

// Update продвигает все эффекты, удаляет завершенные и забывает владельцев,
// которые не рисовались с прошлого Update.
func (m *Manager) Update(dt float64) {
	owners := make([]types.EntityID, 0, len(m.entries))
	for owner := range m.entries {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	for _, owner := range owners {
		e := m.entries[owner]
		if !e.rendered {
			delete(m.entries, owner)
			continue
		}
		kept := e.effects[:0]
		for _, fx := range e.effects {
			fx.Update(dt, e.pos, e.size)
			if !fx.Done() {
				kept = append(kept, fx)
			}
		}
		clear(e.effects[len(kept):])
		e.effects = kept
		e.rendered = false
	}
}

// Render рисует эффекты владельца и отмечает его как живого.
func (m *Manager) Render(owner types.EntityID, s Surface) {
	e := m.ensure(owner)
	for _, fx := range e.effects {
		fx.Render(s)
	}
	e.rendered = true
}

// Owners возвращает число зарегистрированных владельцев.
func (m *Manager) Owners() int {
	return len(m.entries)
}
