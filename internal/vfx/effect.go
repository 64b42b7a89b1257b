// internal/vfx/effect.go
package vfx

import "laser-defense/pkg/geom"

// Effect визуальное поведение, привязанное к владельцу в Manager.
// Update получает последнюю позицию и размер владельца.
type Effect interface {
	Update(dt float64, parentPos, parentSize geom.Vec)
	Render(s Surface)
	Done() bool
}

// effectBase общая часть эффектов: трансформация родителя и флаг завершения.
type effectBase struct {
	parentPos  geom.Vec
	parentSize geom.Vec
	done       bool
}

func (b *effectBase) setParent(pos, size geom.Vec) {
	b.parentPos = pos
	b.parentSize = size
}

// Done сообщает, что эффект можно удалить.
func (b *effectBase) Done() bool { return b.done }

func (b *effectBase) parentRect() geom.Rect {
	return geom.RectAt(b.parentPos, b.parentSize)
}
