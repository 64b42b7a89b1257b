// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Tier       int  // уровень задает здоровье, награду и цену жизни
	ReachedEnd bool // Достиг ли враг конца пути
}
