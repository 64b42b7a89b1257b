// internal/assets/registry.go
package assets

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"laser-defense/pkg/geom"

	"gopkg.in/yaml.v3"
)

// Имена спрайтов, которые использует ядро.
const (
	SpriteEnemy      = "enemy"
	SpriteTurretBlue = "turret_blue"
	SpriteTurretRed  = "turret_red"
	SpriteBullet     = "bullet"
	SpriteBeam       = "beam"
	SpriteExplosion  = "explosion"
	SpriteImpact     = "bullet_impact"
)

// ErrUnknownAnimation возвращается, когда анимация не зарегистрирована.
var ErrUnknownAnimation = errors.New("unknown animation")

// Animation нарезанная последовательность кадров спрайта. Durations задает длительность
// каждого кадра в секундах; Damage (только у лучей) долю урона выстрела на кадр.
type Animation struct {
	Sprite    string     `yaml:"-"`
	FrameSize geom.Vec   `yaml:"-"`
	Size      [2]float64 `yaml:"frameSize"`
	Durations []float64  `yaml:"durations"`
	Damage    []float64  `yaml:"damage"`
}

// Frames возвращает число кадров.
func (a Animation) Frames() int {
	return len(a.Durations)
}

// TotalDuration возвращает длительность всей анимации.
func (a Animation) TotalDuration() float64 {
	total := 0.0
	for _, d := range a.Durations {
		total += d
	}
	return total
}

// FrameAt возвращает индекс кадра, активного в момент t от начала анимации.
// ok == false, если t вышло за пределы анимации.
func (a Animation) FrameAt(t float64) (int, bool) {
	if t < 0 {
		return 0, false
	}
	acc := 0.0
	for i, d := range a.Durations {
		acc += d
		if t < acc {
			return i, true
		}
	}
	return 0, false
}

// DamageFraction возвращает долю урона кадра i (0, если данных нет).
func (a Animation) DamageFraction(i int) float64 {
	if i < 0 || i >= len(a.Damage) {
		return 0
	}
	return a.Damage[i]
}

// Registry хранит анимации по имени спрайта. Передается в конструкторы сущностей
// вместо глобальных кэшей.
type Registry struct {
	animations map[string]Animation
}

// NewRegistry создает пустой реестр.
func NewRegistry() *Registry {
	return &Registry{animations: make(map[string]Animation)}
}

// Register добавляет анимацию под именем name.
func (r *Registry) Register(name string, a Animation) error {
	if name == "" {
		return errors.New("animation name is empty")
	}
	if _, exists := r.animations[name]; exists {
		return fmt.Errorf("animation %q already registered", name)
	}
	if len(a.Durations) == 0 {
		return fmt.Errorf("animation %q has no frames", name)
	}
	for i, d := range a.Durations {
		if d <= 0 {
			return fmt.Errorf("animation %q frame %d has non-positive duration %v", name, i, d)
		}
	}
	if len(a.Damage) != 0 && len(a.Damage) != len(a.Durations) {
		return fmt.Errorf("animation %q has %d damage fractions for %d frames", name, len(a.Damage), len(a.Durations))
	}
	a.Sprite = name
	if a.FrameSize.IsZero() {
		a.FrameSize = geom.V(a.Size[0], a.Size[1])
	}
	r.animations[name] = a
	return nil
}

// Animation возвращает анимацию по имени.
func (r *Registry) Animation(name string) (Animation, error) {
	a, ok := r.animations[name]
	if !ok {
		return Animation{}, fmt.Errorf("%w: %s", ErrUnknownAnimation, name)
	}
	return a, nil
}

// MustAnimation как Animation, но паникует при отсутствии анимации.
// Для данных, без которых игра не может стартовать.
func (r *Registry) MustAnimation(name string) Animation {
	a, err := r.Animation(name)
	if err != nil {
		panic(err)
	}
	return a
}

// Names возвращает имена всех анимаций в алфавитном порядке.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.animations))
	for name := range r.animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// uniform возвращает n кадров одинаковой длительности d.
func uniform(n int, d float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d
	}
	return out
}

// DefaultRegistry набор анимаций, с которым игра работает без внешних файлов.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	defaults := []struct {
		name string
		anim Animation
	}{
		{SpriteEnemy, Animation{FrameSize: geom.V(32, 32), Durations: uniform(4, 1)}},
		{SpriteTurretBlue, Animation{FrameSize: geom.V(32, 32), Durations: uniform(2, 1)}},
		{SpriteTurretRed, Animation{FrameSize: geom.V(32, 32), Durations: uniform(2, 1)}},
		{SpriteBullet, Animation{FrameSize: geom.V(16, 16), Durations: uniform(4, 1)}},
		{SpriteBeam, Animation{
			FrameSize: geom.V(8, 8),
			Durations: []float64{0.5, 0.5, 1, 0.1, 0.1},
			Damage:    []float64{0.2, 0.2, 0.4, 0.1, 0.1},
		}},
		{SpriteExplosion, Animation{FrameSize: geom.V(32, 32), Durations: uniform(5, 0.066)}},
		{SpriteImpact, Animation{FrameSize: geom.V(16, 16), Durations: uniform(3, 0.11)}},
	}
	for _, d := range defaults {
		if err := r.Register(d.name, d.anim); err != nil {
			panic(err)
		}
	}
	return r
}

// LoadRegistry читает YAML с анимациями поверх набора по умолчанию.
// Анимации из файла заменяют одноименные встроенные.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation file: %w", err)
	}
	var doc map[string]Animation
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse animation YAML: %w", err)
	}

	r := DefaultRegistry()
	for name, a := range doc {
		delete(r.animations, name)
		if err := r.Register(name, a); err != nil {
			return nil, fmt.Errorf("invalid animation in %s: %w", path, err)
		}
	}
	log.Printf("[Assets] Loaded %d animations from %s", len(doc), path)
	return r, nil
}
