// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure of a tuning document.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the gameplay numbers that can be overridden by a YAML document.
// Fields missing from the document keep their Default() values.
type Tuning struct {
	Session SessionTuning `yaml:"session"`
	Enemy   EnemyTuning   `yaml:"enemy"`
	Bullet  BulletTuning  `yaml:"bullet"`
	Beam    BeamTuning    `yaml:"beam"`
}

// SessionTuning holds the starting economy and the game speed options.
type SessionTuning struct {
	StartingCoins int       `yaml:"startingCoins"`
	StartingLives int       `yaml:"startingLives"`
	SpeedOptions  []float64 `yaml:"speedOptions"`
}

// EnemyTuning describes enemy movement and damage-number batching.
type EnemyTuning struct {
	Speed float64 `yaml:"speed"` // pixels per second
	// FlushThreshold is the buffered damage above which a damage number is shown.
	FlushThreshold float64 `yaml:"flushThreshold"`
}

// BulletTuning describes the homing bullet fired by bullet turrets.
type BulletTuning struct {
	Speed          float64 `yaml:"speed"`
	Damage         float64 `yaml:"damage"`
	MaxJumps       int     `yaml:"maxJumps"`
	ImpactDuration float64 `yaml:"impactDuration"`
}

// BeamTuning describes the sweeping beam fired by beam turrets.
type BeamTuning struct {
	DamagePerShot float64 `yaml:"damagePerShot"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Session: SessionTuning{
			StartingCoins: 50,
			StartingLives: 100,
			SpeedOptions:  []float64{1, 2, 4},
		},
		Enemy: EnemyTuning{
			Speed:          50,
			FlushThreshold: 5,
		},
		Bullet: BulletTuning{
			Speed:          400,
			Damage:         10,
			MaxJumps:       1,
			ImpactDuration: 0.33,
		},
		Beam: BeamTuning{
			DamagePerShot: 20,
		},
	}
}

// LoadTuning reads a tuning document on top of Default().
func LoadTuning(filePath string) (Tuning, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes a tuning document on top of Default().
func ParseTuning(data []byte) (Tuning, error) {
	tuning := Default()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return Tuning{}, err
	}
	return tuning, nil
}

// Validate checks the ranges the simulation relies on.
func (t Tuning) Validate() error {
	if t.Session.StartingLives <= 0 {
		return fmt.Errorf("%w: session.startingLives must be > 0, got %d", ErrInvalidTuning, t.Session.StartingLives)
	}
	if t.Session.StartingCoins < 0 {
		return fmt.Errorf("%w: session.startingCoins must be >= 0, got %d", ErrInvalidTuning, t.Session.StartingCoins)
	}
	if len(t.Session.SpeedOptions) == 0 {
		return fmt.Errorf("%w: session.speedOptions cannot be empty", ErrInvalidTuning)
	}
	for _, s := range t.Session.SpeedOptions {
		if s <= 0 {
			return fmt.Errorf("%w: speed option must be > 0, got %v", ErrInvalidTuning, s)
		}
	}
	if t.Enemy.Speed <= 0 {
		return fmt.Errorf("%w: enemy.speed must be > 0, got %v", ErrInvalidTuning, t.Enemy.Speed)
	}
	if t.Enemy.FlushThreshold < 0 {
		return fmt.Errorf("%w: enemy.flushThreshold must be >= 0, got %v", ErrInvalidTuning, t.Enemy.FlushThreshold)
	}
	if t.Bullet.Speed <= 0 || t.Bullet.Damage < 0 || t.Bullet.MaxJumps < 1 {
		return fmt.Errorf("%w: bullet needs speed > 0, damage >= 0 and maxJumps >= 1", ErrInvalidTuning)
	}
	if t.Beam.DamagePerShot < 0 {
		return fmt.Errorf("%w: beam.damagePerShot must be >= 0, got %v", ErrInvalidTuning, t.Beam.DamagePerShot)
	}
	return nil
}
