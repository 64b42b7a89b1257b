// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Projectile ProjectileKind `yaml:"projectile"`
	Level      int            `yaml:"level"`
	Range      float64        `yaml:"range"`    // pixels
	FireRate   float64        `yaml:"fireRate"` // shots per second
	Cost       int            `yaml:"cost"`
	AimMode    AimMode        `yaml:"aimMode"`
	Visuals    Visuals        `yaml:"visuals"`
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Sprite string     `yaml:"sprite"`
	Color  color.RGBA `yaml:"-"`
	Hex    string     `yaml:"color"`
}

// TowerCatalog keeps tower definitions in shop order.
type TowerCatalog struct {
	defs []TowerDefinition
	byID map[string]int
}

// NewTowerCatalog builds a catalog and rejects duplicate or incomplete definitions.
func NewTowerCatalog(defs []TowerDefinition) (*TowerCatalog, error) {
	c := &TowerCatalog{byID: make(map[string]int, len(defs))}
	for _, def := range defs {
		if err := validateTower(def); err != nil {
			return nil, err
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		if def.Visuals.Hex != "" {
			clr, err := parseHexColor(def.Visuals.Hex)
			if err != nil {
				return nil, fmt.Errorf("tower %q: %w", def.ID, err)
			}
			def.Visuals.Color = clr
		}
		c.byID[def.ID] = len(c.defs)
		c.defs = append(c.defs, def)
	}
	return c, nil
}

// Get returns the definition with the given id.
func (c *TowerCatalog) Get(id string) (TowerDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return TowerDefinition{}, false
	}
	return c.defs[i], true
}

// All returns the definitions in shop order.
func (c *TowerCatalog) All() []TowerDefinition {
	return c.defs
}

func validateTower(def TowerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("tower id cannot be empty")
	}
	if def.Projectile != ProjectileBullet && def.Projectile != ProjectileBeam {
		return fmt.Errorf("tower %q: unknown projectile %q", def.ID, def.Projectile)
	}
	if def.Range <= 0 {
		return fmt.Errorf("tower %q: range must be > 0, got %v", def.ID, def.Range)
	}
	if def.FireRate <= 0 {
		return fmt.Errorf("tower %q: fireRate must be > 0, got %v", def.ID, def.FireRate)
	}
	if def.Cost < 0 {
		return fmt.Errorf("tower %q: cost must be >= 0, got %d", def.ID, def.Cost)
	}
	if !def.AimMode.Valid() {
		return fmt.Errorf("tower %q: invalid aim mode %v", def.ID, def.AimMode)
	}
	return nil
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// DefaultTowers returns the stock shop: a bullet turret and a beam turret.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			ID:         "TOWER_BLUE",
			Name:       "Blue Turret",
			Projectile: ProjectileBullet,
			Level:      1,
			Range:      100,
			FireRate:   1,
			Cost:       50,
			AimMode:    AimFirst,
			Visuals:    Visuals{Sprite: "turret_blue", Color: color.RGBA{50, 100, 255, 255}},
		},
		{
			ID:         "TOWER_RED",
			Name:       "Red Turret",
			Projectile: ProjectileBeam,
			Level:      1,
			Range:      140,
			FireRate:   0.33,
			Cost:       150,
			AimMode:    AimFirst,
			Visuals:    Visuals{Sprite: "turret_red", Color: color.RGBA{255, 50, 50, 255}},
		},
	}
}
