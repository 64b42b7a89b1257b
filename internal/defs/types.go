// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AimMode selects which enemy a projectile picks among the ones in range.
type AimMode int

const (
	AimFirst AimMode = iota
	AimNearest
	AimLast
	AimRandom
)

var aimModeNames = [...]string{"FIRST", "NEAREST", "LAST", "RANDOM"}

func (m AimMode) String() string {
	if m < 0 || int(m) >= len(aimModeNames) {
		return fmt.Sprintf("AimMode(%d)", int(m))
	}
	return aimModeNames[m]
}

// Valid reports whether m is one of the known aim modes.
func (m AimMode) Valid() bool {
	return m >= AimFirst && m <= AimRandom
}

// Next returns the following aim mode, wrapping around after AimRandom.
func (m AimMode) Next() AimMode {
	return (m + 1) % AimMode(len(aimModeNames))
}

// ParseAimMode converts a name such as "nearest" into an AimMode.
func ParseAimMode(s string) (AimMode, error) {
	for i, name := range aimModeNames {
		if strings.EqualFold(s, name) {
			return AimMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown aim mode %q", s)
}

// UnmarshalYAML allows aim modes to be written by name in YAML documents.
func (m *AimMode) UnmarshalYAML(value *yaml.Node) error {
	mode, err := ParseAimMode(value.Value)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ProjectileKind defines what a tower shoots.
type ProjectileKind string

const (
	ProjectileBullet ProjectileKind = "BULLET"
	ProjectileBeam   ProjectileKind = "BEAM"
)
