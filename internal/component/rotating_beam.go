// internal/component/rotating_beam.go
package component

import (
	"laser-defense/internal/assets"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
)

// Beam holds the state of one beam shot. Every animation frame carries a
// share of DamagePerShot; Dealt is what the current shot has applied so far.
type Beam struct {
	Anim          assets.Animation
	Length        float64
	DamagePerShot float64
	Dealt         float64
	Timer         float64
	Frame         int
	Angle         float64
	// Damaged lists enemies the segment touched on the previous step.
	Damaged []types.EntityID
	Shoot   *vfx.BeamShootEffect
}
