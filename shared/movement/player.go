// Package movement advances the player one frame: ground probe, gravity,
// run input, jump impulse and the axis-separated move against the tile
// world. Like the other shared packages it stays free of ebiten.
package movement

import (
	"github.com/automoto/dave/shared/tileworld"
	dmath "github.com/yohamta/donburi/features/math"
)

// World is the part of the collision world the step needs.
type World interface {
	ProbeOverlap(a tileworld.Actor, dx, dy float64) bool
	MoveX(a tileworld.Actor, dx float64) bool
	MoveY(a tileworld.Actor, dy float64) bool
}

// Player is the controllable body. The world owns its position; the player
// only keeps the handle.
type Player struct {
	Actor      tileworld.Actor
	Velocity   dmath.Vec2
	FacingLeft bool
}

// Params is the movement tuning.
type Params struct {
	Gravity     float64 // downward acceleration while airborne, units/s^2
	RunSpeed    float64 // horizontal speed while a direction is held
	JumpImpulse float64 // upward speed applied on a grounded jump
	// MaxFallSpeed caps vy when positive. Zero disables the cap.
	MaxFallSpeed float64
	GroundProbe  float64 // offset below the actor used for the ground check
}

// DefaultParams returns the shipped tuning.
func DefaultParams() Params {
	return Params{
		Gravity:     500,
		RunSpeed:    100,
		JumpImpulse: 260,
		GroundProbe: 1,
	}
}

// OnGround reports whether a solid tile lies within probe units below the
// actor.
func OnGround(w World, a tileworld.Actor, probe float64) bool {
	return w.ProbeOverlap(a, 0, probe)
}
