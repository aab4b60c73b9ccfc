package playerstate

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is a destination rectangle. A negative W mirrors the sprite
// horizontally around X.
type Rect struct {
	X, Y, W, H float64
}

// Resolution is the per-frame outcome of Resolve.
type Resolution struct {
	State      StateID
	FacingLeft bool
	// Flip is +w when facing right and -w when facing left.
	Flip float64
	Dest Rect
}

// Resolve picks the state for this frame. Airborne always wins; on the
// ground a non-zero horizontal velocity walks and a zero one idles. Facing
// follows the sign of vx and is retained while vx is zero, in the air too.
func Resolve(velocity dmath.Vec2, onGround, facingLeft bool, pos dmath.Vec2, w, h float64) Resolution {
	switch {
	case velocity.X > 0:
		facingLeft = false
	case velocity.X < 0:
		facingLeft = true
	}

	state := Idle
	switch {
	case !onGround:
		state = Jump
	case velocity.X != 0:
		state = Walk
	}

	flip, x := w, pos.X
	if facingLeft {
		flip, x = -w, pos.X+w
	}

	return Resolution{
		State:      state,
		FacingLeft: facingLeft,
		Flip:       flip,
		Dest:       Rect{X: x, Y: pos.Y, W: flip, H: h},
	}
}
