// Package gamemath holds the small pure physics helpers used by the player
// step. No ebiten or ECS imports.
package gamemath

// ApplyGravity returns vy after one frame of gravity. Grounded bodies are left
// alone; a positive maxFall caps the downward speed.
func ApplyGravity(vy, gravity, dt, maxFall float64, onGround bool) float64 {
	if onGround {
		return vy
	}
	vy += gravity * dt
	if maxFall > 0 && vy > maxFall {
		vy = maxFall
	}
	return vy
}

// HorizontalSpeed returns the run velocity for the held directions. Right
// wins when both are held.
func HorizontalSpeed(left, right bool, runSpeed float64) float64 {
	if right {
		return runSpeed
	}
	if left {
		return -runSpeed
	}
	return 0
}

// JumpSpeed returns the new vy: the upward impulse when a jump was pressed
// while grounded, otherwise vy unchanged.
func JumpSpeed(vy, impulse float64, jumpPressed, onGround bool) float64 {
	if jumpPressed && onGround {
		return -impulse
	}
	return vy
}
