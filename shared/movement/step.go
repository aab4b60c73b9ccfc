package movement

import "github.com/automoto/dave/shared/gamemath"

// Input is the control state for one frame.
type Input struct {
	Left  bool
	Right bool
	// JumpPressed is true only on the frame the jump button went down.
	JumpPressed bool
}

// Step runs one frame of player physics and returns the ground contact
// sampled at its start. Collisions stop the actor but leave the velocity as
// it was.
func Step(p *Player, w World, dt float64, in Input, params Params) bool {
	onGround := OnGround(w, p.Actor, params.GroundProbe)

	p.Velocity.Y = gamemath.ApplyGravity(p.Velocity.Y, params.Gravity, dt, params.MaxFallSpeed, onGround)
	p.Velocity.X = gamemath.HorizontalSpeed(in.Left, in.Right, params.RunSpeed)
	p.Velocity.Y = gamemath.JumpSpeed(p.Velocity.Y, params.JumpImpulse, in.JumpPressed, onGround)

	switch {
	case p.Velocity.X > 0:
		p.FacingLeft = false
	case p.Velocity.X < 0:
		p.FacingLeft = true
	}

	w.MoveX(p.Actor, p.Velocity.X*dt)
	w.MoveY(p.Actor, p.Velocity.Y*dt)

	return onGround
}
