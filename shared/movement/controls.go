package movement

// Controls turns held-button samples into per-frame Input, detecting the
// jump edge against the previous sample.
type Controls struct {
	jumpWasHeld bool
}

// Sample records this frame's held buttons and returns the frame Input.
func (c *Controls) Sample(left, right, jumpHeld bool) Input {
	in := Input{
		Left:        left,
		Right:       right,
		JumpPressed: jumpHeld && !c.jumpWasHeld,
	}
	c.jumpWasHeld = jumpHeld
	return in
}
