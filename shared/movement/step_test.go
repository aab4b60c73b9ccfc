package movement

import (
	"math"
	"testing"

	"github.com/automoto/dave/shared/tileworld"
	dmath "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60.0

// fakeWorld records moves and reports a fixed ground contact.
type fakeWorld struct {
	grounded bool
	moves    []string
	dx, dy   float64
}

func (f *fakeWorld) ProbeOverlap(_ tileworld.Actor, dx, dy float64) bool {
	return f.grounded && dx == 0 && dy > 0
}

func (f *fakeWorld) MoveX(_ tileworld.Actor, dx float64) bool {
	f.moves = append(f.moves, "x")
	f.dx += dx
	return false
}

func (f *fakeWorld) MoveY(_ tileworld.Actor, dy float64) bool {
	f.moves = append(f.moves, "y")
	f.dy += dy
	return false
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepGravityAccumulatesWhileAirborne(t *testing.T) {
	w := &fakeWorld{}
	p := &Player{}

	for i := 0; i < 10; i++ {
		if Step(p, w, dt, Input{}, DefaultParams()) {
			t.Fatalf("frame %d: expected airborne", i)
		}
	}

	if !nearlyEqual(p.Velocity.Y, 500.0/6.0) {
		t.Fatalf("vy = %v, want %v", p.Velocity.Y, 500.0/6.0)
	}
}

func TestStepNoGravityOnGround(t *testing.T) {
	w := &fakeWorld{grounded: true}
	p := &Player{}

	if !Step(p, w, dt, Input{}, DefaultParams()) {
		t.Fatalf("expected grounded")
	}
	if p.Velocity.Y != 0 {
		t.Fatalf("vy = %v, want 0", p.Velocity.Y)
	}
}

func TestStepHorizontalInput(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		wantVX   float64
		wantLeft bool
	}{
		{"none", Input{}, 0, false},
		{"right", Input{Right: true}, 100, false},
		{"left", Input{Left: true}, -100, true},
		{"both prefers right", Input{Left: true, Right: true}, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWorld{grounded: true}
			p := &Player{Velocity: dmath.Vec2{X: 42}}
			Step(p, w, dt, tt.in, DefaultParams())

			if p.Velocity.X != tt.wantVX {
				t.Errorf("vx = %v, want %v", p.Velocity.X, tt.wantVX)
			}
			if p.FacingLeft != tt.wantLeft {
				t.Errorf("facingLeft = %v, want %v", p.FacingLeft, tt.wantLeft)
			}
			if !nearlyEqual(w.dx, tt.wantVX*dt) {
				t.Errorf("moved x by %v, want %v", w.dx, tt.wantVX*dt)
			}
		})
	}
}

func TestStepMovesHorizontalThenVertical(t *testing.T) {
	w := &fakeWorld{}
	p := &Player{}
	Step(p, w, dt, Input{Right: true}, DefaultParams())

	if len(w.moves) != 2 || w.moves[0] != "x" || w.moves[1] != "y" {
		t.Fatalf("move order = %v, want [x y]", w.moves)
	}
}

func TestStepJump(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		wantVY   float64
	}{
		{"grounded jump", true, -260},
		{"airborne jump ignored", false, 500 * dt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWorld{grounded: tt.grounded}
			p := &Player{}
			Step(p, w, dt, Input{JumpPressed: true}, DefaultParams())

			if !nearlyEqual(p.Velocity.Y, tt.wantVY) {
				t.Fatalf("vy = %v, want %v", p.Velocity.Y, tt.wantVY)
			}
		})
	}
}

func TestHeldJumpFiresOnce(t *testing.T) {
	var c Controls
	w := &fakeWorld{grounded: true}
	p := &Player{}
	jumps := 0

	for i := 0; i < 5; i++ {
		p.Velocity.Y = 0
		Step(p, w, dt, c.Sample(false, false, true), DefaultParams())
		if p.Velocity.Y == -260 {
			jumps++
		}
	}

	if jumps != 1 {
		t.Fatalf("held jump fired %d times, want 1", jumps)
	}
}

func TestControlsEdges(t *testing.T) {
	var c Controls
	held := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}

	for i, h := range held {
		if got := c.Sample(false, false, h).JumpPressed; got != want[i] {
			t.Errorf("frame %d: JumpPressed = %v, want %v", i, got, want[i])
		}
	}

	var fresh Controls
	if !fresh.Sample(false, false, true).JumpPressed {
		t.Errorf("a jump held on the first sample should count as a press")
	}
}

func TestMaxFallSpeed(t *testing.T) {
	params := DefaultParams()
	params.MaxFallSpeed = 50
	p := &Player{}
	w := &fakeWorld{}

	for i := 0; i < 60; i++ {
		Step(p, w, dt, Input{}, params)
	}
	if p.Velocity.Y != 50 {
		t.Fatalf("vy = %v, want capped at 50", p.Velocity.Y)
	}
}

// levelWorld is a strip of floor with the player standing on it.
func levelWorld(t *testing.T) (*tileworld.World, *Player) {
	t.Helper()
	const cols, rows = 19, 10
	grid := make([]tileworld.Tile, cols*rows)
	for col := 0; col < cols; col++ {
		grid[(rows-1)*cols+col] = tileworld.Solid
	}
	grid[(rows-2)*cols+5] = tileworld.Solid

	w := tileworld.Build(grid, 32, 32, cols, rows)
	a := w.AddActor(dmath.Vec2{X: 60, Y: 256}, 32, 32)
	return w, &Player{Actor: a}
}

func TestStepJumpOnRealWorld(t *testing.T) {
	w, p := levelWorld(t)

	if !Step(p, w, dt, Input{JumpPressed: true}, DefaultParams()) {
		t.Fatalf("expected player to start on the ground")
	}
	if p.Velocity.Y != -260 {
		t.Fatalf("vy = %v, want -260", p.Velocity.Y)
	}
	if got := w.ActorPos(p.Actor).Y; !nearlyEqual(got, 256-260*dt) {
		t.Fatalf("y = %v, want %v", got, 256-260*dt)
	}
	if Step(p, w, dt, Input{}, DefaultParams()) {
		t.Fatalf("expected airborne on the next frame")
	}
}

func TestStepLandsAndStops(t *testing.T) {
	w, p := levelWorld(t)
	Step(p, w, dt, Input{JumpPressed: true}, DefaultParams())

	grounded := false
	for i := 0; i < 240 && !grounded; i++ {
		grounded = Step(p, w, dt, Input{}, DefaultParams())
	}
	if !grounded {
		t.Fatalf("player never landed")
	}
	if got := w.ActorPos(p.Actor).Y; got != 256 {
		t.Fatalf("landed at y %v, want 256", got)
	}
}

func TestStepRunIntoWall(t *testing.T) {
	w, p := levelWorld(t)

	for i := 0; i < 120; i++ {
		Step(p, w, dt, Input{Right: true}, DefaultParams())
	}
	if got := w.ActorPos(p.Actor).X; got != 128 {
		t.Fatalf("x = %v, want flush against the wall at 128", got)
	}
	if p.Velocity.X != 100 {
		t.Fatalf("vx = %v, collisions must not zero velocity", p.Velocity.X)
	}
}
