package animations

import (
	"image"
	"testing"
)

func playerSprite() *AnimatedSprite {
	return NewAnimatedSprite(32, 32, []Animation{
		{Name: "walk", Row: 0, Frames: 2, FPS: 4},
		{Name: "idle", Row: 0, Frames: 1, FPS: 1},
		{Name: "jump", Row: 0, Frames: 1, FPS: 1},
	}, true)
}

func TestUpdateAdvancesAfterPeriod(t *testing.T) {
	s := playerSprite()
	s.SetAnimation(0)

	tests := []struct {
		name      string
		dt        float64
		wantFrame int
	}{
		{"below period", 0.2, 0},
		{"crosses 0.25", 0.1, 1},
		{"timer was reset", 0.2, 1},
		{"wraps to zero", 0.1, 0},
	}

	for _, tt := range tests {
		s.Update(tt.dt)
		if got := s.CurrentFrame(); got != tt.wantFrame {
			t.Fatalf("%s: frame = %d, want %d", tt.name, got, tt.wantFrame)
		}
	}
}

func TestExactPeriodDoesNotAdvance(t *testing.T) {
	s := NewAnimatedSprite(32, 32, []Animation{{Name: "walk", Frames: 2, FPS: 4}}, true)
	s.Update(0.25)
	if s.CurrentFrame() != 0 {
		t.Fatalf("advance requires strictly more than 1/fps")
	}
}

func TestSetAnimationWrapsFrame(t *testing.T) {
	s := playerSprite()
	s.SetFrame(1)
	if s.CurrentFrame() != 1 {
		t.Fatalf("expected frame 1, got %d", s.CurrentFrame())
	}

	s.SetAnimation(1)
	if s.CurrentFrame() != 0 || s.CurrentAnimation() != 1 {
		t.Fatalf("expected idle frame 0, got anim %d frame %d", s.CurrentAnimation(), s.CurrentFrame())
	}
	if !s.IsLastFrame() {
		t.Fatalf("single frame animation is always on its last frame")
	}
	if src := s.Frame().Source; src.Min.X != 0 {
		t.Fatalf("frame drawn before Update must stay inside the row, got %v", src)
	}

	s.SetAnimation(5)
	if s.CurrentAnimation() != 1 {
		t.Fatalf("out of range index must be ignored")
	}
}

func TestSetAnimationKeepsTimer(t *testing.T) {
	s := playerSprite()
	s.SetAnimation(1)
	s.Update(0.2)
	s.SetAnimation(0)
	s.Update(0.1)
	if s.CurrentFrame() != 1 {
		t.Fatalf("timer carried across switch should advance walk, got frame %d", s.CurrentFrame())
	}
}

func TestPausedSpriteHoldsFrame(t *testing.T) {
	s := playerSprite()
	s.SetPlaying(false)
	for i := 0; i < 10; i++ {
		s.Update(1)
	}
	if s.CurrentFrame() != 0 || s.Playing() {
		t.Fatalf("paused sprite advanced to %d", s.CurrentFrame())
	}
}

func TestFrameSourceRect(t *testing.T) {
	s := NewAnimatedSprite(32, 16, []Animation{{Name: "a", Row: 2, Frames: 3, FPS: 10}}, true)
	s.SetFrame(2)

	f := s.Frame()
	want := image.Rect(64, 32, 96, 48)
	if f.Source != want {
		t.Fatalf("source = %v, want %v", f.Source, want)
	}
	if f.DestW != 32 || f.DestH != 16 {
		t.Fatalf("dest = %vx%v, want 32x16", f.DestW, f.DestH)
	}
}

func TestEmptySpriteIsInert(t *testing.T) {
	s := NewAnimatedSprite(32, 32, nil, true)
	s.Update(1)
	s.SetAnimation(0)
	s.SetFrame(3)
	if s.CurrentFrame() != 0 || !s.IsLastFrame() {
		t.Fatalf("empty sprite should stay at frame 0")
	}
	if s.Frame().Source != image.Rect(0, 0, 32, 32) {
		t.Fatalf("unexpected source %v", s.Frame().Source)
	}
}
