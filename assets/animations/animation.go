package animations

import "image"

// Animation is one row of a spritesheet played at a fixed rate.
type Animation struct {
	Name   string
	Row    int
	Frames int
	FPS    int
}

// Frame is the sheet region to draw for the current frame and its default
// destination size.
type Frame struct {
	Source image.Rectangle
	DestW  float64
	DestH  float64
}

// AnimatedSprite cycles through the frames of one of several animations laid
// out on a grid of TileWidth x TileHeight cells.
type AnimatedSprite struct {
	TileWidth  int
	TileHeight int
	Animations []Animation

	current int
	frame   int
	time    float64
	playing bool
}

func NewAnimatedSprite(tileWidth, tileHeight int, animations []Animation, playing bool) *AnimatedSprite {
	return &AnimatedSprite{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Animations: animations,
		playing:    playing,
	}
}

// SetAnimation switches to animation i. The frame index and the elapsed
// time carry over. The frame is wrapped into the new animation's range here
// rather than on the next Update, so Frame never points past the end of the
// new row when it is drawn before that Update. Out of range indexes are
// ignored.
func (s *AnimatedSprite) SetAnimation(i int) {
	if i < 0 || i >= len(s.Animations) {
		return
	}
	s.current = i
	s.frame = wrap(s.frame, s.Animations[i].Frames)
}

// Update advances the timer by dt seconds and steps to the next frame once
// more than 1/FPS has accumulated.
func (s *AnimatedSprite) Update(dt float64) {
	if len(s.Animations) == 0 {
		return
	}
	anim := s.Animations[s.current]
	if s.playing && anim.FPS > 0 {
		s.time += dt
		if s.time > 1/float64(anim.FPS) {
			s.frame++
			s.time = 0
		}
	}
	s.frame = wrap(s.frame, anim.Frames)
}

func (s *AnimatedSprite) Frame() Frame {
	row := 0
	if len(s.Animations) > 0 {
		row = s.Animations[s.current].Row
	}
	x, y := s.TileWidth*s.frame, s.TileHeight*row
	return Frame{
		Source: image.Rect(x, y, x+s.TileWidth, y+s.TileHeight),
		DestW:  float64(s.TileWidth),
		DestH:  float64(s.TileHeight),
	}
}

func (s *AnimatedSprite) SetFrame(frame int) {
	if len(s.Animations) == 0 {
		s.frame = 0
		return
	}
	s.frame = wrap(frame, s.Animations[s.current].Frames)
}

func (s *AnimatedSprite) IsLastFrame() bool {
	if len(s.Animations) == 0 {
		return true
	}
	return s.frame == s.Animations[s.current].Frames-1
}

func (s *AnimatedSprite) CurrentAnimation() int {
	return s.current
}

// CurrentFrame returns the frame index within the current animation.
func (s *AnimatedSprite) CurrentFrame() int {
	return s.frame
}

func (s *AnimatedSprite) Playing() bool {
	return s.playing
}

func (s *AnimatedSprite) SetPlaying(playing bool) {
	s.playing = playing
}

func wrap(frame, frames int) int {
	if frames <= 0 {
		return 0
	}
	frame %= frames
	if frame < 0 {
		frame += frames
	}
	return frame
}
