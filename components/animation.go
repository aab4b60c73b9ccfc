package components

import (
	"github.com/automoto/dave/assets/animations"
	"github.com/automoto/dave/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Sprite       *animations.AnimatedSprite
	Sheet        string // spritesheet directory, e.g. "player"
	CurrentSheet config.StateID
	FrameWidth   int
	FrameHeight  int
}

// SetAnimation selects the sheet and animation for state. The sprite keeps
// its frame and timer across the switch.
func (a *AnimationData) SetAnimation(state config.StateID) {
	a.CurrentSheet = state
	if a.Sprite != nil {
		a.Sprite.SetAnimation(int(state))
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
