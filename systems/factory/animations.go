package factory

import (
	"fmt"

	"github.com/automoto/dave/assets/animations"
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
)

// GenerateAnimations creates an AnimationData component for the character key
// (e.g., "player"), which names both the spritesheet directory and the
// animation definitions in config.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	if _, ok := cfg.CharacterAnimations[key]; !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	return &components.AnimationData{
		Sprite:       animations.NewAnimatedSprite(frameWidth, frameHeight, cfg.PlayerAnimations(), cfg.Player.Playing),
		Sheet:        key,
		CurrentSheet: cfg.Idle,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
	}
}
