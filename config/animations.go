package config

type AnimationDef struct {
	Row    int
	Frames int
	FPS    int
}

// PlayerSheet is the spritesheet directory of the player.
const PlayerSheet = "player"

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	PlayerSheet: {
		Walk: {Row: 0, Frames: 2, FPS: 4},
		Idle: {Row: 0, Frames: 1, FPS: 1},
		Jump: {Row: 0, Frames: 1, FPS: 1},
	},
}
