package config

import (
	"image/color"

	"github.com/automoto/dave/assets/animations"
	"github.com/automoto/dave/prefabs"
	"github.com/automoto/dave/shared/movement"
	"github.com/automoto/dave/shared/playerstate"
)

// Config holds general game configuration
type Config struct {
	Title       string
	Width       int
	Height      int
	WindowScale int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Physics, in units per second
	Gravity      float64
	RunSpeed     float64
	JumpImpulse  float64
	MaxFallSpeed float64 // 0 disables the cap
	GroundProbe  float64

	// Spawn used when the level has no PlayerSpawn object
	SpawnX float64
	SpawnY float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int

	// Sprite starts animating immediately
	Playing bool
}

// LevelConfig describes where levels live and how they are read
type LevelConfig struct {
	Dir        string // directory inside the embedded assets
	Default    string // level stem loaded when -level is not given
	ClearColor color.RGBA
}

// CameraConfig is the fixed display rectangle in world units
type CameraConfig struct {
	X, Y          float64
	Width, Height float64
}

// DebugConfig contains debug command-line options and overlay styling
type DebugConfig struct {
	ShowOverlay  bool // Start with the debug overlay visible
	WatchPrefabs bool // Hot reload prefabs from disk
	SolidColor   color.RGBA
	ActorColor   color.RGBA
	ProbeColor   color.RGBA
	TextColor    color.RGBA
	FontSize     float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Title:       "Dave",
		Width:       608,
		Height:      320,
		WindowScale: 2,
	}

	Player = PlayerConfig{
		Gravity:      500,
		RunSpeed:     100,
		JumpImpulse:  260,
		MaxFallSpeed: 0,
		GroundProbe:  1,

		SpawnX: 60,
		SpawnY: 250,

		FrameWidth:      32,
		FrameHeight:     32,
		CollisionWidth:  32,
		CollisionHeight: 32,

		Playing: true,
	}

	Level = LevelConfig{
		Dir:        "levels",
		Default:    "level1",
		ClearColor: Black,
	}

	Camera = CameraConfig{
		X:      0,
		Y:      0,
		Width:  608,
		Height: 320,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay:  false,
		WatchPrefabs: false,
		SolidColor:   color.RGBA{R: 255, G: 0, B: 0, A: 160},
		ActorColor:   LightGreen,
		ProbeColor:   Yellow,
		TextColor:    White,
		FontSize:     10,
	}
}

// Movement returns the player tuning as movement parameters.
func (p PlayerConfig) Movement() movement.Params {
	return movement.Params{
		Gravity:      p.Gravity,
		RunSpeed:     p.RunSpeed,
		JumpImpulse:  p.JumpImpulse,
		MaxFallSpeed: p.MaxFallSpeed,
		GroundProbe:  p.GroundProbe,
	}
}

// ApplyPlayerSpec overrides the player defaults with a loaded prefab.
// Animation defs are matched to states by name; Validate rejects names no state uses.
func ApplyPlayerSpec(spec *prefabs.PlayerSpec) {
	if spec == nil {
		return
	}

	Player.Gravity = spec.Gravity
	Player.RunSpeed = spec.RunSpeed
	Player.JumpImpulse = spec.JumpImpulse
	Player.MaxFallSpeed = spec.MaxFallSpeed
	if spec.GroundProbe > 0 {
		Player.GroundProbe = spec.GroundProbe
	}
	Player.SpawnX = spec.Spawn.X
	Player.SpawnY = spec.Spawn.Y
	Player.CollisionWidth = spec.Collider.Width
	Player.CollisionHeight = spec.Collider.Height
	Player.FrameWidth = spec.Animation.FrameW
	Player.FrameHeight = spec.Animation.FrameH
	Player.Playing = spec.Animation.Playing

	defs := CharacterAnimations[PlayerSheet]
	for _, def := range spec.Animation.Defs {
		state, ok := StateByName(def.Name)
		if !ok {
			continue
		}
		defs[state] = AnimationDef{Row: def.Row, Frames: def.FrameCount, FPS: def.FPS}
	}
}

// PlayerAnimations returns the player's animation list in state index order.
func PlayerAnimations() []animations.Animation {
	defs := CharacterAnimations[PlayerSheet]
	states := playerstate.States()
	list := make([]animations.Animation, len(states))
	for i, state := range states {
		def := defs[state]
		list[i] = animations.Animation{
			Name:   state.String(),
			Row:    def.Row,
			Frames: def.Frames,
			FPS:    def.FPS,
		}
	}
	return list
}
