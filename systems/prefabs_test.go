package systems

import (
	"testing"

	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/assets/animations"
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/shared/movement"
	"github.com/automoto/dave/shared/tileworld"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestApplyPlayerTuningResizesLivePlayer(t *testing.T) {
	saved := cfg.Player
	t.Cleanup(func() { cfg.Player = saved })

	e := ecs.NewECS(donburi.NewWorld())
	worldEntry := archetypes.World.Spawn(e)
	components.World.Set(worldEntry, tileworld.Build(nil, 32, 32, 4, 4))
	world := components.World.Get(worldEntry)

	actor := world.AddActor(math.Vec2{X: 10, Y: 10}, 32, 32)
	player := archetypes.Player.Spawn(e)
	components.Player.SetValue(player, components.PlayerData{
		Body: movement.Player{Actor: actor},
	})
	components.Animation.Set(player, &components.AnimationData{
		Sprite:       animations.NewAnimatedSprite(32, 32, cfg.PlayerAnimations(), true),
		Sheet:        cfg.PlayerSheet,
		CurrentSheet: cfg.Idle,
		FrameWidth:   32,
		FrameHeight:  32,
	})

	cfg.Player.CollisionWidth = 20
	cfg.Player.CollisionHeight = 28
	cfg.Player.FrameWidth = 24
	cfg.Player.FrameHeight = 30

	applyPlayerTuning(e)

	if w, h := world.ActorSize(actor); w != 20 || h != 28 {
		t.Errorf("collider = %vx%v, want 20x28", w, h)
	}
	anim := components.Animation.Get(player)
	if anim.FrameWidth != 24 || anim.FrameHeight != 30 {
		t.Errorf("frame size = %dx%d, want 24x30", anim.FrameWidth, anim.FrameHeight)
	}
	if anim.Sprite.TileWidth != 24 || anim.Sprite.TileHeight != 30 {
		t.Errorf("sprite tile = %dx%d, want 24x30", anim.Sprite.TileWidth, anim.Sprite.TileHeight)
	}
	if got := anim.Sprite.CurrentAnimation(); got != int(cfg.Idle) {
		t.Errorf("animation = %d, want idle", got)
	}
}
