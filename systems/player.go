package systems

import (
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/shared/movement"
	"github.com/automoto/dave/shared/playerstate"
	"github.com/automoto/dave/shared/tileworld"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one frame for every player: ground probe, state
// resolution, animation, then physics. The draw rectangle is resolved from
// the position before this frame's move.
func UpdatePlayer(e *ecs.ECS) {
	world, ok := getWorld(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	dt := frameTime()
	params := cfg.Player.Movement()

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)
		updateSinglePlayer(world, input, player, anim, dt, params)
	})
}

func updateSinglePlayer(world *tileworld.World, input *components.InputData, player *components.PlayerData, anim *components.AnimationData, dt float64, params movement.Params) {
	body := &player.Body
	pos := world.ActorPos(body.Actor)

	player.OnGround = movement.OnGround(world, body.Actor, params.GroundProbe)
	player.Resolution = playerstate.Resolve(
		body.Velocity,
		player.OnGround,
		body.FacingLeft,
		pos,
		float64(anim.FrameWidth),
		float64(anim.FrameHeight),
	)
	body.FacingLeft = player.Resolution.FacingLeft

	anim.SetAnimation(player.Resolution.State)
	if anim.Sprite != nil {
		anim.Sprite.Update(dt)
	}

	in := player.Controls.Sample(
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
		GetAction(input, cfg.ActionJump).Pressed,
	)
	movement.Step(body, world, dt, in, params)
}

// frameTime is the fixed simulation step in seconds.
func frameTime() float64 {
	return 1 / float64(ebiten.TPS())
}

func getWorld(e *ecs.ECS) (*tileworld.World, bool) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return nil, false
	}
	return components.World.Get(entry), true
}
