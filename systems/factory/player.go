package factory

import (
	"log"

	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/shared/movement"
	"github.com/automoto/dave/shared/tileworld"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer registers the player's collider at (x, y) and attaches its
// body and sprite. The player starts idle with zero velocity.
func CreatePlayer(ecs *ecs.ECS, world *tileworld.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos := math.Vec2{X: x, Y: y}
	actor := world.AddActor(pos, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	if world.CollideCheck(actor, pos) {
		log.Printf("Warning: player spawn (%.0f, %.0f) overlaps a solid tile", x, y)
	}
	components.Player.SetValue(player, components.PlayerData{
		Body: movement.Player{Actor: actor},
	})

	animData := GenerateAnimations(cfg.PlayerSheet, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(player, animData)

	return player
}
