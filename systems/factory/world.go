package factory

import (
	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/components"
	"github.com/automoto/dave/shared/leveldata"
	"github.com/automoto/dave/shared/tileworld"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld builds the collision world from the level's collision layer.
func CreateWorld(ecs *ecs.ECS, collision *leveldata.CollisionData) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)

	grid := make([]tileworld.Tile, len(collision.Solid))
	for i, solid := range collision.Solid {
		if solid {
			grid[i] = tileworld.Solid
		}
	}

	components.World.Set(world, tileworld.Build(
		grid,
		float64(collision.TileWidth),
		float64(collision.TileHeight),
		collision.Cols,
		collision.Rows,
	))

	return world
}
