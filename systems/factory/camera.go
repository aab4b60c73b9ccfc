package factory

import (
	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: cfg.Camera.X, Y: cfg.Camera.Y},
		Width:    cfg.Camera.Width,
		Height:   cfg.Camera.Height,
	})
}
