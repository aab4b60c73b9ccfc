package factory

import (
	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/assets"
	"github.com/automoto/dave/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named level from the embedded assets. It panics
// when the level cannot be read.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	loaded := loader.MustLoadLevel(name)

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: &loaded,
	})

	return level
}
