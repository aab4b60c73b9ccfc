package archetypes

import (
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Animation,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	World = newArchetype(
		components.World,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
	PrefabWatch = newArchetype(
		components.PrefabWatch,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
