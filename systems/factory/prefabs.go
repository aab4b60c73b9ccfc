package factory

import (
	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/components"
	"github.com/automoto/dave/prefabs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePrefabWatch attaches a prefab watcher to the world so UpdatePrefabs
// can apply edits made on disk.
func CreatePrefabWatch(ecs *ecs.ECS, watcher *prefabs.Watcher) *donburi.Entry {
	entry := archetypes.PrefabWatch.Spawn(ecs)
	components.PrefabWatch.SetValue(entry, components.PrefabWatchData{Watcher: watcher})
	return entry
}
