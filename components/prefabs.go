package components

import (
	"time"

	"github.com/automoto/dave/prefabs"
	"github.com/yohamta/donburi"
)

// PrefabWatchData carries the prefab watcher when hot reload is enabled.
type PrefabWatchData struct {
	Watcher *prefabs.Watcher
	// LastModTime is the mod time of the player prefab last applied.
	LastModTime time.Time
}

var PrefabWatch = donburi.NewComponentType[PrefabWatchData]()
