package systems

import (
	"log"

	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/prefabs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePrefabs applies prefab files changed on disk. It does nothing unless
// the scene was started with a watcher.
func UpdatePrefabs(e *ecs.ECS) {
	entry, ok := components.PrefabWatch.First(e.World)
	if !ok {
		return
	}
	watch := components.PrefabWatch.Get(entry)
	if watch.Watcher == nil || !drainPrefabEvents(watch.Watcher) {
		return
	}

	// Editors often write twice per save
	modTime, ok := prefabs.ModTime(prefabs.PlayerFile)
	if ok && modTime.Equal(watch.LastModTime) {
		return
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("Warning: Could not reload %s: %v", prefabs.PlayerFile, err)
		return
	}
	cfg.ApplyPlayerSpec(spec)
	watch.LastModTime = modTime

	applyPlayerTuning(e)

	log.Printf("Reloaded %s", prefabs.PlayerFile)
}

// applyPlayerTuning pushes the current player config into live players:
// animation rows, frame size and collider size. Physics values are read
// from config every frame and need no push.
func applyPlayerTuning(e *ecs.ECS) {
	world, hasWorld := getWorld(e)

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)

		anim.FrameWidth = cfg.Player.FrameWidth
		anim.FrameHeight = cfg.Player.FrameHeight
		if anim.Sprite != nil {
			anim.Sprite.TileWidth = cfg.Player.FrameWidth
			anim.Sprite.TileHeight = cfg.Player.FrameHeight
			anim.Sprite.Animations = cfg.PlayerAnimations()
			anim.Sprite.SetAnimation(int(anim.CurrentSheet))
		}

		if hasWorld {
			world.ResizeActor(player.Body.Actor, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
		}
	})
}

// drainPrefabEvents empties the watcher without blocking and reports whether
// any file changed.
func drainPrefabEvents(w *prefabs.Watcher) bool {
	changed := false
	for {
		select {
		case <-w.Events:
			changed = true
		case err := <-w.Errors:
			log.Printf("Warning: prefab watcher: %v", err)
		default:
			return changed
		}
	}
}
