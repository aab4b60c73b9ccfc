package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dave/assets"
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/prefabs"
	"github.com/automoto/dave/systems"
	"github.com/automoto/dave/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs a single level with one player in it.
type PlatformerScene struct {
	ecs       *ecs.ECS
	levelName string
	watcher   *prefabs.Watcher
	once      sync.Once
}

// NewPlatformerScene creates the scene for the named level. watcher may be
// nil, in which case prefabs are never reloaded.
func NewPlatformerScene(levelName string, watcher *prefabs.Watcher) *PlatformerScene {
	return &PlatformerScene{levelName: levelName, watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	assets.PreloadAllAnimations(cfg.PlayerSheet, cfg.Player.FrameWidth, cfg.Player.FrameHeight)

	ecs := ecs.NewECS(donburi.NewWorld())

	// One frame: input, toggles, tuning reload, then the player step
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePrefabs)
	ecs.AddSystem(systems.UpdatePlayer)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	// Level first, the world and player depend on its collision layer.
	level := factory.CreateLevel(ps.ecs, ps.levelName)
	levelData := components.Level.Get(level)
	collision := levelData.CurrentLevel.Collision

	worldEntry := factory.CreateWorld(ps.ecs, collision)
	world := components.World.Get(worldEntry)

	factory.CreateCamera(ps.ecs)

	x, y := collision.Spawn(cfg.Player.SpawnX, cfg.Player.SpawnY)
	factory.CreatePlayer(ps.ecs, world, x, y)

	if ps.watcher != nil {
		factory.CreatePrefabWatch(ps.ecs, ps.watcher)
	}
}
