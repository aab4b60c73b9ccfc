package systems

import (
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears the screen and draws the pre-rendered tile layer.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.ClearColor)

	geo, ok := cameraGeoM(ecs, screen)
	if !ok {
		return // No camera yet
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = geo
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
