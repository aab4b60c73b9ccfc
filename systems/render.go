package systems

import (
	"github.com/automoto/dave/assets"
	"github.com/automoto/dave/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawPlayer draws the current animation frame of each player into the
// rectangle resolved this frame. A negative width mirrors the frame.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	geo, ok := cameraGeoM(ecs, screen)
	if !ok {
		return // No camera yet
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		animData := components.Animation.Get(e)
		if animData.Sprite == nil {
			return
		}

		frame := animData.Sprite.Frame()
		if frame.DestW == 0 || frame.DestH == 0 {
			return
		}
		img := assets.GetFrame(animData.Sheet, animData.CurrentSheet, frame.Source)

		dest := player.Resolution.Dest
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(dest.W/frame.DestW, dest.H/frame.DestH)
		drawOp.GeoM.Translate(dest.X, dest.Y)
		drawOp.GeoM.Concat(geo)

		screen.DrawImage(img, drawOp)
	})
}
