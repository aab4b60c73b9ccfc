package systems

import (
	"github.com/automoto/dave/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// cameraGeoM maps world coordinates onto the screen through the camera's
// fixed display rectangle.
func cameraGeoM(e *ecs.ECS, screen *ebiten.Image) (ebiten.GeoM, bool) {
	var geo ebiten.GeoM

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return geo, false
	}
	camera := components.Camera.Get(cameraEntry)

	scaleX, scaleY := 1.0, 1.0
	if camera.Width > 0 && camera.Height > 0 {
		scaleX = float64(screen.Bounds().Dx()) / camera.Width
		scaleY = float64(screen.Bounds().Dy()) / camera.Height
	}

	geo.Translate(-camera.Position.X, -camera.Position.Y)
	geo.Scale(scaleX, scaleY)
	return geo, true
}
