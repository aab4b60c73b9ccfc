package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/automoto/dave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the solid tiles and the player collider, marks the
// ground probe and prints the player's state. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDebug {
		return
	}

	geo, ok := cameraGeoM(ecs, screen)
	if !ok {
		return // No camera yet
	}
	world, ok := getWorld(ecs)
	if !ok {
		return
	}

	for _, r := range world.Solids() {
		strokeWorldRect(screen, geo, r.X, r.Y, r.W, r.H, cfg.Debug.SolidColor)
	}

	input := getOrCreateInput(ecs)
	face := fonts.Debug.Get()
	lineHeight := int(cfg.Debug.FontSize) + 4
	y := lineHeight

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)
		body := player.Body

		pos := world.ActorPos(body.Actor)
		w, h := world.ActorSize(body.Actor)
		strokeWorldRect(screen, geo, pos.X, pos.Y, w, h, cfg.Debug.ActorColor)

		probe := cfg.Player.GroundProbe
		x0, y0 := geo.Apply(pos.X, pos.Y+h)
		x1, y1 := geo.Apply(pos.X+w, pos.Y+h+probe)
		vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(max(y1-y0, 1)), cfg.Debug.ProbeColor, false)

		frame, frames := 0, 0
		if anim.Sprite != nil {
			frame = anim.Sprite.CurrentFrame()
			if i := anim.Sprite.CurrentAnimation(); i < len(anim.Sprite.Animations) {
				frames = anim.Sprite.Animations[i].Frames
			}
		}

		cellW, cellH := world.CellSize()
		col, row := int((pos.X+w/2)/cellW), int((pos.Y+h/2)/cellH)

		lines := []string{
			fmt.Sprintf("state %s  frame %d/%d", player.Resolution.State, frame+1, frames),
			fmt.Sprintf("pos %.1f, %.1f", pos.X, pos.Y),
			fmt.Sprintf("vel %.1f, %.1f", body.Velocity.X, body.Velocity.Y),
			fmt.Sprintf("ground %t  left %t", player.OnGround, body.FacingLeft),
			fmt.Sprintf("tile %d,%d of %dx%d", col, row, world.Cols(), world.Rows()),
		}
		for _, line := range lines {
			text.Draw(screen, line, face, 40, y, cfg.Debug.TextColor)
			y += lineHeight
		}
	})

	text.Draw(screen, fmt.Sprintf("input %s", input.LastInputMethod), face, 40, y, cfg.Debug.TextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("tps %.1f", ebiten.ActualTPS()), face, 40, y, cfg.Debug.TextColor)
}

func strokeWorldRect(screen *ebiten.Image, geo ebiten.GeoM, x, y, w, h float64, c color.Color) {
	x0, y0 := geo.Apply(x, y)
	x1, y1 := geo.Apply(x+w, y+h)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
}
