package systems

import (
	"github.com/automoto/dave/archetypes"
	"github.com/automoto/dave/components"
	cfg "github.com/automoto/dave/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and fullscreen toggles and
// persists them on change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := archetypes.Settings.Spawn(e)
		components.Settings.SetValue(ent, components.SettingsData{
			ShowDebug:  cfg.Debug.ShowOverlay,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
