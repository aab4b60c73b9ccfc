package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the user toggles that survive restarts.
type SettingsData struct {
	ShowDebug  bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
