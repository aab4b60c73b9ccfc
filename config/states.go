package config

import "github.com/automoto/dave/shared/playerstate"

// Type alias so rendering code can keep using config.StateID.
type StateID = playerstate.StateID

const (
	Walk = playerstate.Walk
	Idle = playerstate.Idle
	Jump = playerstate.Jump
)

// Re-export the map (same reference, no copy).
var StateToFileName = playerstate.StateToFileName

// StateByName looks up a state by its spritesheet name.
func StateByName(name string) (StateID, bool) {
	return playerstate.ByName(name)
}
