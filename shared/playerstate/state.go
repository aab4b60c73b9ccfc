// Package playerstate derives the player's animation state, facing and draw
// transform from its velocity and ground contact. It must have zero
// dependencies on ebiten so it can be tested headless.
package playerstate

// StateID identifies a player state. The values double as indexes into the
// player's animation list.
type StateID int

const (
	Walk StateID = iota
	Idle
	Jump
)

// StateToFileName maps a StateID to its spritesheet filename prefix.
var StateToFileName = map[StateID]string{
	Walk: "walk",
	Idle: "idle",
	Jump: "jump",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// States lists every state in animation index order.
func States() []StateID {
	return []StateID{Walk, Idle, Jump}
}

// ByName looks up a state by its spritesheet name.
func ByName(name string) (StateID, bool) {
	for id, fileName := range StateToFileName {
		if fileName == name {
			return id, true
		}
	}
	return 0, false
}
