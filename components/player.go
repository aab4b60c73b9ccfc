package components

import (
	"github.com/automoto/dave/shared/movement"
	"github.com/automoto/dave/shared/playerstate"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Body     movement.Player
	Controls movement.Controls
	OnGround bool
	// Resolution is the state, facing and draw rectangle picked this frame.
	Resolution playerstate.Resolution
}

var Player = donburi.NewComponentType[PlayerData]()
