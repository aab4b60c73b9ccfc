package components

import (
	"github.com/automoto/dave/shared/tileworld"
	"github.com/yohamta/donburi"
)

// World holds the tile collision world shared by every system.
var World = donburi.NewComponentType[tileworld.World]()
