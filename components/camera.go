package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a fixed display rectangle in world units.
type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64
}

var Camera = donburi.NewComponentType[CameraData]()
