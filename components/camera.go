package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2
	DefaultUI bool // HUD renders through this camera
}

var Camera = donburi.NewComponentType[CameraData]()
