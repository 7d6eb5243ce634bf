package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction cp.Vector // last non-zero movement direction
	FacingDeg float64
	Attacks   int // hitboxes spawned so far
}

var Player = donburi.NewComponentType[PlayerData]()
