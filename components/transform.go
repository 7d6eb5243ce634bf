package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// TransformData places an entity relative to its owner, or in the world for roots.
type TransformData struct {
	Local cp.Vector
	Angle float64 // radians
}

var Transform = donburi.NewComponentType[TransformData]()
