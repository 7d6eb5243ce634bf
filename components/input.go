package components

import (
	"github.com/automoto/hitbox-arena/input"
	"github.com/yohamta/donburi"
)

// Input is the singleton holding this frame's action state.
var Input = donburi.NewComponentType[input.State]()
