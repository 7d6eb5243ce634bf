package components

import "github.com/yohamta/donburi"

// DecayData counts down the steps a transient entity has left.
// It is never stored at zero: the entity is despawned instead.
type DecayData struct {
	Counter int
}

var Decay = donburi.NewComponentType[DecayData]()
