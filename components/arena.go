package components

import "github.com/yohamta/donburi"

// ArenaData is the singleton holding spawn bookkeeping.
type ArenaData struct {
	EnemiesSpawned int
	PlayerCount    int // players seen by the last movement step
}

var Arena = donburi.NewComponentType[ArenaData]()
