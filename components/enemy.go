package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	SpawnIndex int // 1-based order of creation
}

var Enemy = donburi.NewComponentType[EnemyData]()
