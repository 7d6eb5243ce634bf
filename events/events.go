// Package events declares the gameplay events exchanged between systems.
package events

import (
	devents "github.com/yohamta/donburi/features/events"
)

// SpawnEnemyEvent asks for one more enemy. It carries no payload.
type SpawnEnemyEvent struct{}

var SpawnEnemy = devents.NewEventType[SpawnEnemyEvent]()
