package systems

import (
	"log"

	"github.com/automoto/hitbox-arena/arena"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/events"
	"github.com/automoto/hitbox-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupArena creates the singletons, the camera and the player, and asks
// for the starting enemies.
func SetupArena(ecs *ecs.ECS) {
	getOrCreateInput(ecs)

	factory.CreateCamera(ecs)
	if _, err := factory.CreatePlayer(ecs); err != nil {
		log.Printf("Warning: %v", err)
	}
	getOrCreateArena(ecs).PlayerCount = 1

	for i := 0; i < cfg.Enemy.StartingCount; i++ {
		events.SpawnEnemy.Publish(ecs.World, events.SpawnEnemyEvent{})
	}
}

// OnSpawnEnemy queues one enemy per spawn event.
func OnSpawnEnemy(ecs *ecs.ECS, _ events.SpawnEnemyEvent) {
	arena.Get(ecs).Commands.Spawn(func(donburi.World) {
		if _, err := factory.CreateEnemy(ecs); err != nil {
			log.Printf("Warning: %v", err)
		}
	})
}
