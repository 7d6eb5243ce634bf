package systems

import (
	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/events"
	"github.com/yohamta/donburi/ecs"
)

// Register adds the arena's systems and observers in execution order.
func Register(ecs *ecs.ECS) {
	// Input
	ecs.AddSystem(UpdateInput)

	// Gameplay
	ecs.AddSystem(UpdateDebugToggle)
	ecs.AddSystem(UpdatePlayer)
	ecs.AddSystem(UpdateDecay)

	// Physics, then what reads its reports
	ecs.AddSystem(UpdatePhysics)
	ecs.AddSystem(UpdateHitboxes)
	ecs.AddSystem(UpdateCamera)

	// Queued spawns, despawns and events land last
	ecs.AddSystem(arena.Sync)

	arena.Observe(ecs, events.SpawnEnemy, OnSpawnEnemy)
}

// Start builds the starting arena and settles it before the first update.
func Start(ecs *ecs.ECS) {
	SetupArena(ecs)
	arena.Sync(ecs)
}
