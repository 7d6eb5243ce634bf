package systems

import (
	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/input"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the key source into the input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	state := getOrCreateInput(ecs)
	state.Poll(arena.Get(ecs).Keys, cfg.Input.Bindings)
}

func getOrCreateInput(ecs *ecs.ECS) *input.State {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		e = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(e)
}

// currentInput returns the polled action state, or nil before the first poll.
func currentInput(ecs *ecs.ECS) *input.State {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(e)
}
